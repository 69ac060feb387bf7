package model

import "time"

// WithID is implemented by every identified entity.
type WithID[T ~string] interface {
	ID() T
}

type WithOwner interface {
	OwnerID() UserID
}

// WithLifecycle exposes the timestamps managed by the stores.
type WithLifecycle interface {
	CreatedAt() time.Time
	UpdatedAt() time.Time
}
