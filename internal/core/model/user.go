package model

import "github.com/rs/xid"

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]

	Subject() string
	Provider() string
	DisplayName() string
	Roles() []string
}

type BaseUser struct {
	id          UserID
	subject     string
	provider    string
	displayName string
	roles       []string
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// DisplayName implements User.
func (u *BaseUser) DisplayName() string {
	return u.displayName
}

// Provider implements User.
func (u *BaseUser) Provider() string {
	return u.provider
}

// Roles implements User.
func (u *BaseUser) Roles() []string {
	return u.roles
}

// Subject implements User.
func (u *BaseUser) Subject() string {
	return u.subject
}

func (u *BaseUser) SetDisplayName(displayName string) {
	u.displayName = displayName
}

func (u *BaseUser) SetRoles(roles ...string) {
	u.roles = roles
}

var _ User = &BaseUser{}

func NewUser(id UserID, provider, subject, displayName string, roles ...string) *BaseUser {
	return &BaseUser{
		id:          id,
		displayName: displayName,
		subject:     subject,
		provider:    provider,
		roles:       roles,
	}
}

func CopyUser(user User) *BaseUser {
	roles := make([]string, len(user.Roles()))
	copy(roles, user.Roles())

	return NewUser(user.ID(), user.Provider(), user.Subject(), user.DisplayName(), roles...)
}
