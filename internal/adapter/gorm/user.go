package gorm

import (
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Subject  string `gorm:"index:user_identity_index,unique"`
	Provider string `gorm:"index:user_identity_index,unique"`

	DisplayName string

	Roles []*UserRole `gorm:"constraint:OnDelete:CASCADE;"`
}

type UserRole struct {
	ID uint `gorm:"primaryKey"`

	CreatedAt time.Time

	User   *User
	UserID string `gorm:"index:user_role_index,unique"`

	Role string `gorm:"index:user_role_index,unique"`
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// DisplayName implements model.User.
func (w *wrappedUser) DisplayName() string {
	return w.u.DisplayName
}

// Provider implements model.User.
func (w *wrappedUser) Provider() string {
	return w.u.Provider
}

// Subject implements model.User.
func (w *wrappedUser) Subject() string {
	return w.u.Subject
}

// Roles implements model.User.
func (w *wrappedUser) Roles() []string {
	roles := make([]string, 0, len(w.u.Roles))
	for _, r := range w.u.Roles {
		roles = append(roles, r.Role)
	}
	return roles
}

var _ model.User = &wrappedUser{}

func fromUser(u model.User) *User {
	user := &User{
		ID:          string(u.ID()),
		Subject:     u.Subject(),
		Provider:    u.Provider(),
		DisplayName: u.DisplayName(),
		Roles:       make([]*UserRole, 0, len(u.Roles())),
	}

	for _, r := range u.Roles() {
		user.Roles = append(user.Roles, &UserRole{
			UserID: user.ID,
			Role:   r,
		})
	}

	return user
}
