package authn

import "context"

type User struct {
	Provider    string
	Subject     string
	DisplayName string
}

type contextKey string

const keyUser contextKey = "authnUser"

func ContextUser(ctx context.Context) *User {
	user, ok := ctx.Value(keyUser).(*User)
	if !ok {
		return nil
	}

	return user
}

func setContextUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}
