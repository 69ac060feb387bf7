package context

import (
	"context"
	"net/url"

	"github.com/bornholm/lifemap/internal/core/model"
)

type contextKey string

const (
	keyUser    contextKey = "user"
	keyBaseURL contextKey = "baseURL"
)

// User returns the authenticated user bound to the request, or nil.
func User(ctx context.Context) model.User {
	user, _ := ctx.Value(keyUser).(model.User)
	return user
}

func SetUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}

// BaseURL returns the public base url of the server, "/" when unset.
func BaseURL(ctx context.Context) *url.URL {
	baseURL, ok := ctx.Value(keyBaseURL).(*url.URL)
	if !ok {
		return &url.URL{Path: "/"}
	}

	return baseURL
}

func SetBaseURL(ctx context.Context, baseURL *url.URL) context.Context {
	return context.WithValue(ctx, keyBaseURL, baseURL)
}
