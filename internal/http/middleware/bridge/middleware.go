package bridge

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	httpCtx "github.com/bornholm/lifemap/internal/http/context"
	"github.com/bornholm/lifemap/internal/http/middleware/authn"
	"github.com/bornholm/lifemap/internal/http/middleware/authz"
)

// Middleware maps the authenticated identity to a persisted user and exposes
// it in the request context. Subjects listed in admins are granted the admin role.
func Middleware(userStore port.UserStore, admins ...string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authnUser := authn.ContextUser(ctx)
			if authnUser == nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			user, err := userStore.FindOrCreateUser(ctx, authnUser.Provider, authnUser.Subject)
			if err != nil {
				slog.ErrorContext(ctx, "could not find or create user", slogx.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			missingRole := !slices.Contains(user.Roles(), authz.RoleUser)
			shouldBeAdmin := slices.Contains(admins, authnUser.Subject) && !slices.Contains(user.Roles(), authz.RoleAdmin)
			changed := authnUser.DisplayName != "" && user.DisplayName() != authnUser.DisplayName

			if changed || shouldBeAdmin || missingRole {
				updatable := model.CopyUser(user)

				if authnUser.DisplayName != "" {
					updatable.SetDisplayName(authnUser.DisplayName)
				}

				roles := updatable.Roles()

				if missingRole {
					roles = append(roles, authz.RoleUser)
				}

				if shouldBeAdmin {
					roles = append(roles, authz.RoleAdmin)
				}

				updatable.SetRoles(roles...)

				if err := userStore.SaveUser(ctx, updatable); err != nil {
					slog.ErrorContext(ctx, "could not save user", slogx.Error(err))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				user = updatable
			}

			ctx = httpCtx.SetUser(ctx, user)
			ctx = slogx.WithAttrs(ctx, slog.String("userID", string(user.ID())))
			r = r.WithContext(ctx)

			h.ServeHTTP(w, r)
		}

		return fn
	}
}
