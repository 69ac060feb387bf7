package bridge

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/bornholm/lifemap/internal/adapter/memory"
	"github.com/bornholm/lifemap/internal/core/model"
	httpCtx "github.com/bornholm/lifemap/internal/http/context"
	"github.com/bornholm/lifemap/internal/http/middleware/authn"
	"github.com/bornholm/lifemap/internal/http/middleware/authz"
)

func TestMiddleware(t *testing.T) {
	userStore := memory.NewUserStore()

	authenticator := authn.NewBasicAuthenticator(map[string]string{
		"alice": "secret",
		"bob":   "password",
	})

	var seen model.User

	handler := authn.Middleware(nil, authenticator)(
		Middleware(userStore, "alice")(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = httpCtx.User(r.Context())
				w.WriteHeader(http.StatusOK)
			}),
		),
	)

	do := func(username, password string) *httptest.ResponseRecorder {
		seen = nil

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth(username, password)

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res
	}

	t.Run("Admin", func(t *testing.T) {
		res := do("alice", "secret")
		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("res.Code: expected %v, got %v", e, g)
		}

		if seen == nil {
			t.Fatalf("expected user in context")
		}

		if !slices.Contains(seen.Roles(), authz.RoleAdmin) {
			t.Errorf("expected admin role, got %v", seen.Roles())
		}

		first := seen.ID()

		do("alice", "secret")

		if e, g := first, seen.ID(); e != g {
			t.Errorf("seen.ID(): expected %v, got %v", e, g)
		}
	})

	t.Run("User", func(t *testing.T) {
		res := do("bob", "password")
		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("res.Code: expected %v, got %v", e, g)
		}

		if slices.Contains(seen.Roles(), authz.RoleAdmin) {
			t.Errorf("unexpected admin role")
		}

		if !slices.Contains(seen.Roles(), authz.RoleUser) {
			t.Errorf("expected user role, got %v", seen.Roles())
		}
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		res := do("bob", "wrong")
		if e, g := http.StatusUnauthorized, res.Code; e != g {
			t.Errorf("res.Code: expected %v, got %v", e, g)
		}

		if seen != nil {
			t.Errorf("expected no user in context")
		}
	})
}
