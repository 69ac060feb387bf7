package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bornholm/lifemap/internal/http/middleware/authn"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

func TestHandler(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	verifier := authn.NewBasicAuthenticator(map[string]string{
		"alice": "secret",
	})

	handler := NewHandler(store, verifier)

	login := func(username, password string) *httptest.ResponseRecorder {
		form := url.Values{}
		form.Set("username", username)
		form.Set("password", password)

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res
	}

	t.Run("InvalidPassword", func(t *testing.T) {
		res := login("alice", "wrong")
		if e, g := http.StatusUnauthorized, res.Code; e != g {
			t.Errorf("res.Code: expected %v, got %v", e, g)
		}
	})

	t.Run("LoginThenAuthenticate", func(t *testing.T) {
		res := login("alice", "secret")
		if e, g := http.StatusNoContent, res.Code; e != g {
			t.Fatalf("res.Code: expected %v, got %v", e, g)
		}

		cookies := res.Result().Cookies()
		if len(cookies) == 0 {
			t.Fatalf("expected a session cookie")
		}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/markers", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}

		user, err := handler.Authenticate(httptest.NewRecorder(), req)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if user == nil {
			t.Fatalf("expected an authenticated user")
		}

		if e, g := "alice", user.Subject; e != g {
			t.Errorf("user.Subject: expected %v, got %v", e, g)
		}

		if e, g := authn.ProviderLocal, user.Provider; e != g {
			t.Errorf("user.Provider: expected %v, got %v", e, g)
		}
	})

	t.Run("NoSession", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/markers", nil)

		user, err := handler.Authenticate(httptest.NewRecorder(), req)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if user != nil {
			t.Errorf("expected no user, got %v", user)
		}
	})
}
