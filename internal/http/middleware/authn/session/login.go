package session

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/lifemap/internal/http/middleware/authn"

	httpCtx "github.com/bornholm/lifemap/internal/http/context"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	if !h.verifier.Verify(username, password) {
		slog.WarnContext(ctx, "invalid login attempt", slog.String("username", username))
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user := &authn.User{
		Provider:    authn.ProviderLocal,
		Subject:     username,
		DisplayName: username,
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Has("redirect") {
		baseURL := httpCtx.BaseURL(ctx)
		http.Redirect(w, r, baseURL.String(), http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
