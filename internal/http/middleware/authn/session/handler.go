package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// Verifier checks a username/password pair.
type Verifier interface {
	Verify(username, password string) bool
}

type Handler struct {
	mux          *http.ServeMux
	sessionStore sessions.Store
	sessionName  string
	verifier     Verifier
}

// ServeHTTP implements [http.Handler].
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, verifier Verifier, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:          http.NewServeMux(),
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		verifier:     verifier,
	}

	h.mux.HandleFunc("POST /login", h.handleLogin)
	h.mux.HandleFunc("POST /logout", h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}
