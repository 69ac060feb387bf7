package session

import (
	"net/http"

	"github.com/bornholm/lifemap/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

const (
	keyProvider    = "provider"
	keySubject     = "subject"
	keyDisplayName = "displayName"
)

var errSessionNotFound = errors.New("session not found")

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, user *authn.User) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// An undecodable cookie still yields a fresh session
		if sess == nil {
			return errors.WithStack(err)
		}
	}

	sess.Values[keyProvider] = user.Provider
	sess.Values[keySubject] = user.Subject
	sess.Values[keyDisplayName] = user.DisplayName

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveSessionUser(r *http.Request) (*authn.User, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return nil, errors.WithStack(errSessionNotFound)
	}

	if sess.IsNew {
		return nil, errors.WithStack(errSessionNotFound)
	}

	provider, _ := sess.Values[keyProvider].(string)
	subject, _ := sess.Values[keySubject].(string)
	displayName, _ := sess.Values[keyDisplayName].(string)

	if provider == "" || subject == "" {
		return nil, errors.WithStack(errSessionNotFound)
	}

	return &authn.User{
		Provider:    provider,
		Subject:     subject,
		DisplayName: displayName,
	}, nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(errSessionNotFound)
	}

	if sess.IsNew {
		return errors.WithStack(errSessionNotFound)
	}

	sess.Options.MaxAge = -1
	sess.Values = map[any]any{}

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
