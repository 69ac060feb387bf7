package authn

import (
	"crypto/subtle"
	"net/http"
)

const ProviderLocal = "local"

// BasicAuthenticator resolves users from the Authorization header against a
// static set of local accounts.
type BasicAuthenticator struct {
	accounts map[string]string
}

func NewBasicAuthenticator(accounts map[string]string) *BasicAuthenticator {
	return &BasicAuthenticator{
		accounts: accounts,
	}
}

// Authenticate implements [Authenticator].
func (a *BasicAuthenticator) Authenticate(w http.ResponseWriter, r *http.Request) (*User, error) {
	username, password, ok := r.BasicAuth()
	if !ok {
		return nil, nil
	}

	if !a.Verify(username, password) {
		return nil, nil
	}

	return &User{
		Provider:    ProviderLocal,
		Subject:     username,
		DisplayName: username,
	}, nil
}

// Verify checks the given credentials against the known accounts.
func (a *BasicAuthenticator) Verify(username, password string) bool {
	expected, exists := a.accounts[username]
	if !exists || expected == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1
}

var _ Authenticator = &BasicAuthenticator{}
