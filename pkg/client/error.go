package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/pkg/errors"
)

// APIError is returned when the server answers with a non successful status.
type APIError struct {
	StatusCode int
	Code       string
	Fields     []model.FieldError
}

func (e *APIError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "unexpected response code %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))

	if e.Code != "" {
		fmt.Fprintf(&sb, ": %s", e.Code)
	}

	for _, f := range e.Fields {
		fmt.Fprintf(&sb, "\n  - %s", f.Error())
	}

	return sb.String()
}

// APIErrorOf returns the api error wrapped in err, if any.
func APIErrorOf(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
