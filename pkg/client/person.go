package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bornholm/lifemap/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) ListPersons(ctx context.Context) ([]api.Person, error) {
	var res api.ListPersonsResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/persons", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Persons, nil
}

func (c *Client) ListPersonMarkers(ctx context.Context, userID string) ([]api.Marker, error) {
	var res api.ListMarkersResponse
	if err := c.jsonRequest(ctx, http.MethodGet, fmt.Sprintf("/persons/%s/markers", url.PathEscape(userID)), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Markers, nil
}
