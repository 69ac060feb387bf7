package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) ListMarkers(ctx context.Context) ([]api.Marker, error) {
	var res api.ListMarkersResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/markers", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Markers, nil
}

func (c *Client) CreateMarker(ctx context.Context, form model.MarkerForm) (*api.Marker, error) {
	var res api.MarkerResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/markers", form, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Marker, nil
}

func (c *Client) GetMarker(ctx context.Context, markerID string) (*api.Marker, error) {
	var res api.MarkerResponse
	if err := c.jsonRequest(ctx, http.MethodGet, fmt.Sprintf("/markers/%s", url.PathEscape(markerID)), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Marker, nil
}

func (c *Client) UpdateMarker(ctx context.Context, markerID string, form model.MarkerForm) (*api.Marker, error) {
	var res api.MarkerResponse
	if err := c.jsonRequest(ctx, http.MethodPut, fmt.Sprintf("/markers/%s", url.PathEscape(markerID)), form, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Marker, nil
}
