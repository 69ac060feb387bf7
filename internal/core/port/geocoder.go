package port

import (
	"context"
	"errors"
	"fmt"

	"github.com/bornholm/lifemap/internal/core/model"
)

var (
	ErrNoMatch             = errors.New("no match")
	ErrProviderUnavailable = errors.New("provider unavailable")
)

type Geocoder interface {
	// ResolveAddress resolves a free-text address into its formatted address and coordinates.
	// Failures are always reported as a *GeocodeError.
	ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error)
}

type GeocodeFailure string

const (
	GeocodeNoMatch             GeocodeFailure = "no_match"
	GeocodeProviderUnavailable GeocodeFailure = "provider_unavailable"
)

type GeocodeError struct {
	Failure GeocodeFailure
	Address string
	Err     error
}

func (e *GeocodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not geocode '%s': %s: %s", e.Address, e.Failure, e.Err.Error())
	}

	return fmt.Sprintf("could not geocode '%s': %s", e.Address, e.Failure)
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

func (e *GeocodeError) Is(target error) bool {
	switch target {
	case ErrNoMatch:
		return e.Failure == GeocodeNoMatch
	case ErrProviderUnavailable:
		return e.Failure == GeocodeProviderUnavailable
	default:
		return false
	}
}

func NewNoMatchError(address string) *GeocodeError {
	return &GeocodeError{
		Failure: GeocodeNoMatch,
		Address: address,
	}
}

func NewProviderUnavailableError(address string, err error) *GeocodeError {
	return &GeocodeError{
		Failure: GeocodeProviderUnavailable,
		Address: address,
		Err:     err,
	}
}

// GeocodeFailureOf returns the failure of a geocoding error, or an empty string
// if the error does not originate from a geocoder.
func GeocodeFailureOf(err error) GeocodeFailure {
	var geocodeErr *GeocodeError
	if errors.As(err, &geocodeErr) {
		return geocodeErr.Failure
	}

	return ""
}
