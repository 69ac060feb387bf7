package service

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/metrics"
	"github.com/pkg/errors"
)

const (
	operationCreate = "create"
	operationUpdate = "update"
)

// MarkerPipeline validates, geocodes and persists the markers submitted by their owners.
type MarkerPipeline struct {
	geocoder port.Geocoder
	store    port.MarkerStore
}

func (p *MarkerPipeline) CreateMarker(ctx context.Context, ownerID model.UserID, form model.MarkerForm) (model.PersistedMarker, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("marker_operation", operationCreate), slog.String("owner_id", string(ownerID)))

	marker, err := p.createMarker(ctx, ownerID, form)

	p.report(ctx, operationCreate, marker, err)

	if err != nil {
		return nil, err
	}

	return marker, nil
}

func (p *MarkerPipeline) createMarker(ctx context.Context, ownerID model.UserID, form model.MarkerForm) (model.PersistedMarker, error) {
	fields, err := p.resolveFields(ctx, form)
	if err != nil {
		return nil, err
	}

	marker, err := p.store.CreateMarker(ctx, ownerID, fields)
	if err != nil {
		return nil, newPipelineError(KindStorage, StepPersist, errors.WithStack(err))
	}

	return marker, nil
}

func (p *MarkerPipeline) UpdateMarker(ctx context.Context, markerID model.MarkerID, ownerID model.UserID, form model.MarkerForm) (model.PersistedMarker, error) {
	ctx = slogx.WithAttrs(ctx,
		slog.String("marker_operation", operationUpdate),
		slog.String("owner_id", string(ownerID)),
		slog.String("marker_id", string(markerID)),
	)

	marker, err := p.updateMarker(ctx, markerID, ownerID, form)

	p.report(ctx, operationUpdate, marker, err)

	if err != nil {
		return nil, err
	}

	return marker, nil
}

func (p *MarkerPipeline) updateMarker(ctx context.Context, markerID model.MarkerID, ownerID model.UserID, form model.MarkerForm) (model.PersistedMarker, error) {
	fields, err := p.resolveFields(ctx, form)
	if err != nil {
		return nil, err
	}

	existing, err := p.store.GetMarkerByID(ctx, markerID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, newPipelineError(KindNotFound, StepLoad, errors.WithStack(err))
		}

		return nil, newPipelineError(KindStorage, StepLoad, errors.WithStack(err))
	}

	if existing.OwnerID() != ownerID {
		return nil, newPipelineError(KindForbidden, StepAuthorize, errors.Errorf("marker '%s' is not owned by user '%s'", markerID, ownerID))
	}

	marker, err := p.store.UpdateMarker(ctx, markerID, fields)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, newPipelineError(KindNotFound, StepPersist, errors.WithStack(err))
		}

		return nil, newPipelineError(KindStorage, StepPersist, errors.WithStack(err))
	}

	return marker, nil
}

// resolveFields runs the validation and geocoding steps shared by creation and update.
func (p *MarkerPipeline) resolveFields(ctx context.Context, form model.MarkerForm) (model.MarkerFields, error) {
	form = form.Normalize()

	if fieldErrs := ValidateMarkerForm(form); len(fieldErrs) > 0 {
		return model.MarkerFields{}, newValidationError(fieldErrs)
	}

	// Both dates are guaranteed to parse once the form is valid
	from, err := model.ParseMarkerDate(form.DateFrom)
	if err != nil {
		return model.MarkerFields{}, newValidationError([]model.FieldError{{Field: "dateFrom", Message: err.Error()}})
	}

	to, err := model.ParseMarkerDate(form.DateTo)
	if err != nil {
		return model.MarkerFields{}, newValidationError([]model.FieldError{{Field: "dateTo", Message: err.Error()}})
	}

	place, err := p.geocoder.ResolveAddress(ctx, form.LocationAddress)
	if err != nil {
		return model.MarkerFields{}, newPipelineError(KindGeocode, StepGeocode, errors.WithStack(err))
	}

	return model.MarkerFields{
		Title: form.Title,
		DateRange: model.DateRange{
			From: from,
			To:   to,
		},
		Location: model.Location{
			Name:    form.LocationName,
			Address: place.FormattedAddress,
			Lat:     place.Lat,
			Lng:     place.Lng,
		},
		Description: form.Description,
		Private:     form.IsPrivate,
	}, nil
}

func (p *MarkerPipeline) report(ctx context.Context, operation string, marker model.PersistedMarker, err error) {
	if err == nil {
		metrics.MarkerPipelineRuns.WithLabelValues(operation, "success").Inc()
		slog.InfoContext(ctx, "marker saved", slog.String("marker_id", string(marker.ID())))
		return
	}

	pipelineErr, ok := PipelineErrorOf(err)
	if !ok {
		metrics.MarkerPipelineRuns.WithLabelValues(operation, "unknown").Inc()
		slog.ErrorContext(ctx, "unexpected marker pipeline error", slogx.Error(err))
		return
	}

	metrics.MarkerPipelineRuns.WithLabelValues(operation, string(pipelineErr.Kind)).Inc()

	attrs := []any{slog.String("step", pipelineErr.Step), slog.String("kind", string(pipelineErr.Kind))}

	switch pipelineErr.Kind {
	case KindValidation:
		slog.InfoContext(ctx, "marker rejected", append(attrs, slog.Any("fields", pipelineErr.Fields))...)
	case KindStorage:
		slog.ErrorContext(ctx, "could not save marker", append(attrs, slogx.Error(err))...)
	default:
		slog.WarnContext(ctx, "marker not saved", append(attrs, slogx.Error(err))...)
	}
}

func NewMarkerPipeline(geocoder port.Geocoder, store port.MarkerStore) *MarkerPipeline {
	return &MarkerPipeline{
		geocoder: geocoder,
		store:    store,
	}
}
