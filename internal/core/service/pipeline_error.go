package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bornholm/lifemap/internal/core/model"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrGeocode    = errors.New("geocoding failed")
	ErrStorage    = errors.New("storage failed")
	ErrNotFound   = errors.New("marker not found")
	ErrForbidden  = errors.New("forbidden")
)

type PipelineErrorKind string

const (
	KindValidation PipelineErrorKind = "validation"
	KindGeocode    PipelineErrorKind = "geocode"
	KindStorage    PipelineErrorKind = "storage"
	KindNotFound   PipelineErrorKind = "not_found"
	KindForbidden  PipelineErrorKind = "forbidden"
)

func (k PipelineErrorKind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindGeocode:
		return ErrGeocode
	case KindStorage:
		return ErrStorage
	case KindNotFound:
		return ErrNotFound
	case KindForbidden:
		return ErrForbidden
	default:
		return nil
	}
}

const (
	StepValidate  = "validate"
	StepGeocode   = "geocode"
	StepLoad      = "load"
	StepAuthorize = "authorize"
	StepPersist   = "persist"
)

// PipelineError reports the step at which a marker pipeline invocation failed.
type PipelineError struct {
	Kind   PipelineErrorKind
	Step   string
	Fields []model.FieldError
	cause  error
}

func (e *PipelineError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "marker pipeline failed at step '%s': %s", e.Step, e.Kind)

	if len(e.Fields) > 0 {
		fields := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			fields = append(fields, f.Error())
		}
		fmt.Fprintf(&sb, " (%s)", strings.Join(fields, ", "))
	}

	if e.cause != nil {
		fmt.Fprintf(&sb, ": %s", e.cause.Error())
	}

	return sb.String()
}

func (e *PipelineError) Unwrap() error {
	return e.cause
}

func (e *PipelineError) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

func newPipelineError(kind PipelineErrorKind, step string, cause error) *PipelineError {
	return &PipelineError{
		Kind:  kind,
		Step:  step,
		cause: cause,
	}
}

func newValidationError(fields []model.FieldError) *PipelineError {
	return &PipelineError{
		Kind:   KindValidation,
		Step:   StepValidate,
		Fields: fields,
	}
}

// PipelineErrorOf returns the pipeline error wrapped in err, if any.
func PipelineErrorOf(err error) (*PipelineError, bool) {
	var pipelineErr *PipelineError
	if errors.As(err, &pipelineErr) {
		return pipelineErr, true
	}

	return nil, false
}
