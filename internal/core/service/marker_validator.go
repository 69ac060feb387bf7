package service

import (
	"sort"

	"github.com/bornholm/lifemap/internal/core/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

var (
	errInvalidDateFormat = validation.NewError("validation_invalid_date", "must be a date formatted as YYYY-MM-DD")
	errDateOrder         = validation.NewError("validation_date_order", "must not be before the start date")
)

// ValidateMarkerForm checks the given form and returns every field error found,
// sorted by field name. An empty result means the form is acceptable.
func ValidateMarkerForm(form model.MarkerForm) []model.FieldError {
	form = form.Normalize()

	err := validation.ValidateStruct(&form,
		validation.Field(&form.Title, validation.Required),
		validation.Field(&form.DateFrom, validation.Required, validation.By(isMarkerDate)),
		validation.Field(&form.DateTo, validation.Required, validation.By(isMarkerDate), validation.By(notBefore(form.DateFrom))),
		validation.Field(&form.LocationName, validation.Required),
		validation.Field(&form.LocationAddress, validation.Required),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []model.FieldError{{Field: "form", Message: err.Error()}}
	}

	results := make([]model.FieldError, 0, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		results = append(results, model.FieldError{
			Field:   field,
			Message: fieldErr.Error(),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Field < results[j].Field
	})

	return results
}

func isMarkerDate(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}

	if _, err := model.ParseMarkerDate(raw); err != nil {
		return errInvalidDateFormat
	}

	return nil
}

func notBefore(rawFrom string) validation.RuleFunc {
	return func(value any) error {
		rawTo, _ := value.(string)
		if rawTo == "" || rawFrom == "" {
			return nil
		}

		from, err := model.ParseMarkerDate(rawFrom)
		if err != nil {
			return nil
		}

		to, err := model.ParseMarkerDate(rawTo)
		if err != nil {
			return nil
		}

		if to.Before(from) {
			return errDateOrder
		}

		return nil
	}
}
