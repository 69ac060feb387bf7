package service

import (
	"testing"

	"github.com/bornholm/lifemap/internal/core/model"
)

func TestValidateMarkerForm(t *testing.T) {
	type testCase struct {
		Name           string
		Form           model.MarkerForm
		ExpectedFields []string
	}

	valid := model.MarkerForm{
		Title:           "Graduation",
		DateFrom:        "2010-05-01",
		DateTo:          "2010-05-01",
		LocationName:    "Campus",
		LocationAddress: "1 University Dr, Austin",
	}

	with := func(fn func(f *model.MarkerForm)) model.MarkerForm {
		f := valid
		fn(&f)
		return f
	}

	testCases := []testCase{
		{
			Name:           "Valid",
			Form:           valid,
			ExpectedFields: []string{},
		},
		{
			Name:           "ValidWithTimestamps",
			Form:           with(func(f *model.MarkerForm) { f.DateFrom = "2010-05-01T10:00:00Z"; f.DateTo = "2010-05-02T00:00:00+02:00" }),
			ExpectedFields: []string{},
		},
		{
			Name:           "EmptyTitle",
			Form:           with(func(f *model.MarkerForm) { f.Title = "" }),
			ExpectedFields: []string{"title"},
		},
		{
			Name:           "BlankTitle",
			Form:           with(func(f *model.MarkerForm) { f.Title = "   " }),
			ExpectedFields: []string{"title"},
		},
		{
			Name:           "EmptyForm",
			Form:           model.MarkerForm{Description: "only a description", IsPrivate: true},
			ExpectedFields: []string{"dateFrom", "dateTo", "locationAddress", "locationName", "title"},
		},
		{
			Name:           "MissingLocation",
			Form:           with(func(f *model.MarkerForm) { f.LocationName = ""; f.LocationAddress = "" }),
			ExpectedFields: []string{"locationAddress", "locationName"},
		},
		{
			Name:           "MissingStartDate",
			Form:           with(func(f *model.MarkerForm) { f.DateFrom = "" }),
			ExpectedFields: []string{"dateFrom"},
		},
		{
			Name:           "InvalidDate",
			Form:           with(func(f *model.MarkerForm) { f.DateFrom = "01/05/2010" }),
			ExpectedFields: []string{"dateFrom"},
		},
		{
			Name:           "InvalidDates",
			Form:           with(func(f *model.MarkerForm) { f.DateFrom = "yesterday"; f.DateTo = "2010-13-45" }),
			ExpectedFields: []string{"dateFrom", "dateTo"},
		},
		{
			Name:           "EndBeforeStart",
			Form:           with(func(f *model.MarkerForm) { f.DateFrom = "2010-05-02"; f.DateTo = "2010-05-01" }),
			ExpectedFields: []string{"dateTo"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			fieldErrs := ValidateMarkerForm(tc.Form)

			if e, g := len(tc.ExpectedFields), len(fieldErrs); e != g {
				t.Fatalf("len(fieldErrs): expected %d, got %d (%v)", e, g, fieldErrs)
			}

			for i, field := range tc.ExpectedFields {
				if e, g := field, fieldErrs[i].Field; e != g {
					t.Errorf("fieldErrs[%d].Field: expected %s, got %s", i, e, g)
				}

				if fieldErrs[i].Message == "" {
					t.Errorf("fieldErrs[%d].Message: should not be empty", i)
				}
			}
		})
	}
}
