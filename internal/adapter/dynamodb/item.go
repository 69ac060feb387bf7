package dynamodb

import (
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
)

const (
	attrID      = "id"
	attrOwnerID = "owner_id"

	ownerIndexName = "owner_id-index"
)

type markerItem struct {
	ID      string `dynamodbav:"id"`
	OwnerID string `dynamodbav:"owner_id"`

	Title       string    `dynamodbav:"title"`
	DateFrom    time.Time `dynamodbav:"date_from"`
	DateTo      time.Time `dynamodbav:"date_to"`
	Description string    `dynamodbav:"description"`

	LocationName    string  `dynamodbav:"location_name"`
	LocationAddress string  `dynamodbav:"location_address"`
	Lat             float64 `dynamodbav:"lat"`
	Lng             float64 `dynamodbav:"lng"`

	Private bool `dynamodbav:"is_private"`

	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

func (i *markerItem) toMarker() *model.BaseMarker {
	fields := model.MarkerFields{
		Title: i.Title,
		DateRange: model.DateRange{
			From: i.DateFrom.UTC(),
			To:   i.DateTo.UTC(),
		},
		Location: model.Location{
			Name:    i.LocationName,
			Address: i.LocationAddress,
			Lat:     i.Lat,
			Lng:     i.Lng,
		},
		Description: i.Description,
		Private:     i.Private,
	}

	return model.NewBaseMarker(model.MarkerID(i.ID), model.UserID(i.OwnerID), fields, i.CreatedAt, i.UpdatedAt)
}

func newMarkerItem(id model.MarkerID, ownerID model.UserID, fields model.MarkerFields, createdAt, updatedAt time.Time) *markerItem {
	return &markerItem{
		ID:              string(id),
		OwnerID:         string(ownerID),
		Title:           fields.Title,
		DateFrom:        fields.DateRange.From.UTC(),
		DateTo:          fields.DateRange.To.UTC(),
		Description:     fields.Description,
		LocationName:    fields.Location.Name,
		LocationAddress: fields.Location.Address,
		Lat:             fields.Location.Lat,
		Lng:             fields.Location.Lng,
		Private:         fields.Private,
		CreatedAt:       createdAt.UTC(),
		UpdatedAt:       updatedAt.UTC(),
	}
}
