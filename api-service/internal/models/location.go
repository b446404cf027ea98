package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"loc8r/api-service/internal/utils"
)

// GeoJSON point, coordinates ordered [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

type OpeningTime struct {
	Days    string `bson:"days" json:"days"`
	Opening string `bson:"opening,omitempty" json:"opening,omitempty"`
	Closing string `bson:"closing,omitempty" json:"closing,omitempty"`
	Closed  bool   `bson:"closed" json:"closed"`
}

type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author     string             `bson:"author" json:"author"`
	Rating     int                `bson:"rating" json:"rating"`
	ReviewText string             `bson:"reviewText" json:"reviewText"`
	CreatedOn  time.Time          `bson:"createdOn" json:"createdOn"`
}

// Location is the aggregate: the document plus its embedded review list.
// Rating is a derived cache of the embedded reviews, recomputed after each
// review mutation, and must not be read as authoritative.
type Location struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Address      string             `bson:"address" json:"address"`
	Rating       int                `bson:"rating" json:"rating"`
	Facilities   []string           `bson:"facilities" json:"facilities"`
	Coords       *GeoPoint          `bson:"coords,omitempty" json:"coords,omitempty"`
	OpeningTimes []OpeningTime      `bson:"openingTimes" json:"openingTimes"`
	Reviews      []Review           `bson:"reviews" json:"reviews"`
}

// LocationSummary is the list-endpoint shape: no reviews, plus the
// search-computed distance in meters.
type LocationSummary struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Address    string             `bson:"address" json:"address"`
	Rating     int                `bson:"rating" json:"rating"`
	Facilities []string           `bson:"facilities" json:"facilities"`
	Distance   float64            `bson:"distance" json:"distance"`
}

type ReviewInput struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" validate:"required"`
}

func (ri ReviewInput) Validate() error {
	if err := utils.GetValidator().Struct(ri); err != nil {
		errs := utils.ParseValidationErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}
	return nil
}

// AverageRating returns the truncated mean of the embedded review ratings.
// The boolean is false for an empty list, in which case the cached rating
// keeps its prior value.
func (l *Location) AverageRating() (int, bool) {
	if len(l.Reviews) == 0 {
		return 0, false
	}

	total := 0
	for _, r := range l.Reviews {
		total += r.Rating
	}
	return total / len(l.Reviews), true
}
