package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"loc8r/api-service/internal/models"
)

const locationCollection = "locations"

type LocationRepository struct {
	db *mongo.Database
}

func NewLocationRepository(db *mongo.Database) *LocationRepository {
	return &LocationRepository{db: db}
}

// EnsureIndexes creates the 2dsphere index backing $geoNear searches.
func (r *LocationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(locationCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "coords", Value: "2dsphere"}},
	})
	return err
}

func (r *LocationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Location, error) {
	var location models.Location
	err := r.db.Collection(locationCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&location)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

// FindNearby runs a spherical $geoNear around the given point, distances in meters.
func (r *LocationRepository) FindNearby(ctx context.Context, lng, lat, maxDistance float64, limit int64) ([]models.LocationSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": []float64{lng, lat},
			},
			"distanceField": "distance",
			"maxDistance":   maxDistance,
			"spherical":     true,
		}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.db.Collection(locationCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.LocationSummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	if results == nil {
		results = []models.LocationSummary{}
	}
	return results, nil
}

// PushReview appends the review atomically so concurrent writers cannot drop
// each other's reviews.
func (r *LocationRepository) PushReview(ctx context.Context, locationID primitive.ObjectID, review *models.Review) error {
	result, err := r.db.Collection(locationCollection).UpdateOne(ctx,
		bson.M{"_id": locationID},
		bson.M{"$push": bson.M{"reviews": review}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateReview overwrites author/rating/reviewText of one embedded review in place.
func (r *LocationRepository) UpdateReview(ctx context.Context, locationID, reviewID primitive.ObjectID, review *models.Review) error {
	result, err := r.db.Collection(locationCollection).UpdateOne(ctx,
		bson.M{"_id": locationID, "reviews._id": reviewID},
		bson.M{"$set": bson.M{
			"reviews.$.author":     review.Author,
			"reviews.$.rating":     review.Rating,
			"reviews.$.reviewText": review.ReviewText,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// PullReview removes one embedded review by id.
func (r *LocationRepository) PullReview(ctx context.Context, locationID, reviewID primitive.ObjectID) error {
	result, err := r.db.Collection(locationCollection).UpdateOne(ctx,
		bson.M{"_id": locationID},
		bson.M{"$pull": bson.M{"reviews": bson.M{"_id": reviewID}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	if result.ModifiedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SetRating writes the cached average rating.
func (r *LocationRepository) SetRating(ctx context.Context, locationID primitive.ObjectID, rating int) error {
	result, err := r.db.Collection(locationCollection).UpdateOne(ctx,
		bson.M{"_id": locationID},
		bson.M{"$set": bson.M{"rating": rating}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
