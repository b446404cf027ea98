package services

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"loc8r/api-service/internal/models"
	"loc8r/api-service/internal/utils"
)

type LocationRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Location, error)
	FindNearby(ctx context.Context, lng, lat, maxDistance float64, limit int64) ([]models.LocationSummary, error)
	PushReview(ctx context.Context, locationID primitive.ObjectID, review *models.Review) error
	UpdateReview(ctx context.Context, locationID, reviewID primitive.ObjectID, review *models.Review) error
	PullReview(ctx context.Context, locationID, reviewID primitive.ObjectID) error
	SetRating(ctx context.Context, locationID primitive.ObjectID, rating int) error
}

type ReviewService struct {
	locationRepo LocationRepository
	userRepo     UserRepository
	cache        *utils.RedisClient
}

func NewReviewService(locationRepo LocationRepository, userRepo UserRepository, cache *utils.RedisClient) *ReviewService {
	return &ReviewService{locationRepo: locationRepo, userRepo: userRepo, cache: cache}
}

// CreateReview appends a review authored by the authenticated user and returns
// it with its generated id. The cached average rating is recomputed afterwards.
func (s *ReviewService) CreateReview(ctx context.Context, locationID, authorEmail string, input models.ReviewInput) (*models.Review, error) {
	author, err := s.resolveAuthor(ctx, authorEmail)
	if err != nil {
		return nil, err
	}

	locID, err := primitive.ObjectIDFromHex(locationID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.locationRepo.FindByID(ctx, locID); err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:         primitive.NewObjectID(),
		Author:     author,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		CreatedOn:  time.Now().UTC(),
	}

	if err := s.locationRepo.PushReview(ctx, locID, review); err != nil {
		return nil, err
	}

	s.updateAverageRating(ctx, locID)
	return review, nil
}

// GetReview returns one review plus the owning location's name.
func (s *ReviewService) GetReview(ctx context.Context, locationID, reviewID string) (string, *models.Review, error) {
	locID, err := primitive.ObjectIDFromHex(locationID)
	if err != nil {
		return "", nil, models.ErrInvalidID
	}

	location, err := s.locationRepo.FindByID(ctx, locID)
	if err != nil {
		return "", nil, err
	}

	if len(location.Reviews) == 0 {
		return "", nil, models.ErrNoReviews
	}

	review, err := findReview(location, reviewID)
	if err != nil {
		return "", nil, err
	}
	return location.Name, review, nil
}

// UpdateReview overwrites author, rating and text of an existing review in place.
func (s *ReviewService) UpdateReview(ctx context.Context, locationID, reviewID, author string, input models.ReviewInput) (*models.Review, error) {
	locID, err := primitive.ObjectIDFromHex(locationID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	location, err := s.locationRepo.FindByID(ctx, locID)
	if err != nil {
		return nil, err
	}

	review, err := findReview(location, reviewID)
	if err != nil {
		return nil, err
	}

	review.Author = author
	review.Rating = input.Rating
	review.ReviewText = input.ReviewText

	if err := s.locationRepo.UpdateReview(ctx, locID, review.ID, review); err != nil {
		return nil, err
	}

	s.updateAverageRating(ctx, locID)
	return review, nil
}

// DeleteReview removes a review from its location.
func (s *ReviewService) DeleteReview(ctx context.Context, locationID, reviewID string) error {
	locID, err := primitive.ObjectIDFromHex(locationID)
	if err != nil {
		return models.ErrInvalidID
	}

	location, err := s.locationRepo.FindByID(ctx, locID)
	if err != nil {
		return err
	}

	review, err := findReview(location, reviewID)
	if err != nil {
		return err
	}

	if err := s.locationRepo.PullReview(ctx, locID, review.ID); err != nil {
		return err
	}

	s.updateAverageRating(ctx, locID)
	return nil
}

func (s *ReviewService) resolveAuthor(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", models.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrUnauthorized
		}
		return "", err
	}
	return user.Name, nil
}

// updateAverageRating recomputes the cached rating from a fresh read of the
// aggregate. The review write has already been persisted, so failures here are
// logged and swallowed rather than surfaced. An emptied review list leaves the
// prior rating in place.
func (s *ReviewService) updateAverageRating(ctx context.Context, locationID primitive.ObjectID) {
	s.invalidateLocation(ctx, locationID)

	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		log.Printf("rating recompute: read location %s: %v", locationID.Hex(), err)
		return
	}

	rating, ok := location.AverageRating()
	if !ok {
		return
	}

	if err := s.locationRepo.SetRating(ctx, locationID, rating); err != nil {
		log.Printf("rating recompute: save location %s: %v", locationID.Hex(), err)
		return
	}
	log.Printf("average rating for %s updated to %d", locationID.Hex(), rating)
}

func (s *ReviewService) invalidateLocation(ctx context.Context, locationID primitive.ObjectID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, locationCacheKey(locationID.Hex())); err != nil {
		log.Printf("cache invalidate %s: %v", locationID.Hex(), err)
	}
}

func findReview(location *models.Location, reviewID string) (*models.Review, error) {
	revID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	for i := range location.Reviews {
		if location.Reviews[i].ID == revID {
			return &location.Reviews[i], nil
		}
	}
	return nil, models.ErrReviewNotFound
}
