package services

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"loc8r/api-service/internal/models"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return models.ErrDuplicateEmail
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	found := *user
	return &found, nil
}

type fakeLocationRepo struct {
	mu        sync.Mutex
	locations map[primitive.ObjectID]*models.Location

	failSetRating  bool
	setRatingCalls int
	nearby         []models.LocationSummary
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[primitive.ObjectID]*models.Location)}
}

func (r *fakeLocationRepo) add(location *models.Location) primitive.ObjectID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if location.ID.IsZero() {
		location.ID = primitive.NewObjectID()
	}
	r.locations[location.ID] = location
	return location.ID
}

func (r *fakeLocationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	location, ok := r.locations[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	found := *location
	found.Reviews = append([]models.Review(nil), location.Reviews...)
	return &found, nil
}

func (r *fakeLocationRepo) FindNearby(_ context.Context, _, _, _ float64, _ int64) ([]models.LocationSummary, error) {
	return r.nearby, nil
}

func (r *fakeLocationRepo) PushReview(_ context.Context, locationID primitive.ObjectID, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	location, ok := r.locations[locationID]
	if !ok {
		return models.ErrNotFound
	}
	location.Reviews = append(location.Reviews, *review)
	return nil
}

func (r *fakeLocationRepo) UpdateReview(_ context.Context, locationID, reviewID primitive.ObjectID, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	location, ok := r.locations[locationID]
	if !ok {
		return models.ErrNotFound
	}
	for i := range location.Reviews {
		if location.Reviews[i].ID == reviewID {
			location.Reviews[i].Author = review.Author
			location.Reviews[i].Rating = review.Rating
			location.Reviews[i].ReviewText = review.ReviewText
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeLocationRepo) PullReview(_ context.Context, locationID, reviewID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	location, ok := r.locations[locationID]
	if !ok {
		return models.ErrNotFound
	}
	for i := range location.Reviews {
		if location.Reviews[i].ID == reviewID {
			location.Reviews = append(location.Reviews[:i], location.Reviews[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeLocationRepo) SetRating(_ context.Context, locationID primitive.ObjectID, rating int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setRatingCalls++
	if r.failSetRating {
		return errors.New("write failed")
	}
	location, ok := r.locations[locationID]
	if !ok {
		return models.ErrNotFound
	}
	location.Rating = rating
	return nil
}

func (r *fakeLocationRepo) get(id primitive.ObjectID) *models.Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.locations[id]
}
