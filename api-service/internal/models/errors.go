package models

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidID      = errors.New("invalid id")
	ErrValidation     = errors.New("validation error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNoReviews      = errors.New("no reviews found")
)
