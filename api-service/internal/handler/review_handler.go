package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"loc8r/api-service/internal/models"
)

type ReviewService interface {
	CreateReview(ctx context.Context, locationID, authorEmail string, input models.ReviewInput) (*models.Review, error)
	GetReview(ctx context.Context, locationID, reviewID string) (string, *models.Review, error)
	UpdateReview(ctx context.Context, locationID, reviewID, author string, input models.ReviewInput) (*models.Review, error)
	DeleteReview(ctx context.Context, locationID, reviewID string) error
}

type ReviewHandler struct {
	service ReviewService
}

func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /api/locations/:locationid/reviews. The author is
// resolved from the bearer identity placed in the context by AuthMiddleware.
func (h *ReviewHandler) Create(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"name": "ValidationError", "message": "Invalid input"})
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), c.Param("locationid"), c.GetString("email"), input)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ReadOne handles GET /api/locations/:locationid/reviews/:reviewid.
func (h *ReviewHandler) ReadOne(c *gin.Context) {
	locationID := c.Param("locationid")
	locationName, review, err := h.service.GetReview(c.Request.Context(), locationID, c.Param("reviewid"))
	if err != nil {
		respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location": gin.H{"name": locationName, "id": locationID},
		"review":   review,
	})
}

// UpdateOne handles PUT /api/locations/:locationid/reviews/:reviewid.
func (h *ReviewHandler) UpdateOne(c *gin.Context) {
	var req struct {
		Author     string `json:"author"`
		Rating     int    `json:"rating"`
		ReviewText string `json:"reviewText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"name": "ValidationError", "message": "Invalid input"})
		return
	}

	input := models.ReviewInput{Rating: req.Rating, ReviewText: req.ReviewText}
	review, err := h.service.UpdateReview(c.Request.Context(), c.Param("locationid"), c.Param("reviewid"), req.Author, input)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteOne handles DELETE /api/locations/:locationid/reviews/:reviewid.
func (h *ReviewHandler) DeleteOne(c *gin.Context) {
	if err := h.service.DeleteReview(c.Request.Context(), c.Param("locationid"), c.Param("reviewid")); err != nil {
		respondReviewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"name": "ValidationError", "message": validationMessage(err)})
	case errors.Is(err, models.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
	case errors.Is(err, models.ErrNoReviews):
		c.JSON(http.StatusNotFound, gin.H{"message": "No reviews found"})
	case errors.Is(err, models.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Location not found"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), models.ErrValidation.Error())
	return strings.TrimPrefix(msg, ": ")
}
