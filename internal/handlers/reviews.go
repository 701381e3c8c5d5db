package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/amenitydb/internal/services"
	"github.com/localnerve/amenitydb/internal/types"
	"gorm.io/gorm"
)

// ReviewHandler handles review routes
type ReviewHandler struct {
	DB *gorm.DB
}

// ReviewRequest is the body of POST /api/reviews and POST /api/reviews/upsert
type ReviewRequest struct {
	UserID        types.FlexInt64 `json:"user_id" validate:"required,gt=0"`
	AmenityID     types.FlexInt64 `json:"amenity_id" validate:"required,gt=0"`
	OverallRating *float64        `json:"overall_rating" validate:"required,gte=0,lte=5"`
	RatingDetails map[string]any  `json:"rating_details"`
}

// ReviewUpdateRequest is the body of PUT /api/reviews/:id
type ReviewUpdateRequest struct {
	OverallRating *float64       `json:"overall_rating" validate:"omitempty,gte=0,lte=5"`
	RatingDetails map[string]any `json:"rating_details"`
}

// ReviewCreatedResponse is returned by POST /api/reviews
type ReviewCreatedResponse struct {
	ReviewID  uint64    `json:"review_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ReviewUpsertedResponse is returned by POST /api/reviews/upsert
type ReviewUpsertedResponse struct {
	Message  string `json:"message"`
	ReviewID uint64 `json:"review_id"`
}

func (r ReviewRequest) input() services.ReviewInput {
	return services.ReviewInput{
		UserID:        r.UserID.ID(),
		AmenityID:     r.AmenityID.ID(),
		OverallRating: *r.OverallRating,
		RatingDetails: r.RatingDetails,
	}
}

// CreateReview handles POST /api/reviews
// @Summary Create a review
// @Description A user can review an amenity once; use the upsert route to overwrite
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body ReviewRequest true "Review"
// @Success 201 {object} ReviewCreatedResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var body ReviewRequest
	if err := parseBody(c, &body, "reviews.validation.input"); err != nil {
		return respondError(c, err, "reviews.create")
	}
	review, err := services.CreateReview(c.UserContext(), h.DB, body.input())
	if err != nil {
		return respondError(c, err, "reviews.create")
	}
	return c.Status(fiber.StatusCreated).JSON(ReviewCreatedResponse{
		ReviewID:  review.ReviewID,
		Timestamp: review.Timestamp,
	})
}

// GetReview handles GET /api/reviews/:id
// @Summary Get a review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Review
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "reviews.get")
	}
	review, err := services.GetReview(c.UserContext(), h.DB, id)
	if err != nil {
		return respondError(c, err, "reviews.get")
	}
	return c.Status(fiber.StatusOK).JSON(review)
}

// UpdateReview handles PUT /api/reviews/:id
// @Summary Update a review
// @Description Changes the rating and/or the rating details
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param review body ReviewUpdateRequest true "Fields to change"
// @Success 200 {object} models.Review
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "reviews.update")
	}
	var body ReviewUpdateRequest
	if err := parseBody(c, &body, "reviews.validation.input"); err != nil {
		return respondError(c, err, "reviews.update")
	}
	review, err := services.UpdateReview(c.UserContext(), h.DB, id, services.ReviewUpdate{
		OverallRating: body.OverallRating,
		RatingDetails: body.RatingDetails,
	})
	if err != nil {
		return respondError(c, err, "reviews.update")
	}
	return c.Status(fiber.StatusOK).JSON(review)
}

// DeleteReview handles DELETE /api/reviews/:id
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} map[string]uint64
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "reviews.delete")
	}
	deleted, err := services.DeleteReview(c.UserContext(), h.DB, id)
	if err != nil {
		return respondError(c, err, "reviews.delete")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted_review_id": deleted})
}

// UpsertReview handles POST /api/reviews/upsert
// @Summary Create or overwrite a review
// @Description Overwrites rating and details of the user's existing review of the amenity, keeping its id and timestamp
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body ReviewRequest true "Review"
// @Success 200 {object} ReviewUpsertedResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reviews/upsert [post]
func (h *ReviewHandler) UpsertReview(c *fiber.Ctx) error {
	var body ReviewRequest
	if err := parseBody(c, &body, "reviews.validation.input"); err != nil {
		return respondError(c, err, "reviews.upsert")
	}
	review, err := services.UpsertReview(c.UserContext(), h.DB, body.input())
	if err != nil {
		return respondError(c, err, "reviews.upsert")
	}
	return c.Status(fiber.StatusOK).JSON(ReviewUpsertedResponse{
		Message:  "Review upserted successfully",
		ReviewID: review.ReviewID,
	})
}
