// review_service.go
//
// Campus amenity ratings and discovery service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of amenitydb.
// amenitydb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// amenitydb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with amenitydb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"math"

	"github.com/localnerve/amenitydb/internal/metrics"
	"github.com/localnerve/amenitydb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// ReviewInput is the payload for create and upsert
type ReviewInput struct {
	UserID        uint64
	AmenityID     uint64
	OverallRating float64
	RatingDetails map[string]any
}

// ReviewUpdate carries the review fields to change. Nil fields are left as they are.
type ReviewUpdate struct {
	OverallRating *float64
	RatingDetails map[string]any
}

func validateRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return BadRequest("overall_rating must be between %.0f and %.0f", MinRating, MaxRating)
	}
	return nil
}

func (in ReviewInput) toModel() (models.Review, error) {
	if in.UserID == 0 || in.AmenityID == 0 {
		return models.Review{}, BadRequest("user_id and amenity_id are required")
	}
	if err := validateRating(in.OverallRating); err != nil {
		return models.Review{}, err
	}
	details, err := models.NewJSON(in.RatingDetails)
	if err != nil {
		return models.Review{}, BadRequest("invalid rating_details: %v", err)
	}
	return models.Review{
		UserID:        in.UserID,
		AmenityID:     in.AmenityID,
		OverallRating: in.OverallRating,
		RatingDetails: details,
	}, nil
}

// CreateReview inserts a review. A second review by the same user for the
// same amenity is a conflict.
func CreateReview(ctx context.Context, db *gorm.DB, input ReviewInput) (review *models.Review, err error) {
	defer func() { metrics.ReviewWrites.WithLabelValues("create", metrics.Outcome(err)).Inc() }()

	r, err := input.toModel()
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(&r).Error; err != nil {
		return nil, storeError(err, "create review",
			"A review by this user for this amenity already exists")
	}
	return &r, nil
}

// GetReview returns a review by id
func GetReview(ctx context.Context, db *gorm.DB, reviewID uint64) (*models.Review, error) {
	var review models.Review
	if err := db.WithContext(ctx).Where("review_id = ?", reviewID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Review not found")
		}
		return nil, storeError(err, "get review", "")
	}
	return &review, nil
}

// ListReviewsForAmenity returns an amenity's reviews, most recent first
func ListReviewsForAmenity(ctx context.Context, db *gorm.DB, amenityID uint64) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := db.WithContext(ctx).
		Where("amenity_id = ?", amenityID).
		Order("created_at DESC").
		Order("review_id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, storeError(err, "list reviews", "")
	}
	return reviews, nil
}

// UpdateReview changes the rating and/or details of a review and returns the stored row
func UpdateReview(ctx context.Context, db *gorm.DB, reviewID uint64, update ReviewUpdate) (review *models.Review, err error) {
	defer func() { metrics.ReviewWrites.WithLabelValues("update", metrics.Outcome(err)).Inc() }()

	updates := map[string]any{}
	if update.OverallRating != nil {
		if err := validateRating(*update.OverallRating); err != nil {
			return nil, err
		}
		updates["overall_rating"] = *update.OverallRating
	}
	if update.RatingDetails != nil {
		details, err := models.NewJSON(update.RatingDetails)
		if err != nil {
			return nil, BadRequest("invalid rating_details: %v", err)
		}
		updates["rating_details"] = details
	}
	if len(updates) == 0 {
		return nil, BadRequest("No fields provided to update")
	}

	var r models.Review
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Review{}).Where("review_id = ?", reviewID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("review_id = ?", reviewID).First(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Review not found")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err, "update review", "")
	}
	return &r, nil
}

// DeleteReview removes a review and returns its id
func DeleteReview(ctx context.Context, db *gorm.DB, reviewID uint64) (deleted uint64, err error) {
	defer func() { metrics.ReviewWrites.WithLabelValues("delete", metrics.Outcome(err)).Inc() }()

	result := db.WithContext(ctx).Where("review_id = ?", reviewID).Delete(&models.Review{})
	if result.Error != nil {
		return 0, storeError(result.Error, "delete review", "")
	}
	if result.RowsAffected == 0 {
		return 0, NotFound("Review not found")
	}
	return reviewID, nil
}

// UpsertReview creates the user's review of an amenity or overwrites the
// rating and details of the existing one. The insert-or-update is a single
// ON CONFLICT statement, so concurrent upserts for the same pair cannot both
// insert. An existing review keeps its id and timestamp.
func UpsertReview(ctx context.Context, db *gorm.DB, input ReviewInput) (review *models.Review, err error) {
	defer func() { metrics.ReviewWrites.WithLabelValues("upsert", metrics.Outcome(err)).Inc() }()

	r, err := input.toModel()
	if err != nil {
		return nil, err
	}

	var stored models.Review
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "amenity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"overall_rating", "rating_details"}),
		}).Create(&r).Error
		if err != nil {
			return err
		}
		// RETURNING is not available on every dialect, so read back the surviving row
		return tx.Where("user_id = ? AND amenity_id = ?", input.UserID, input.AmenityID).First(&stored).Error
	})
	if err != nil {
		return nil, storeError(err, "upsert review", "")
	}
	return &stored, nil
}
