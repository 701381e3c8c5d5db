package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// AmenityStatistics summarizes the reviews of one amenity
type AmenityStatistics struct {
	AmenityID    uint64     `json:"amenity_id"`
	BuildingName string     `json:"building_name"`
	AvgRating    float64    `json:"avg_rating"`
	ReviewCount  int64      `json:"review_count"`
	LatestReview *time.Time `json:"latest_review"`
}

// GetAmenityStatistics returns the average rating (0 without reviews), the
// review count and the most recent review time (nil without reviews) of an amenity
func GetAmenityStatistics(ctx context.Context, db *gorm.DB, amenityID uint64) (*AmenityStatistics, error) {
	var row struct {
		BuildingName string
		AvgRating    float64
		ReviewCount  int64
		LatestReview *time.Time
	}

	// lr is the newest review, the highest id winning a timestamp tie
	result := db.WithContext(ctx).
		Table("amenities AS a").
		Select(`b.name AS building_name,
			COALESCE(AVG(r.overall_rating), 0) AS avg_rating,
			COUNT(r.review_id) AS review_count,
			lr.created_at AS latest_review`).
		Joins("JOIN buildings b ON b.building_id = a.building_id").
		Joins("LEFT JOIN reviews r ON r.amenity_id = a.amenity_id").
		Joins(`LEFT JOIN reviews lr ON lr.review_id = (
			SELECT MAX(r2.review_id) FROM reviews r2
			WHERE r2.amenity_id = a.amenity_id
			AND r2.created_at = (SELECT MAX(r3.created_at) FROM reviews r3 WHERE r3.amenity_id = a.amenity_id))`).
		Where("a.amenity_id = ?", amenityID).
		Group("a.amenity_id, b.name, lr.created_at").
		Scan(&row)
	if result.Error != nil {
		return nil, storeError(result.Error, "amenity statistics", "")
	}
	if result.RowsAffected == 0 {
		return nil, NotFound("Amenity %d not found", amenityID)
	}

	return &AmenityStatistics{
		AmenityID:    amenityID,
		BuildingName: row.BuildingName,
		AvgRating:    round2(row.AvgRating),
		ReviewCount:  row.ReviewCount,
		LatestReview: row.LatestReview,
	}, nil
}
