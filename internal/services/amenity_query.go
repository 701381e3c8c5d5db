package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/localnerve/amenitydb/internal/models"
	"gorm.io/gorm"
)

const (
	// DefaultListLimit is used when a listing request names no limit
	DefaultListLimit = 50
	// MaxListLimit bounds a single listing page
	MaxListLimit = 1500
)

// AmenityFilter selects and pages the amenity listing.
// A zero Limit means DefaultListLimit.
type AmenityFilter struct {
	Keyword string
	Type    models.AmenityType
	Limit   int
	Offset  int
}

// AmenityListing is one amenity row with its building, address and live rating aggregates
type AmenityListing struct {
	AmenityID    uint64             `json:"amenity_id"`
	Type         models.AmenityType `json:"type"`
	Floor        string             `json:"floor"`
	Notes        *string            `json:"notes"`
	BuildingName string             `json:"building_name"`
	Address      string             `json:"address"`
	Lat          float64            `json:"lat"`
	Lon          float64            `json:"lon"`
	AvgRating    float64            `json:"avg_rating"`
	ReviewCount  int64              `json:"review_count"`
}

// normalize trims the keyword and applies paging defaults and bounds
func (f AmenityFilter) normalize() (AmenityFilter, error) {
	f.Keyword = strings.TrimSpace(f.Keyword)
	f.Type = models.AmenityType(strings.TrimSpace(string(f.Type)))
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit < 1 || f.Limit > MaxListLimit {
		return f, BadRequest("limit must be between 1 and %d", MaxListLimit)
	}
	if f.Offset < 0 {
		return f, BadRequest("offset must not be negative")
	}
	return f, nil
}

// ListAmenities lists amenities matching the filter with their average rating
// and review count. Amenities without reviews are included with zero values.
// Rows are ordered by average rating, then review count, both descending, with
// the amenity id as the final ascending tie-break so pages are stable.
func ListAmenities(ctx context.Context, db *gorm.DB, filter AmenityFilter) ([]AmenityListing, error) {
	f, err := filter.normalize()
	if err != nil {
		return nil, err
	}

	query := db.WithContext(ctx).
		Table("amenities AS a").
		Select(`a.amenity_id, a.type, a.floor, a.notes,
			b.name AS building_name, ad.address AS address, ad.lat, ad.lon,
			COALESCE(AVG(r.overall_rating), 0) AS avg_rating,
			COUNT(r.review_id) AS review_count`).
		Joins("JOIN buildings b ON a.building_id = b.building_id").
		Joins("JOIN addresses ad ON b.address_id = ad.address_id").
		Joins("LEFT JOIN reviews r ON r.amenity_id = a.amenity_id")

	if f.Type != "" {
		query = query.Where("a.type = ?", f.Type)
	}

	if f.Keyword != "" {
		// the database folds both sides
		pattern := "%" + escapeLike(f.Keyword) + "%"
		query = query.Where(
			`(LOWER(b.name) LIKE LOWER(@kw) ESCAPE '!'
			OR LOWER(ad.address) LIKE LOWER(@kw) ESCAPE '!'
			OR LOWER(COALESCE(a.notes, '')) LIKE LOWER(@kw) ESCAPE '!')`,
			sql.Named("kw", pattern),
		)
	}

	listings := make([]AmenityListing, 0)
	err = query.
		Group("a.amenity_id, a.type, a.floor, a.notes, b.name, ad.address, ad.lat, ad.lon").
		Order("avg_rating DESC").
		Order("review_count DESC").
		Order("a.amenity_id ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Scan(&listings).Error
	if err != nil {
		return nil, storeError(err, "list amenities", "")
	}

	return listings, nil
}

// escapeLike makes LIKE wildcards in s match literally under ESCAPE '!'
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
