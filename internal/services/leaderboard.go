// leaderboard.go
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
	"math"

	"github.com/localnerve/amenitydb/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// LeaderboardSize is the number of rows every leaderboard returns at most
const LeaderboardSize = 15

// CleanBathroomEntry ranks a building by the reviews of its bathrooms
type CleanBathroomEntry struct {
	BuildingID        uint64             `json:"building_id"`
	BuildingName      string             `json:"building_name"`
	AmenityType       models.AmenityType `json:"amenity_type"`
	AvgBathroomRating float64            `json:"avg_bathroom_rating"`
	ReviewCount       int64              `json:"review_count"`
	Address           string             `json:"address"`
}

// ColdFountainEntry ranks a water fountain group by its ColdWater tagging
type ColdFountainEntry struct {
	BuildingName string  `json:"building_name"`
	Floor        string  `json:"floor"`
	Notes        *string `json:"notes"`
	AvgRating    float64 `json:"avg_rating"`
	ColdTagCount int64   `json:"cold_tag_count"`
}

// OverallAmenityEntry ranks a single amenity by its reviews
type OverallAmenityEntry struct {
	AmenityID    uint64             `json:"amenity_id"`
	BuildingName string             `json:"building_name"`
	Type         models.AmenityType `json:"type"`
	Floor        string             `json:"floor"`
	AvgRating    float64            `json:"avg_rating"`
	ReviewCount  int64              `json:"review_count"`
}

// leaderboardQuery starts a labelled read so the statement is recognizable in store logs
func leaderboardQuery(ctx context.Context, db *gorm.DB, name string) *gorm.DB {
	return db.WithContext(ctx).Clauses(hints.CommentBefore("select", "leaderboard:"+name))
}

// CleanBathroomsWithVending ranks buildings that have at least one vending
// machine by the average rating of their bathroom reviews. Buildings whose
// bathrooms have no reviews are left out. Ties go to the building name.
func CleanBathroomsWithVending(ctx context.Context, db *gorm.DB) ([]CleanBathroomEntry, error) {
	entries := make([]CleanBathroomEntry, 0, LeaderboardSize)
	err := leaderboardQuery(ctx, db, "clean-bathrooms-vending").
		Table("buildings AS b").
		Select(`b.building_id, b.name AS building_name, a.type AS amenity_type,
			AVG(r.overall_rating) AS avg_bathroom_rating,
			COUNT(r.review_id) AS review_count, ad.address AS address`).
		Joins("JOIN amenities a ON a.building_id = b.building_id").
		Joins("JOIN reviews r ON r.amenity_id = a.amenity_id").
		Joins("JOIN addresses ad ON ad.address_id = b.address_id").
		Where("a.type = ?", models.Bathroom).
		Where("EXISTS (SELECT 1 FROM amenities v WHERE v.building_id = b.building_id AND v.type = ?)", models.VendingMachine).
		Group("b.building_id, b.name, a.type, ad.address").
		Order("avg_bathroom_rating DESC").
		Order("b.name ASC").
		Limit(LeaderboardSize).
		Scan(&entries).Error
	if err != nil {
		return nil, storeError(err, "clean bathrooms leaderboard", "")
	}

	for i := range entries {
		entries[i].AvgBathroomRating = round2(entries[i].AvgBathroomRating)
	}
	return entries, nil
}

// ColdestFountains ranks water fountains tagged ColdWater by their ColdWater
// association count, then by average review rating.
//
// Rows are grouped by building name, floor, notes and count rather than by
// amenity, so fountains that agree on all four collapse into one row whose
// average covers the reviews of all of them.
func ColdestFountains(ctx context.Context, db *gorm.DB) ([]ColdFountainEntry, error) {
	coldTags := db.
		Table("amenities AS a2").
		Select("a2.amenity_id, COUNT(atg.tag_id) AS cold_tag_count").
		Joins("JOIN amenity_tags atg ON atg.amenity_id = a2.amenity_id").
		Joins("JOIN tags t ON t.tag_id = atg.tag_id").
		Where("a2.type = ? AND t.label = ?", models.WaterFountain, models.ColdWaterLabel).
		Group("a2.amenity_id")

	entries := make([]ColdFountainEntry, 0, LeaderboardSize)
	err := leaderboardQuery(ctx, db, "coldest-fountains").
		Table("buildings AS b").
		Select(`b.name AS building_name, a.floor AS floor, a.notes AS notes,
			AVG(r.overall_rating) AS avg_rating, ct.cold_tag_count AS cold_tag_count`).
		Joins("JOIN amenities a ON a.building_id = b.building_id").
		Joins("JOIN reviews r ON r.amenity_id = a.amenity_id").
		Joins("JOIN (?) AS ct ON ct.amenity_id = a.amenity_id", coldTags).
		Group("b.name, a.floor, a.notes, ct.cold_tag_count").
		Order("ct.cold_tag_count DESC").
		Order("avg_rating DESC").
		Order("b.name ASC").
		Order("a.floor ASC").
		Limit(LeaderboardSize).
		Scan(&entries).Error
	if err != nil {
		return nil, storeError(err, "coldest fountains leaderboard", "")
	}

	for i := range entries {
		entries[i].AvgRating = round2(entries[i].AvgRating)
	}
	return entries, nil
}

// OverallAmenities ranks every reviewed amenity by average rating, then
// review count, then id
func OverallAmenities(ctx context.Context, db *gorm.DB) ([]OverallAmenityEntry, error) {
	entries := make([]OverallAmenityEntry, 0, LeaderboardSize)
	err := leaderboardQuery(ctx, db, "overall-amenities").
		Table("amenities AS a").
		Select(`a.amenity_id, b.name AS building_name, a.type AS type, a.floor AS floor,
			AVG(r.overall_rating) AS avg_rating, COUNT(r.review_id) AS review_count`).
		Joins("JOIN buildings b ON b.building_id = a.building_id").
		Joins("JOIN reviews r ON r.amenity_id = a.amenity_id").
		Group("a.amenity_id, b.name, a.type, a.floor").
		Order("avg_rating DESC").
		Order("review_count DESC").
		Order("a.amenity_id ASC").
		Limit(LeaderboardSize).
		Scan(&entries).Error
	if err != nil {
		return nil, storeError(err, "overall amenities leaderboard", "")
	}

	for i := range entries {
		entries[i].AvgRating = round2(entries[i].AvgRating)
	}
	return entries, nil
}

// round2 rounds half away from zero to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
