package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/localnerve/amenitydb/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// CreateBuilding creates a building at a new address named after it
func CreateBuilding(t testing.TB, db *gorm.DB, name string) models.Building {
	t.Helper()
	address := models.Address{Address: "1 " + name + " Way", Lat: 40.1, Lon: -88.2}
	require.NoError(t, db.Create(&address).Error, "create address for %s", name)

	building := models.Building{Name: name, AddressID: address.AddressID}
	require.NoError(t, db.Omit(clause.Associations).Create(&building).Error, "create building %s", name)
	building.Address = &address
	return building
}

// CreateAmenity creates an amenity in the building
func CreateAmenity(t testing.TB, db *gorm.DB, buildingID uint64, amenityType models.AmenityType, floor string, notes *string) models.Amenity {
	t.Helper()
	amenity := models.Amenity{BuildingID: buildingID, Type: amenityType, Floor: floor, Notes: notes}
	require.NoError(t, db.Omit(clause.Associations).Create(&amenity).Error, "create amenity")
	return amenity
}

// CreateUser creates a user with an email derived from the username
func CreateUser(t testing.TB, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.edu", username),
		JoinDate: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&user).Error, "create user %s", username)
	return user
}

// CreateTag creates a tag
func CreateTag(t testing.TB, db *gorm.DB, label string) models.Tag {
	t.Helper()
	tag := models.Tag{Label: label}
	require.NoError(t, db.Create(&tag).Error, "create tag %s", label)
	return tag
}

// AttachTag links a tag to an amenity
func AttachTag(t testing.TB, db *gorm.DB, amenityID, tagID uint64) {
	t.Helper()
	link := models.AmenityTag{AmenityID: amenityID, TagID: tagID}
	require.NoError(t, db.Omit(clause.Associations).Create(&link).Error, "attach tag")
}

// CreateReview creates a review written at the given time
func CreateReview(t testing.TB, db *gorm.DB, userID, amenityID uint64, rating float64, at time.Time) models.Review {
	t.Helper()
	details, err := models.NewJSON(map[string]any{"note": "fixture"})
	require.NoError(t, err)
	review := models.Review{
		UserID:        userID,
		AmenityID:     amenityID,
		OverallRating: rating,
		RatingDetails: details,
		Timestamp:     at.UTC(),
	}
	require.NoError(t, db.Omit(clause.Associations).Create(&review).Error, "create review")
	return review
}

// CreateUsers creates n users named prefix0..prefixN-1
func CreateUsers(t testing.TB, db *gorm.DB, prefix string, n int) []models.User {
	t.Helper()
	users := make([]models.User, 0, n)
	for i := range n {
		users = append(users, CreateUser(t, db, fmt.Sprintf("%s%d", prefix, i)))
	}
	return users
}

// Count returns the number of rows of model
func Count(t testing.TB, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
