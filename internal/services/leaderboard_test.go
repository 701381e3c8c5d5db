package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/localnerve/amenitydb/internal/models"
	"github.com/localnerve/amenitydb/internal/services"
	"github.com/localnerve/amenitydb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewTime = time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)

func TestCleanBathroomsWithVending(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := testutil.CreateUsers(t, db, "u", 3)

	alpha := testutil.CreateBuilding(t, db, "Alpha Hall")
	alphaBath := testutil.CreateAmenity(t, db, alpha.BuildingID, models.Bathroom, "1", nil)
	alphaVend := testutil.CreateAmenity(t, db, alpha.BuildingID, models.VendingMachine, "1", nil)
	testutil.CreateReview(t, db, users[0].UserID, alphaBath.AmenityID, 4, reviewTime)
	testutil.CreateReview(t, db, users[1].UserID, alphaBath.AmenityID, 5, reviewTime)
	// vending machine reviews do not count toward the bathroom average
	testutil.CreateReview(t, db, users[0].UserID, alphaVend.AmenityID, 1, reviewTime)

	beta := testutil.CreateBuilding(t, db, "Beta Hall")
	betaBath1 := testutil.CreateAmenity(t, db, beta.BuildingID, models.Bathroom, "1", nil)
	betaBath2 := testutil.CreateAmenity(t, db, beta.BuildingID, models.Bathroom, "2", nil)
	testutil.CreateAmenity(t, db, beta.BuildingID, models.VendingMachine, "B", nil)
	testutil.CreateReview(t, db, users[0].UserID, betaBath1.AmenityID, 4, reviewTime)
	testutil.CreateReview(t, db, users[1].UserID, betaBath1.AmenityID, 4, reviewTime)
	testutil.CreateReview(t, db, users[2].UserID, betaBath2.AmenityID, 5, reviewTime)

	gamma := testutil.CreateBuilding(t, db, "Gamma Hall")
	gammaBath := testutil.CreateAmenity(t, db, gamma.BuildingID, models.Bathroom, "1", nil)
	testutil.CreateReview(t, db, users[0].UserID, gammaBath.AmenityID, 5, reviewTime)

	delta := testutil.CreateBuilding(t, db, "Delta Hall")
	testutil.CreateAmenity(t, db, delta.BuildingID, models.Bathroom, "1", nil)
	testutil.CreateAmenity(t, db, delta.BuildingID, models.VendingMachine, "1", nil)

	epsilon := testutil.CreateBuilding(t, db, "Epsilon Hall")
	epsilonBath := testutil.CreateAmenity(t, db, epsilon.BuildingID, models.Bathroom, "3", nil)
	testutil.CreateAmenity(t, db, epsilon.BuildingID, models.VendingMachine, "3", nil)
	testutil.CreateReview(t, db, users[2].UserID, epsilonBath.AmenityID, 4.5, reviewTime)

	entries, err := services.CleanBathroomsWithVending(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, entries, 3, "Gamma has no vending machine and Delta has no bathroom reviews")

	assert.Equal(t, "Alpha Hall", entries[0].BuildingName)
	assert.Equal(t, alpha.BuildingID, entries[0].BuildingID)
	assert.Equal(t, models.Bathroom, entries[0].AmenityType)
	assert.InDelta(t, 4.5, entries[0].AvgBathroomRating, 1e-9)
	assert.Equal(t, int64(2), entries[0].ReviewCount)
	assert.Equal(t, "1 Alpha Hall Way", entries[0].Address)

	assert.Equal(t, "Epsilon Hall", entries[1].BuildingName, "ties go to the building name")
	assert.InDelta(t, 4.5, entries[1].AvgBathroomRating, 1e-9)

	assert.Equal(t, "Beta Hall", entries[2].BuildingName)
	assert.InDelta(t, 4.33, entries[2].AvgBathroomRating, 1e-9)
	assert.Equal(t, int64(3), entries[2].ReviewCount)
}

func TestColdestFountains(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := testutil.CreateUsers(t, db, "u", 2)
	cold := testutil.CreateTag(t, db, models.ColdWaterLabel)
	warm := testutil.CreateTag(t, db, "WarmWater")

	foo := testutil.CreateBuilding(t, db, "Foo Hall")
	bar := testutil.CreateBuilding(t, db, "Bar Center")

	// Two fountains on the same floor with the same notes
	twinA := testutil.CreateAmenity(t, db, foo.BuildingID, models.WaterFountain, "2", testutil.StrPtr("Same spot"))
	twinB := testutil.CreateAmenity(t, db, foo.BuildingID, models.WaterFountain, "2", testutil.StrPtr("Same spot"))
	testutil.AttachTag(t, db, twinA.AmenityID, cold.TagID)
	testutil.AttachTag(t, db, twinB.AmenityID, cold.TagID)
	testutil.CreateReview(t, db, users[0].UserID, twinA.AmenityID, 4, reviewTime)
	testutil.CreateReview(t, db, users[1].UserID, twinB.AmenityID, 2, reviewTime)

	lobby := testutil.CreateAmenity(t, db, bar.BuildingID, models.WaterFountain, "1", testutil.StrPtr("Lobby"))
	testutil.AttachTag(t, db, lobby.AmenityID, cold.TagID)
	testutil.CreateReview(t, db, users[0].UserID, lobby.AmenityID, 5, reviewTime)

	// tagged but never reviewed
	unreviewed := testutil.CreateAmenity(t, db, bar.BuildingID, models.WaterFountain, "3", nil)
	testutil.AttachTag(t, db, unreviewed.AmenityID, cold.TagID)

	// reviewed but only tagged warm
	warmOnly := testutil.CreateAmenity(t, db, bar.BuildingID, models.WaterFountain, "4", nil)
	testutil.AttachTag(t, db, warmOnly.AmenityID, warm.TagID)
	testutil.CreateReview(t, db, users[0].UserID, warmOnly.AmenityID, 5, reviewTime)

	// tagged and reviewed but not a fountain
	bathroom := testutil.CreateAmenity(t, db, foo.BuildingID, models.Bathroom, "1", nil)
	testutil.AttachTag(t, db, bathroom.AmenityID, cold.TagID)
	testutil.CreateReview(t, db, users[0].UserID, bathroom.AmenityID, 5, reviewTime)

	entries, err := services.ColdestFountains(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Bar Center", entries[0].BuildingName)
	assert.Equal(t, "1", entries[0].Floor)
	assert.InDelta(t, 5.0, entries[0].AvgRating, 1e-9)
	assert.Equal(t, int64(1), entries[0].ColdTagCount)

	// Documented quirk: fountains that share building, floor, notes and cold
	// count are reported as one row averaging all of their reviews
	assert.Equal(t, "Foo Hall", entries[1].BuildingName)
	assert.Equal(t, "2", entries[1].Floor)
	require.NotNil(t, entries[1].Notes)
	assert.Equal(t, "Same spot", *entries[1].Notes)
	assert.InDelta(t, 3.0, entries[1].AvgRating, 1e-9)
	assert.Equal(t, int64(1), entries[1].ColdTagCount)
}

func TestOverallAmenities(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := testutil.CreateUsers(t, db, "u", 3)
	foo := testutil.CreateBuilding(t, db, "Foo Hall")

	top := testutil.CreateAmenity(t, db, foo.BuildingID, models.Bathroom, "1", nil)
	busy := testutil.CreateAmenity(t, db, foo.BuildingID, models.WaterFountain, "1", nil)
	quiet := testutil.CreateAmenity(t, db, foo.BuildingID, models.VendingMachine, "1", nil)
	thirds := testutil.CreateAmenity(t, db, foo.BuildingID, models.Bathroom, "2", nil)
	never := testutil.CreateAmenity(t, db, foo.BuildingID, models.Bathroom, "3", nil)

	testutil.CreateReview(t, db, users[0].UserID, top.AmenityID, 5, reviewTime)
	testutil.CreateReview(t, db, users[0].UserID, busy.AmenityID, 4, reviewTime)
	testutil.CreateReview(t, db, users[1].UserID, busy.AmenityID, 4, reviewTime)
	testutil.CreateReview(t, db, users[0].UserID, quiet.AmenityID, 4, reviewTime)
	testutil.CreateReview(t, db, users[0].UserID, thirds.AmenityID, 4, reviewTime)
	testutil.CreateReview(t, db, users[1].UserID, thirds.AmenityID, 4, reviewTime)
	testutil.CreateReview(t, db, users[2].UserID, thirds.AmenityID, 5, reviewTime)

	entries, err := services.OverallAmenities(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	ids := make([]uint64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.AmenityID)
		assert.NotEqual(t, never.AmenityID, e.AmenityID, "unreviewed amenities are excluded")
	}
	assert.Equal(t, []uint64{top.AmenityID, thirds.AmenityID, busy.AmenityID, quiet.AmenityID}, ids)

	assert.InDelta(t, 4.33, entries[1].AvgRating, 1e-9)
	assert.Equal(t, int64(3), entries[1].ReviewCount)
	assert.Equal(t, "Foo Hall", entries[1].BuildingName)
	assert.Equal(t, models.Bathroom, entries[1].Type)
	assert.Equal(t, "2", entries[1].Floor)
}

func TestLeaderboardsAreCapped(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "prolific")
	foo := testutil.CreateBuilding(t, db, "Foo Hall")

	for range services.LeaderboardSize + 3 {
		a := testutil.CreateAmenity(t, db, foo.BuildingID, models.Bathroom, "1", nil)
		testutil.CreateReview(t, db, user.UserID, a.AmenityID, 3, reviewTime)
	}

	entries, err := services.OverallAmenities(context.Background(), db)
	require.NoError(t, err)
	assert.Len(t, entries, services.LeaderboardSize)
}

func TestLeaderboardsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	clean, err := services.CleanBathroomsWithVending(ctx, db)
	require.NoError(t, err)
	assert.NotNil(t, clean)
	assert.Empty(t, clean)

	cold, err := services.ColdestFountains(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, cold)

	overall, err := services.OverallAmenities(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, overall)
}
