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

func TestAmenityStatistics(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := testutil.CreateUsers(t, db, "u", 3)
	foo := testutil.CreateBuilding(t, db, "Foo Hall")
	amenity := testutil.CreateAmenity(t, db, foo.BuildingID, models.Bathroom, "1", nil)

	latest := time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC)
	testutil.CreateReview(t, db, users[0].UserID, amenity.AmenityID, 4, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	testutil.CreateReview(t, db, users[1].UserID, amenity.AmenityID, 4, latest)
	testutil.CreateReview(t, db, users[2].UserID, amenity.AmenityID, 5, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

	stats, err := services.GetAmenityStatistics(context.Background(), db, amenity.AmenityID)
	require.NoError(t, err)
	assert.Equal(t, amenity.AmenityID, stats.AmenityID)
	assert.Equal(t, "Foo Hall", stats.BuildingName)
	assert.InDelta(t, 4.33, stats.AvgRating, 1e-9)
	assert.Equal(t, int64(3), stats.ReviewCount)
	require.NotNil(t, stats.LatestReview)
	assert.True(t, latest.Equal(*stats.LatestReview), "got %v", *stats.LatestReview)
}

func TestAmenityStatisticsWithoutReviews(t *testing.T) {
	db := testutil.NewTestDB(t)
	foo := testutil.CreateBuilding(t, db, "Foo Hall")
	amenity := testutil.CreateAmenity(t, db, foo.BuildingID, models.WaterFountain, "2", nil)

	stats, err := services.GetAmenityStatistics(context.Background(), db, amenity.AmenityID)
	require.NoError(t, err)
	assert.Equal(t, "Foo Hall", stats.BuildingName)
	assert.Zero(t, stats.AvgRating)
	assert.Zero(t, stats.ReviewCount)
	assert.Nil(t, stats.LatestReview)
}

func TestAmenityStatisticsUnknownAmenity(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := services.GetAmenityStatistics(context.Background(), db, 404)
	assert.True(t, services.IsNotFound(err), "%v", err)
}
