package services_test

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/localnerve/amenitydb/data"
	"github.com/localnerve/amenitydb/internal/models"
	"github.com/localnerve/amenitydb/internal/services"
	"github.com/localnerve/amenitydb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Foo Hall", services.CleanText("  Foo\x00 Hall\x07 "))
	assert.Equal(t, "Line\tone\nLine two", services.CleanText("Line\tone\nLine two"))
	assert.Equal(t, "", services.CleanText("\x00\x01"))
}

func TestLoadSeedBuildings(t *testing.T) {
	raw := `[
		{"name": "Foo Hall", "address": "1 Foo St"},
		{"name": "  Foo Hall\u0000", "address": "2 Foo St"},
		{"name": "", "address": "3 Nowhere"},
		{"name": "Bar Center", "address": " "},
		{"name": "Baz Lab", "address": "9 Baz Ave"}
	]`

	buildings, err := services.LoadSeedBuildings(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []services.SeedBuilding{
		{Name: "Foo Hall", Address: "1 Foo St"},
		{Name: "Baz Lab", Address: "9 Baz Ave"},
	}, buildings)

	_, err = services.LoadSeedBuildings(strings.NewReader(`{"name": "not a list"}`))
	assert.Error(t, err)
}

func TestEmbeddedSeedBuildings(t *testing.T) {
	buildings, err := services.LoadSeedBuildings(bytes.NewReader(data.SeedBuildings))
	require.NoError(t, err)
	assert.Len(t, buildings, 20)
}

func TestSeed(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	buildings := []services.SeedBuilding{
		{Name: "Foo Hall", Address: "1 Foo St"},
		{Name: "Bar Center", Address: "2 Bar St"},
	}

	report, err := services.Seed(ctx, db, buildings, services.SeedOptions{
		Users:   8,
		Reviews: 40,
		Rand:    rand.New(rand.NewPCG(7, 11)),
		Now:     now,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Buildings)
	assert.GreaterOrEqual(t, report.Amenities, 2*len(models.AmenityTypes))
	assert.LessOrEqual(t, report.Amenities, 2*4*len(models.AmenityTypes))
	assert.Equal(t, int64(report.Amenities), testutil.Count(t, db, &models.Amenity{}))
	assert.Equal(t, int64(8), report.Users)
	assert.Equal(t, len(models.StandardTagLabels), report.Tags)
	assert.Positive(t, report.Reviews)
	assert.LessOrEqual(t, report.Reviews, int64(40))
	assert.Equal(t, report.Reviews, testutil.Count(t, db, &models.Review{}))
	assert.Equal(t, report.AmenityTags, testutil.Count(t, db, &models.AmenityTag{}))

	var amenities []models.Amenity
	require.NoError(t, db.Find(&amenities).Error)
	for _, a := range amenities {
		require.NotNil(t, a.Notes)
		assert.True(t, strings.HasPrefix(*a.Notes, fmt.Sprintf("Located on floor %s, near entrance/exit ", a.Floor)), *a.Notes)
	}

	var addresses []models.Address
	require.NoError(t, db.Find(&addresses).Error)
	require.Len(t, addresses, 2)
	for _, ad := range addresses {
		assert.LessOrEqual(t, math.Abs(ad.Lat-services.CampusLat), services.CoordinateJitter)
		assert.LessOrEqual(t, math.Abs(ad.Lon-services.CampusLon), services.CoordinateJitter)
	}

	var reviews []models.Review
	require.NoError(t, db.Find(&reviews).Error)
	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.OverallRating, 1.0)
		assert.LessOrEqual(t, r.OverallRating, 5.0)
		assert.False(t, r.Timestamp.After(now))
		assert.NotEmpty(t, r.RatingDetails.Map())
	}

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	for _, u := range users {
		assert.True(t, strings.HasSuffix(u.Email, "@illinois.edu"), u.Email)
	}
}

func TestSeedReusesExistingRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	buildings := []services.SeedBuilding{{Name: "Foo Hall", Address: "1 Foo St"}}

	_, err := services.Seed(ctx, db, buildings, services.SeedOptions{Users: 3, Reviews: 5, Rand: rand.New(rand.NewPCG(1, 1))})
	require.NoError(t, err)

	// Same generator seed: the same users are generated again and skipped
	report, err := services.Seed(ctx, db, buildings, services.SeedOptions{Users: 3, Reviews: 5, Rand: rand.New(rand.NewPCG(1, 1))})
	require.NoError(t, err)
	assert.Zero(t, report.Users)

	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Building{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Address{}))
	assert.Equal(t, int64(3), testutil.Count(t, db, &models.User{}))
	assert.Equal(t, int64(len(models.StandardTagLabels)), testutil.Count(t, db, &models.Tag{}))
}

func TestSeedWithoutUsersSkipsReviews(t *testing.T) {
	db := testutil.NewTestDB(t)

	report, err := services.Seed(context.Background(), db,
		[]services.SeedBuilding{{Name: "Foo Hall", Address: "1 Foo St"}},
		services.SeedOptions{Reviews: 10, Rand: rand.New(rand.NewPCG(3, 4))})
	require.NoError(t, err)
	assert.Zero(t, report.Reviews)
	assert.Zero(t, testutil.Count(t, db, &models.Review{}))
}
