package services_test

import (
	"context"
	"testing"

	"github.com/localnerve/amenitydb/internal/models"
	"github.com/localnerve/amenitydb/internal/services"
	"github.com/localnerve/amenitydb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachAndDetachTag(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	foo := testutil.CreateBuilding(t, db, "Foo Hall")
	amenity := testutil.CreateAmenity(t, db, foo.BuildingID, models.WaterFountain, "1", nil)
	tag := testutil.CreateTag(t, db, "ColdWater")

	link, attached, err := services.AttachTag(ctx, db, amenity.AmenityID, tag.TagID)
	require.NoError(t, err)
	assert.True(t, attached)
	assert.Equal(t, amenity.AmenityID, link.AmenityID)
	assert.Equal(t, tag.TagID, link.TagID)

	_, attached, err = services.AttachTag(ctx, db, amenity.AmenityID, tag.TagID)
	require.NoError(t, err, "attaching twice is absorbed")
	assert.False(t, attached)
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.AmenityTag{}))

	require.NoError(t, services.DetachTag(ctx, db, amenity.AmenityID, tag.TagID))
	assert.Zero(t, testutil.Count(t, db, &models.AmenityTag{}))

	err = services.DetachTag(ctx, db, amenity.AmenityID, tag.TagID)
	assert.True(t, services.IsNotFound(err))
}

func TestAttachTagUnknownIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	foo := testutil.CreateBuilding(t, db, "Foo Hall")
	amenity := testutil.CreateAmenity(t, db, foo.BuildingID, models.WaterFountain, "1", nil)
	tag := testutil.CreateTag(t, db, "ColdWater")

	_, _, err := services.AttachTag(ctx, db, amenity.AmenityID+1, tag.TagID)
	assert.True(t, services.IsNotFound(err))

	_, _, err = services.AttachTag(ctx, db, amenity.AmenityID, tag.TagID+1)
	assert.True(t, services.IsNotFound(err))

	_, err = services.ListAmenityTags(ctx, db, amenity.AmenityID+1)
	assert.True(t, services.IsNotFound(err))
}

func TestTagCatalog(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := services.CreateTag(ctx, db, "Spacious")
	require.NoError(t, err)
	clean, err := services.CreateTag(ctx, db, "  Clean ")
	require.NoError(t, err)
	assert.Equal(t, "Clean", clean.Label)

	_, err = services.CreateTag(ctx, db, "Clean")
	assert.True(t, services.IsConflict(err), "%v", err)

	_, err = services.CreateTag(ctx, db, " ")
	assert.True(t, services.IsBadRequest(err))

	tags, err := services.ListTags(ctx, db)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Clean", tags[0].Label)
	assert.Equal(t, "Spacious", tags[1].Label)
}
