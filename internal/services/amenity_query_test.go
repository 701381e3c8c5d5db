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
	"gorm.io/gorm"
)

type listingFixture struct {
	db       *gorm.DB
	bathroom models.Amenity
	fountain models.Amenity
	vending  models.Amenity
}

// newListingFixture builds two buildings, three amenities and three reviews:
// bathroom avg 4.5 over 2, fountain avg 4.5 over 1, vending machine unreviewed
func newListingFixture(t *testing.T) listingFixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	foo := testutil.CreateBuilding(t, db, "Foo Hall")
	bar := testutil.CreateBuilding(t, db, "Bar Center")

	f := listingFixture{db: db}
	f.bathroom = testutil.CreateAmenity(t, db, foo.BuildingID, models.Bathroom, "1", testutil.StrPtr("Next to the 100% juice bar"))
	f.fountain = testutil.CreateAmenity(t, db, foo.BuildingID, models.WaterFountain, "2", testutil.StrPtr("By the elevators"))
	f.vending = testutil.CreateAmenity(t, db, bar.BuildingID, models.VendingMachine, "B", nil)

	users := testutil.CreateUsers(t, db, "reviewer", 2)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	testutil.CreateReview(t, db, users[0].UserID, f.bathroom.AmenityID, 5, at)
	testutil.CreateReview(t, db, users[1].UserID, f.bathroom.AmenityID, 4, at)
	testutil.CreateReview(t, db, users[0].UserID, f.fountain.AmenityID, 4.5, at)
	return f
}

func listingIDs(listings []services.AmenityListing) []uint64 {
	ids := make([]uint64, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.AmenityID)
	}
	return ids
}

func TestListAmenitiesOrdering(t *testing.T) {
	f := newListingFixture(t)

	listings, err := services.ListAmenities(context.Background(), f.db, services.AmenityFilter{})
	require.NoError(t, err)
	require.Len(t, listings, 3)

	assert.Equal(t, []uint64{f.bathroom.AmenityID, f.fountain.AmenityID, f.vending.AmenityID}, listingIDs(listings))

	assert.InDelta(t, 4.5, listings[0].AvgRating, 1e-9)
	assert.Equal(t, int64(2), listings[0].ReviewCount)
	assert.Equal(t, "Foo Hall", listings[0].BuildingName)
	assert.Equal(t, "1 Foo Hall Way", listings[0].Address)
	assert.InDelta(t, 40.1, listings[0].Lat, 1e-9)
}

func TestListAmenitiesZeroReviews(t *testing.T) {
	f := newListingFixture(t)

	listings, err := services.ListAmenities(context.Background(), f.db, services.AmenityFilter{
		Type: models.VendingMachine,
	})
	require.NoError(t, err)
	require.Len(t, listings, 1)

	assert.Equal(t, f.vending.AmenityID, listings[0].AmenityID)
	assert.Zero(t, listings[0].AvgRating)
	assert.Zero(t, listings[0].ReviewCount)
	assert.Nil(t, listings[0].Notes)
}

func TestListAmenitiesTieBreakByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	b := testutil.CreateBuilding(t, db, "Tie Hall")
	users := testutil.CreateUsers(t, db, "u", 10)
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a := testutil.CreateAmenity(t, db, b.BuildingID, models.Bathroom, "1", nil)
	c := testutil.CreateAmenity(t, db, b.BuildingID, models.Bathroom, "2", nil)
	bb := testutil.CreateAmenity(t, db, b.BuildingID, models.Bathroom, "3", nil)

	for i := range 10 {
		testutil.CreateReview(t, db, users[i].UserID, a.AmenityID, 4.5, at)
	}
	// bb is created after c but both get the same average and count
	for i := range 3 {
		testutil.CreateReview(t, db, users[i].UserID, bb.AmenityID, 4.5, at)
		testutil.CreateReview(t, db, users[i].UserID, c.AmenityID, 4.5, at)
	}

	listings, err := services.ListAmenities(context.Background(), db, services.AmenityFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.AmenityID, c.AmenityID, bb.AmenityID}, listingIDs(listings))
}

func TestListAmenitiesKeyword(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		keyword string
		want    []uint64
	}{
		{"building name any case", "FOO hall", []uint64{f.bathroom.AmenityID, f.fountain.AmenityID}},
		{"address", "center way", []uint64{f.vending.AmenityID}},
		{"notes", "elevator", []uint64{f.fountain.AmenityID}},
		{"surrounding space trimmed", "  bar center  ", []uint64{f.vending.AmenityID}},
		{"percent is literal", "100%", []uint64{f.bathroom.AmenityID}},
		{"underscore is literal", "_", []uint64{}},
		{"no match", "library", []uint64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings, err := services.ListAmenities(ctx, f.db, services.AmenityFilter{Keyword: tt.keyword})
			require.NoError(t, err)
			assert.Equal(t, tt.want, listingIDs(listings))
		})
	}
}

func TestListAmenitiesTypeAndKeyword(t *testing.T) {
	f := newListingFixture(t)

	listings, err := services.ListAmenities(context.Background(), f.db, services.AmenityFilter{
		Keyword: "foo",
		Type:    models.WaterFountain,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{f.fountain.AmenityID}, listingIDs(listings))
}

func TestListAmenitiesPaging(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	page, err := services.ListAmenities(ctx, f.db, services.AmenityFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []uint64{f.fountain.AmenityID}, listingIDs(page))

	page, err = services.ListAmenities(ctx, f.db, services.AmenityFilter{Limit: 10, Offset: 3})
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.NotNil(t, page)
}

func TestListAmenitiesRejectsBadPaging(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	for _, filter := range []services.AmenityFilter{
		{Limit: -1},
		{Limit: services.MaxListLimit + 1},
		{Offset: -5},
	} {
		_, err := services.ListAmenities(ctx, db, filter)
		assert.True(t, services.IsBadRequest(err), "filter %+v: %v", filter, err)
	}

	_, err := services.ListAmenities(ctx, db, services.AmenityFilter{Limit: services.MaxListLimit})
	assert.NoError(t, err)
}

func TestListAmenitiesNonASCIIKeyword(t *testing.T) {
	db := testutil.NewTestDB(t)
	ecole := testutil.CreateBuilding(t, db, "École Hall")
	fountain := testutil.CreateAmenity(t, db, ecole.BuildingID, models.WaterFountain, "1", nil)
	ctx := context.Background()

	for _, keyword := range []string{"École", "ÉCOLE", "École hall", "ÉCOLE HALL"} {
		t.Run(keyword, func(t *testing.T) {
			listings, err := services.ListAmenities(ctx, db, services.AmenityFilter{Keyword: keyword})
			require.NoError(t, err)
			assert.Equal(t, []uint64{fountain.AmenityID}, listingIDs(listings))
		})
	}
}

func TestListAmenitiesUnknownTypeMatchesNothing(t *testing.T) {
	f := newListingFixture(t)

	listings, err := services.ListAmenities(context.Background(), f.db, services.AmenityFilter{
		Type: "Sauna",
	})
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)

	listings, err = services.ListAmenities(context.Background(), f.db, services.AmenityFilter{
		Keyword: "foo",
		Type:    "Sauna",
	})
	require.NoError(t, err)
	assert.Empty(t, listings)
}
