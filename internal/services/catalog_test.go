package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/localnerve/amenitydb/internal/services"
	"github.com/localnerve/amenitydb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildings(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	zeta := testutil.CreateBuilding(t, db, "Zeta Hall")
	testutil.CreateBuilding(t, db, "Alpha Hall")

	buildings, err := services.ListBuildings(ctx, db)
	require.NoError(t, err)
	require.Len(t, buildings, 2)
	assert.Equal(t, "Alpha Hall", buildings[0].Name)
	require.NotNil(t, buildings[0].Address)
	assert.Equal(t, "1 Alpha Hall Way", buildings[0].Address.Address)

	got, err := services.GetBuilding(ctx, db, zeta.BuildingID)
	require.NoError(t, err)
	assert.Equal(t, "Zeta Hall", got.Name)

	_, err = services.GetBuilding(ctx, db, zeta.BuildingID+10)
	assert.True(t, services.IsNotFound(err))
}

func TestUsers(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	joined := time.Date(2024, 8, 26, 0, 0, 0, 0, time.UTC)

	user, err := services.CreateUser(ctx, db, services.UserInput{
		Username: "alma",
		Email:    " Alma.Mater@Illinois.EDU ",
		JoinDate: joined,
	})
	require.NoError(t, err)
	assert.Equal(t, "alma.mater@illinois.edu", user.Email)

	got, err := services.GetUser(ctx, db, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alma", got.Username)
	assert.True(t, joined.Equal(got.JoinDate))

	_, err = services.CreateUser(ctx, db, services.UserInput{Username: "imposter", Email: "alma.mater@illinois.edu"})
	assert.True(t, services.IsConflict(err), "%v", err)

	_, err = services.CreateUser(ctx, db, services.UserInput{Username: "", Email: "x@illinois.edu"})
	assert.True(t, services.IsBadRequest(err))

	before := time.Now().UTC().Add(-time.Minute)
	fresh, err := services.CreateUser(ctx, db, services.UserInput{Username: "fresh", Email: "fresh@illinois.edu"})
	require.NoError(t, err)
	assert.True(t, fresh.JoinDate.After(before), "join date defaults to now")

	_, err = services.GetUser(ctx, db, fresh.UserID+1)
	assert.True(t, services.IsNotFound(err))
}
