package repository

import (
	"context"
	"testing"

	"matchday/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnedRepository_ScopesReadsToOwner(t *testing.T) {
	t.Parallel()
	db := newSQLiteDB(t)
	repo := NewOwnedRepository[models.Flight](db, "Flight")
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")

	flight := &models.Flight{
		UserID:           owner.ID,
		GameID:           4421,
		Airline:          "easyJet",
		DepartureAirport: "LPL",
		ArrivalAirport:   "AMS",
		DepartureDate:    "2026-04-11",
		DepartureTime:    "07:15",
		IsActive:         true,
	}
	require.NoError(t, repo.Create(ctx, flight))
	require.NotZero(t, flight.ID)

	got, err := repo.GetForOwner(ctx, owner.ID, flight.ID)
	require.NoError(t, err)
	assert.Equal(t, "easyJet", got.Airline)

	// A foreign record reads exactly like a missing one.
	_, err = repo.GetForOwner(ctx, other.ID, flight.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))

	mine, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := repo.ListByOwner(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestOwnedRepository_DeleteScopedToOwner(t *testing.T) {
	t.Parallel()
	db := newSQLiteDB(t)
	repo := NewOwnedRepository[models.Attendance](db, "Attendance")
	ctx := context.Background()

	owner := createTestUser(t, db, "goer")
	other := createTestUser(t, db, "stranger")

	attendance := &models.Attendance{UserID: owner.ID, GameID: 4421}
	require.NoError(t, repo.Create(ctx, attendance))

	// Deleting someone else's record matches zero rows and must not touch it.
	err := repo.DeleteForOwner(ctx, other.ID, attendance.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))

	still, err := repo.GetForOwner(ctx, owner.ID, attendance.ID)
	require.NoError(t, err)
	assert.Equal(t, 4421, still.GameID)

	require.NoError(t, repo.DeleteForOwner(ctx, owner.ID, attendance.ID))

	_, err = repo.GetForOwner(ctx, owner.ID, attendance.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))

	// Delete of an already-deleted record is also not-found.
	err = repo.DeleteForOwner(ctx, owner.ID, attendance.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
}

func TestOwnedRepository_ListOrdersByID(t *testing.T) {
	t.Parallel()
	db := newSQLiteDB(t)
	repo := NewOwnedRepository[models.Attendance](db, "Attendance")
	ctx := context.Background()

	owner := createTestUser(t, db, "lister")
	for _, gameID := range []int{3, 1, 2} {
		require.NoError(t, repo.Create(ctx, &models.Attendance{UserID: owner.ID, GameID: gameID}))
	}

	records, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Insertion order, not game order.
	assert.Equal(t, []int{3, 1, 2}, []int{records[0].GameID, records[1].GameID, records[2].GameID})
}
