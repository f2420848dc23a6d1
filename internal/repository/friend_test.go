package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"matchday/internal/database"
	"matchday/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newSQLiteDB opens an in-memory database with the full schema. The composite
// unique index on friend_requests is created by AutoMigrate, so uniqueness
// semantics match the real database.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "x",
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %v", err)
	return appErr.Code
}

func TestFriendRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()
	db := newSQLiteDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "sender")
	u2 := createTestUser(t, db, "recipient")

	first := &models.FriendRequest{FromUserID: u1.ID, ToUserID: u2.ID, Status: models.FriendRequestStatusPending}
	require.NoError(t, repo.Create(ctx, first))

	// Same ordered pair hits the unique index even without the handler-level
	// duplicate check.
	dup := &models.FriendRequest{FromUserID: u1.ID, ToUserID: u2.ID, Status: models.FriendRequestStatusPending}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE_REQUEST", appErrCode(t, err))

	// The reverse direction is a distinct ordered pair.
	reverse := &models.FriendRequest{FromUserID: u2.ID, ToUserID: u1.ID, Status: models.FriendRequestStatusPending}
	assert.NoError(t, repo.Create(ctx, reverse))
}

func TestFriendRepository_GetByUsersIsOrdered(t *testing.T) {
	t.Parallel()
	db := newSQLiteDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "from")
	u2 := createTestUser(t, db, "to")
	require.NoError(t, repo.Create(ctx, &models.FriendRequest{
		FromUserID: u1.ID, ToUserID: u2.ID, Status: models.FriendRequestStatusPending,
	}))

	found, err := repo.GetByUsers(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u1.ID, found.FromUserID)

	// Swapped arguments look up the other direction, which has no edge.
	missing, err := repo.GetByUsers(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFriendRepository_TransitionPending(t *testing.T) {
	t.Parallel()
	db := newSQLiteDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "asker")
	u2 := createTestUser(t, db, "decider")
	require.NoError(t, repo.Create(ctx, &models.FriendRequest{
		FromUserID: u1.ID, ToUserID: u2.ID, Status: models.FriendRequestStatusPending,
	}))

	accepted, err := repo.TransitionPending(ctx, u2.ID, u1.ID, models.FriendRequestStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestStatusAccepted, accepted.Status)
	assert.Equal(t, u1.Username, accepted.FromUser.Username)

	// The edge is no longer pending, so a second transition (in either
	// terminal direction) reports not-found.
	_, err = repo.TransitionPending(ctx, u2.ID, u1.ID, models.FriendRequestStatusRejected)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))

	_, err = repo.TransitionPending(ctx, u2.ID, u1.ID, models.FriendRequestStatusAccepted)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
}

func TestFriendRepository_TransitionPendingWrongRecipient(t *testing.T) {
	t.Parallel()
	db := newSQLiteDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "origin")
	u2 := createTestUser(t, db, "target")
	u3 := createTestUser(t, db, "bystander")
	require.NoError(t, repo.Create(ctx, &models.FriendRequest{
		FromUserID: u1.ID, ToUserID: u2.ID, Status: models.FriendRequestStatusPending,
	}))

	// Only the recipient can transition; anyone else matches zero rows.
	_, err := repo.TransitionPending(ctx, u3.ID, u1.ID, models.FriendRequestStatusAccepted)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))

	// The sender cannot accept their own request through the reverse pair.
	_, err = repo.TransitionPending(ctx, u1.ID, u2.ID, models.FriendRequestStatusAccepted)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))

	stored, err := repo.GetByUsers(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.FriendRequestStatusPending, stored.Status)
}

func TestFriendRepository_PendingListsAndFriends(t *testing.T) {
	t.Parallel()
	db := newSQLiteDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "alpha")
	u2 := createTestUser(t, db, "bravo")
	u3 := createTestUser(t, db, "charlie")

	require.NoError(t, repo.Create(ctx, &models.FriendRequest{
		FromUserID: u1.ID, ToUserID: u2.ID, Status: models.FriendRequestStatusPending,
	}))
	require.NoError(t, repo.Create(ctx, &models.FriendRequest{
		FromUserID: u3.ID, ToUserID: u1.ID, Status: models.FriendRequestStatusPending,
	}))

	received, err := repo.GetPendingReceived(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "charlie", received[0].FromUser.Username)

	sent, err := repo.GetPendingSent(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "bravo", sent[0].ToUser.Username)

	// Accept both: one edge points at u1, the other away from u1. Friends
	// must be found through either direction.
	_, err = repo.TransitionPending(ctx, u2.ID, u1.ID, models.FriendRequestStatusAccepted)
	require.NoError(t, err)
	_, err = repo.TransitionPending(ctx, u1.ID, u3.ID, models.FriendRequestStatusAccepted)
	require.NoError(t, err)

	friends, err := repo.GetFriends(ctx, u1.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(friends))
	for _, f := range friends {
		names = append(names, f.Username)
	}
	assert.ElementsMatch(t, []string{"bravo", "charlie"}, names)

	// A rejected edge never shows up as a friendship.
	require.NoError(t, repo.Create(ctx, &models.FriendRequest{
		FromUserID: u2.ID, ToUserID: u3.ID, Status: models.FriendRequestStatusPending,
	}))
	_, err = repo.TransitionPending(ctx, u3.ID, u2.ID, models.FriendRequestStatusRejected)
	require.NoError(t, err)

	friendsOfTwo, err := repo.GetFriends(ctx, u2.ID)
	require.NoError(t, err)
	require.Len(t, friendsOfTwo, 1)
	assert.Equal(t, "alpha", friendsOfTwo[0].Username)
}

func TestFriendRepository_ReciprocalEdgesListFriendOnce(t *testing.T) {
	t.Parallel()
	db := newSQLiteDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "mutual1")
	u2 := createTestUser(t, db, "mutual2")

	// Both directions exist and both get accepted, which the ordered-pair
	// duplicate rule permits. The join matches both edges, but the friend
	// must be listed only once.
	require.NoError(t, repo.Create(ctx, &models.FriendRequest{
		FromUserID: u1.ID, ToUserID: u2.ID, Status: models.FriendRequestStatusPending,
	}))
	require.NoError(t, repo.Create(ctx, &models.FriendRequest{
		FromUserID: u2.ID, ToUserID: u1.ID, Status: models.FriendRequestStatusPending,
	}))
	_, err := repo.TransitionPending(ctx, u2.ID, u1.ID, models.FriendRequestStatusAccepted)
	require.NoError(t, err)
	_, err = repo.TransitionPending(ctx, u1.ID, u2.ID, models.FriendRequestStatusAccepted)
	require.NoError(t, err)

	friends, err := repo.GetFriends(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "mutual2", friends[0].Username)

	friends, err = repo.GetFriends(ctx, u2.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "mutual1", friends[0].Username)
}
