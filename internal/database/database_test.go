package database

import (
	"context"
	"testing"
	"time"

	"matchday/internal/middleware"
	"matchday/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAllModels_MigratesCleanly(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(AllModels()...))

	for _, table := range []string{"users", "profiles", "friend_requests", "flights", "attendances"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	// The schema must carry the composite uniqueness guarantee for friend
	// request edges, not just handler-level checks.
	assert.True(t, db.Migrator().HasIndex(&models.FriendRequest{}, "idx_friend_request_users"))
}

func TestCustomGormLogger_Levels(t *testing.T) {
	base := &CustomGormLogger{
		logger: middleware.Logger,
		Config: logger.Config{LogLevel: logger.Warn, SlowThreshold: time.Millisecond},
	}

	leveled, ok := base.LogMode(logger.Error).(*CustomGormLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Error, leveled.Config.LogLevel)
	// LogMode must not mutate the receiver.
	assert.Equal(t, logger.Warn, base.Config.LogLevel)

	ctx := context.Background()
	base.Info(ctx, "info %d", 1)
	base.Warn(ctx, "warn %d", 2)
	base.Error(ctx, "error %d", 3)
	base.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)
	base.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, gorm.ErrRecordNotFound)
}
