package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-master/models"
)

func seedStatsFixtures(t *testing.T, svc *StatsService) {
	t.Helper()
	db := svc.DB

	createTestRoom(t, db, "豪华大床房", 599)
	createTestRoom(t, db, "标准双床房", 399)
	occupied := createTestRoom(t, db, "行政套房", 1299)
	require.NoError(t, db.Model(occupied).Update("status", models.RoomStatusOccupied).Error)

	account := createTestAccount(t, db, "alice", models.RoleGuest)
	bookings := NewBookingService(db)
	b1, err := bookings.Create(account.ID, occupied.ID, "2025-01-01", "2025-01-03")
	require.NoError(t, err)
	_, err = bookings.Create(account.ID, occupied.ID, "2025-02-01", "2025-02-03")
	require.NoError(t, err)
	_, err = bookings.UpdateStatus(b1.ID, "confirmed")
	require.NoError(t, err)
}

func TestDashboardCounts(t *testing.T) {
	svc := NewStatsService(setupTestDB(t), nil, 0)
	seedStatsFixtures(t, svc)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalRooms)
	assert.Equal(t, int64(2), stats.AvailableRooms)
	assert.Equal(t, int64(1), stats.OccupiedRooms)
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.PendingBookings)
}

func TestDashboardUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := NewStatsService(setupTestDB(t), client, time.Minute)
	seedStatsFixtures(t, svc)

	ctx := context.Background()
	first, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(statsCacheKey))

	// New rows must not show up while the cached entry is fresh.
	createTestRoom(t, svc.DB, "新房间", 888)
	cached, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	mr.FastForward(2 * time.Minute)
	fresh, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.TotalRooms+1, fresh.TotalRooms)
}

func TestDashboardSurvivesCacheOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := NewStatsService(setupTestDB(t), client, time.Minute)
	seedStatsFixtures(t, svc)

	mr.Close()

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err, "cache failures fall back to counting from the database")
	assert.Equal(t, int64(3), stats.TotalRooms)
}
