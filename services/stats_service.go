package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"hotel-master/models"
)

const statsCacheKey = "dashboard:stats"

// DashboardStats are the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	TotalRooms      int64 `json:"total_rooms"`
	AvailableRooms  int64 `json:"available_rooms"`
	OccupiedRooms   int64 `json:"occupied_rooms"`
	TotalBookings   int64 `json:"total_bookings"`
	PendingBookings int64 `json:"pending_bookings"`
}

// StatsService computes dashboard counts, with an optional short-lived Redis
// cache in front of the database. A nil client means every call counts fresh.
type StatsService struct {
	DB    *gorm.DB
	Cache *redis.Client
	TTL   time.Duration
}

func NewStatsService(db *gorm.DB, cache *redis.Client, ttl time.Duration) *StatsService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsService{DB: db, Cache: cache, TTL: ttl}
}

func (s *StatsService) Dashboard(ctx context.Context) (DashboardStats, error) {
	if s.Cache != nil {
		val, err := s.Cache.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var cached DashboardStats
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("stats cache read failed, counting from database")
		}
	}

	stats, err := s.count()
	if err != nil {
		return DashboardStats{}, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, statsCacheKey, payload, s.TTL).Err(); err != nil {
				log.Warn().Err(err).Msg("stats cache write failed")
			}
		}
	}
	return stats, nil
}

func (s *StatsService) count() (DashboardStats, error) {
	var stats DashboardStats
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalRooms, s.DB.Model(&models.Room{})},
		{&stats.AvailableRooms, s.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusAvailable)},
		{&stats.OccupiedRooms, s.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusOccupied)},
		{&stats.TotalBookings, s.DB.Model(&models.Booking{})},
		{&stats.PendingBookings, s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusPending)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return DashboardStats{}, err
		}
	}
	return stats, nil
}
