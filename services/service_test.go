package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-master/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.Room{},
		&models.Booking{},
		&models.Review{},
	))
	return db
}

func createTestAccount(t *testing.T, db *gorm.DB, username, role string) *models.Account {
	t.Helper()
	account := &models.Account{
		Username: username,
		Password: "secret",
		Email:    username + "@example.com",
		Phone:    "13800138000",
		Role:     role,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func createTestRoom(t *testing.T, db *gorm.DB, name string, price float64) *models.Room {
	t.Helper()
	room := &models.Room{
		Name:     name,
		Price:    price,
		Type:     "双床房",
		Capacity: 2,
		Image:    models.DefaultRoomImage,
		Status:   models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}
