package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-master/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, runs migrations, and seeds the
// bootstrap data. TranslateError turns driver duplicate-key errors into
// gorm.ErrDuplicatedKey so the service layer can map them to typed failures.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Account{},
		&models.Room{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// SeedDatabase creates the default admin and three sample rooms on an empty
// install. It keys off the absence of any admin account, so reruns are no-ops.
func SeedDatabase(db *gorm.DB) {
	var adminCount int64
	db.Model(&models.Account{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount > 0 {
		return
	}

	admin := models.Account{
		Username: "admin",
		Password: "admin123",
		Email:    "admin@hotel.com",
		Phone:    "13800138000",
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Warn().Err(err).Msg("failed to seed default admin")
		return
	}

	rooms := []models.Room{
		{Name: "豪华大床房", Price: 599, Type: "大床房", Capacity: 2,
			Description: "宽敞舒适的大床房，配备豪华设施", Image: "room1.jpg", Status: models.RoomStatusAvailable},
		{Name: "标准双床房", Price: 399, Type: "双床房", Capacity: 2,
			Description: "经济实惠的标准双床房", Image: "room2.jpg", Status: models.RoomStatusAvailable},
		{Name: "行政套房", Price: 1299, Type: "套房", Capacity: 4,
			Description: "豪华行政套房，适合商务人士", Image: "room3.jpg", Status: models.RoomStatusAvailable},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Warn().Err(err).Msg("failed to seed sample rooms")
		return
	}
	log.Info().Msg("seeded default admin and sample rooms")
}

// SessionLifetime is how long a login cookie stays valid. There is no
// server-side invalidation list; expiry is the only teardown besides logout.
const SessionLifetime = 7 * 24 * time.Hour

func SessionSecret() string {
	return envOrDefault("SECRET_KEY", "dev-key-123")
}

// ImagesDir is where room images land; the database stores only filenames.
func ImagesDir() string {
	return envOrDefault("IMAGES_DIR", "static/images")
}
