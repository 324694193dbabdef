package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-master/controllers"
	"hotel-master/models"
	"hotel-master/services"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	rooms  *services.RoomService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Account{}, &models.Room{}, &models.Booking{}, &models.Review{},
	))

	imageService := services.NewImageService(t.TempDir())
	accountService := services.NewAccountService(db)
	roomService := services.NewRoomService(db, imageService)
	bookingService := services.NewBookingService(db)
	reviewService := services.NewReviewService(db)
	statsService := services.NewStatsService(db, nil, 0)

	router := SetupRouter(
		controllers.NewAuthController(accountService),
		controllers.NewRoomController(roomService, reviewService),
		controllers.NewBookingController(bookingService),
		controllers.NewReviewController(reviewService),
		controllers.NewAdminController(accountService, statsService),
		zerolog.Nop(),
	)
	return &testApp{router: router, db: db, rooms: roomService}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"username": username, "password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return w.Result().Cookies()
}

func TestGuestBookingFlow(t *testing.T) {
	app := newTestApp(t)

	room, err := app.rooms.Create(services.RoomInput{
		Name: "标准双床房", Price: "399", Type: "双床房", Capacity: "2",
		Description: "经济实惠的标准双床房",
	}, nil)
	require.NoError(t, err)

	w := app.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice", "password": "secret",
		"email": "alice@example.com", "phone": "13800138000",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Booking without a session is rejected before it reaches the services.
	w = app.do(t, http.MethodPost, "/api/bookings", gin.H{
		"room_id": room.ID, "check_in": "2025-01-01", "check_out": "2025-01-04",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookies := app.login(t, "alice", "secret")

	w = app.do(t, http.MethodPost, "/api/bookings", gin.H{
		"room_id": room.ID, "check_in": "2025-01-01", "check_out": "2025-01-04",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, float64(1197), created.Data.TotalPrice)
	assert.Equal(t, models.BookingStatusPending, created.Data.Status)

	w = app.do(t, http.MethodGet, "/api/bookings/my", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var mine struct {
		Data []models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine.Data, 1)
	assert.Equal(t, created.Data.ID, mine.Data[0].ID)
}

func TestBookingRejectsBadDates(t *testing.T) {
	app := newTestApp(t)

	room, err := app.rooms.Create(services.RoomInput{
		Name: "标准双床房", Price: "399", Type: "双床房", Capacity: "2",
	}, nil)
	require.NoError(t, err)

	registerAndLogin := func() []*http.Cookie {
		w := app.do(t, http.MethodPost, "/api/auth/register", gin.H{
			"username": "alice", "password": "secret", "email": "alice@example.com",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		return app.login(t, "alice", "secret")
	}
	cookies := registerAndLogin()

	w := app.do(t, http.MethodPost, "/api/bookings", gin.H{
		"room_id": room.ID, "check_in": "2025-01-04", "check_out": "2025-01-01",
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, "/api/bookings", gin.H{
		"room_id": room.ID, "check_in": "01/02/2025", "check_out": "2025-01-04",
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminGuardAndDashboard(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.db.Create(&models.Account{
		Username: "admin", Password: "admin123",
		Email: "admin@hotel.com", Role: models.RoleAdmin,
	}).Error)
	require.NoError(t, app.db.Create(&models.Account{
		Username: "alice", Password: "secret",
		Email: "alice@example.com", Role: models.RoleGuest,
	}).Error)

	// Guests are shut out of the admin group.
	guestCookies := app.login(t, "alice", "secret")
	w := app.do(t, http.MethodGet, "/api/admin/dashboard", nil, guestCookies)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminCookies := app.login(t, "admin", "admin123")
	w = app.do(t, http.MethodGet, "/api/admin/dashboard", nil, adminCookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data services.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Data.TotalRooms)
}

func TestAdminStatusUpdateAndSelfDelete(t *testing.T) {
	app := newTestApp(t)

	admin := models.Account{
		Username: "admin", Password: "admin123",
		Email: "admin@hotel.com", Role: models.RoleAdmin,
	}
	require.NoError(t, app.db.Create(&admin).Error)

	room, err := app.rooms.Create(services.RoomInput{
		Name: "行政套房", Price: "1299", Type: "套房", Capacity: "4",
	}, nil)
	require.NoError(t, err)

	booking := models.Booking{
		RoomID: room.ID, AccountID: admin.ID,
		TotalPrice: 1299, Status: models.BookingStatusPending,
	}
	require.NoError(t, app.db.Create(&booking).Error)

	cookies := app.login(t, "admin", "admin123")

	w := app.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/bookings/%d/status", booking.ID),
		gin.H{"status": "confirmed"}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/bookings/%d/status", booking.ID),
		gin.H{"status": "archived"}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Booking
	require.NoError(t, app.db.First(&stored, booking.ID).Error)
	assert.Equal(t, models.BookingStatusConfirmed, stored.Status, "rejected token must not change the row")

	// An admin cannot delete their own account.
	w = app.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", admin.ID), nil, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.db.Create(&models.Account{
		Username: "alice", Password: "secret",
		Email: "alice@example.com", Role: models.RoleGuest,
	}).Error)

	cookies := app.login(t, "alice", "secret")

	w := app.do(t, http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// The logout response carries the expired cookie; using it must fail.
	w = app.do(t, http.MethodGet, "/api/bookings/my", nil, w.Result().Cookies())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
