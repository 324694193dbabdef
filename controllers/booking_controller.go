package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-master/middleware"
	"hotel-master/services"
	"hotel-master/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingRequest struct {
	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.Bookings.Create(middleware.AccountID(c), req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// MyBookings lists the session account's bookings newest-first.
func (bc *BookingController) MyBookings(c *gin.Context) {
	bookings, err := bc.Bookings.ListByAccount(middleware.AccountID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Bookings.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus sets a booking's status from a request token (pending,
// confirmed, cancelled); the stored value is the localized label.
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.Bookings.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
