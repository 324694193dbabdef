package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-master/services"
	"hotel-master/utils"
)

type RoomController struct {
	Rooms   *services.RoomService
	Reviews *services.ReviewService
}

func NewRoomController(rooms *services.RoomService, reviews *services.ReviewService) *RoomController {
	return &RoomController{Rooms: rooms, Reviews: reviews}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetRooms lists the rooms shown on the public index page (available only).
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.ListAvailable()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoom returns one room plus its reviews newest-first.
func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := rc.Rooms.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	reviews, err := rc.Reviews.ListByRoom(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room, "reviews": reviews})
}

// GetAllRooms is the admin listing; it includes occupied rooms.
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// roomInputFromForm collects the multipart form fields plus the optional image
// upload handle for the service layer.
func roomInputFromForm(c *gin.Context) (services.RoomInput, *services.Upload, error) {
	in := services.RoomInput{
		Name:        c.PostForm("name"),
		Price:       c.PostForm("price"),
		Type:        c.PostForm("type"),
		Capacity:    c.PostForm("capacity"),
		Description: c.PostForm("description"),
	}

	header, err := c.FormFile("image")
	if err != nil {
		// No file part at all is fine; the service falls back to the placeholder.
		return in, nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return in, nil, err
	}
	return in, &services.Upload{Filename: header.Filename, Data: file}, nil
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	in, upload, err := roomInputFromForm(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read uploaded image")
		return
	}

	room, err := rc.Rooms.Create(in, upload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	in, upload, err := roomInputFromForm(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read uploaded image")
		return
	}

	room, err := rc.Rooms.Update(id, in, c.PostForm("status"), upload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
