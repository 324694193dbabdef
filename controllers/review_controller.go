package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-master/middleware"
	"hotel-master/services"
	"hotel-master/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type createReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := rc.Reviews.Create(middleware.AccountID(c), roomID, req.Content, req.Rating)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}
