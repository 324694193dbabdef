package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-master/middleware"
	"hotel-master/services"
	"hotel-master/utils"
)

type AdminController struct {
	Accounts *services.AccountService
	Stats    *services.StatsService
}

func NewAdminController(accounts *services.AccountService, stats *services.StatsService) *AdminController {
	return &AdminController{Accounts: accounts, Stats: stats}
}

// Dashboard returns the aggregate room and booking counts.
func (ac *AdminController) Dashboard(c *gin.Context) {
	stats, err := ac.Stats.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (ac *AdminController) GetUsers(c *gin.Context) {
	accounts, err := ac.Accounts.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, accounts)
}

// DeleteUser cascades the target's bookings and reviews, refusing to delete
// the admin who is making the request.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ac.Accounts.Delete(id, middleware.AccountID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user deleted"})
}
