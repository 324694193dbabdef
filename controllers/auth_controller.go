package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hotel-master/middleware"
	"hotel-master/services"
	"hotel-master/utils"
)

type AuthController struct {
	Accounts *services.AccountService
}

func NewAuthController(accounts *services.AccountService) *AuthController {
	return &AuthController{Accounts: accounts}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := ac.Accounts.Register(services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, account)
}

// Login establishes the session on an exact credential match. The session
// cookie carries the account id and role for the route guards.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := ac.Accounts.Authenticate(req.Username, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionAccountID, account.ID)
	session.Set(middleware.SessionRole, account.Role)
	if err := session.Save(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not establish session")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":       account.ID,
		"username": account.Username,
		"role":     account.Role,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not clear session")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}
