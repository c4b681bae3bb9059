package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayfinder-backend/middleware"
	"stayfinder-backend/models"
	"stayfinder-backend/services"
	"stayfinder-backend/utils"
)

type registerPayload struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	authSvc   *services.AuthService
	cookieTTL int
}

func NewAuthController(svc *services.AuthService, cookieTTLSeconds int) *AuthController {
	return &AuthController{authSvc: svc, cookieTTL: cookieTTLSeconds}
}

func (ctrl *AuthController) setSession(c *gin.Context, token string) {
	c.SetCookie("token", token, ctrl.cookieTTL, "/", "", false, true)
}

func sessionResponse(user *models.User, token string) gin.H {
	return gin.H{"token": token, "user": user}
}

// Register creates an account and opens a session.
// POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := ctrl.authSvc.Register(c.Request.Context(),
		payload.Email, payload.Password, payload.FirstName, payload.LastName)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.JSONError(c, http.StatusBadRequest, verr.Message)
		case errors.Is(err, services.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, "Email already registered")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	ctrl.setSession(c, token)
	c.JSON(http.StatusCreated, sessionResponse(user, token))
}

// Login verifies credentials and opens a session.
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := ctrl.authSvc.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.JSONError(c, http.StatusBadRequest, verr.Message)
		case errors.Is(err, services.ErrUnauthorized):
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	ctrl.setSession(c, token)
	c.JSON(http.StatusOK, sessionResponse(user, token))
}

// CurrentUser returns the authenticated identity.
// GET /api/auth/user (auth required)
func (ctrl *AuthController) CurrentUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := ctrl.authSvc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie.
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
