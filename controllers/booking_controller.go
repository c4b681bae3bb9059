package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayfinder-backend/middleware"
	"stayfinder-backend/services"
	"stayfinder-backend/utils"
)

type CreateBookingRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

type BookingController struct {
	bookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{bookingSvc: svc}
}

// GetBookings lists the caller's bookings with room and hotel details.
// GET /api/bookings (auth required)
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	bookings, err := ctrl.bookingSvc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking books a room for the caller. POST /api/bookings (auth required)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := ctrl.bookingSvc.Create(c.Request.Context(), userID, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, verr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// CancelBooking cancels a booking owned by the caller.
// POST /api/bookings/:id/cancel (auth required)
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	booking, err := ctrl.bookingSvc.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, services.ErrUnauthorized):
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}
