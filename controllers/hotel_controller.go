package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayfinder-backend/models"
	"stayfinder-backend/services"
	"stayfinder-backend/utils"
)

type HotelController struct {
	hotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{hotelSvc: svc}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetHotels returns the full catalog. GET /api/hotels
func (ctrl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctrl.hotelSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotel returns one hotel with its room list. GET /api/hotels/:id
func (ctrl *HotelController) GetHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found")
		return
	}

	hotel, err := ctrl.hotelSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// CreateHotel adds a hotel to the catalog. POST /api/hotels (auth required)
func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	hotel.ID = 0

	if err := ctrl.hotelSvc.CreateHotel(c.Request.Context(), &hotel); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, verr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

// CreateRoom adds a room to a hotel. POST /api/hotels/:id/rooms (auth required)
func (ctrl *HotelController) CreateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel")
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	room.ID = 0

	if err := ctrl.hotelSvc.CreateRoom(c.Request.Context(), id, &room); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, verr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusCreated, room)
}
