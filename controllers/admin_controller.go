package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stayfinder-backend/services"
	"stayfinder-backend/utils"
)

type AdminController struct {
	exportSvc *services.ExportService
}

func NewAdminController(svc *services.ExportService) *AdminController {
	return &AdminController{exportSvc: svc}
}

// ExportBookings streams an xlsx of every booking.
// GET /api/admin/bookings/export (auth required)
func (ctrl *AdminController) ExportBookings(c *gin.Context) {
	buf, err := ctrl.exportSvc.ExportBookings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
