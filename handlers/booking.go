package handlers

import (
	"context"
	"net/http"

	"salonadmin/middleware"
	"salonadmin/models"
	"salonadmin/services/booking"
	"salonadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking JSON API.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// ListBookingsHandler reloads the collection and returns the bookings matching
// the search, status and date query parameters.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	all, err := h.Service.Load(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	filtered := booking.FilterBookings(all, filter)
	if filtered == nil {
		filtered = []models.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": filtered,
		"total":    len(all),
		"filtered": len(filtered),
	})
}

// UpdateBookingHandler merges the given fields into a booking.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, msgInvalidID, c.Param("id"))
		return
	}

	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if update.IsEmpty() {
		utils.JSONError(c, http.StatusBadRequest, "No fields to update", "")
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), middleware.AdminID(c), id, update)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetStatusHandler changes a booking's status.
func (h *BookingHandler) SetStatusHandler(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, msgInvalidID, c.Param("id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.Service.SetStatus(c.Request.Context(), middleware.AdminID(c), id, req.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RescheduleDateHandler replaces the date half of a booking's date.
func (h *BookingHandler) RescheduleDateHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	h.reschedule(c, &req, func() string { return req.Date }, h.Service.RescheduleDate)
}

// RescheduleTimeHandler replaces the time half of a booking's date.
func (h *BookingHandler) RescheduleTimeHandler(c *gin.Context) {
	var req struct {
		Time string `json:"time"`
	}
	h.reschedule(c, &req, func() string { return req.Time }, h.Service.RescheduleTime)
}

type rescheduleFunc func(ctx context.Context, adminID, bookingID int64, value string) (*models.Booking, bool, error)

func (h *BookingHandler) reschedule(c *gin.Context, req any, value func() string, apply rescheduleFunc) {
	id, ok := parseBookingID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, msgInvalidID, c.Param("id"))
		return
	}
	if err := c.ShouldBindJSON(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, applied, err := apply(c.Request.Context(), middleware.AdminID(c), id, value())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !applied {
		c.JSON(http.StatusOK, gin.H{"applied": false})
		return
	}

	overlaps := h.Service.Overlapping(id)
	if overlaps == nil {
		overlaps = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{
		"applied":  true,
		"booking":  updated,
		"overlaps": overlaps,
	})
}

// DeleteBookingHandler removes a booking. The caller must pass confirm=true.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, msgInvalidID, c.Param("id"))
		return
	}

	confirmed := c.Query("confirm") == "true"
	deleted, err := h.Service.Delete(c.Request.Context(), middleware.AdminID(c), id, booking.ConfirmFunc(func(string) bool {
		return confirmed
	}))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, msgNotFound, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}
