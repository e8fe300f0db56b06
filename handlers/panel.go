package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"salonadmin/middleware"
	"salonadmin/models"
	"salonadmin/services/booking"
	"salonadmin/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PanelHandler renders the root view and handles the admin view's form posts.
type PanelHandler struct {
	viewSupport
	Bookings booking.BookingService
}

// IndexHandler shows the admin view to admins and the login view to everyone else.
func (h *PanelHandler) IndexHandler(c *gin.Context) {
	state := middleware.AuthState(c)
	if !state.Authenticated {
		h.renderLogin(c, http.StatusOK, "", "")
		return
	}

	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.Logger.Warn("Ignoring invalid filter query", zap.String("query", c.Request.URL.RawQuery), zap.Error(err))
		filter = models.BookingFilter{}
	}

	loadErr := ""
	all, err := h.Bookings.Load(c.Request.Context())
	if err != nil {
		loadErr = msgLoadFailed
	}

	c.HTML(http.StatusOK, "panel.html", gin.H{
		"AdminID":      *state.AdminID,
		"Banners":      h.bannerView(c),
		"Filter":       filter,
		"Statuses":     models.BookingStatuses,
		"Bookings":     booking.FilterBookings(all, filter),
		"Stats":        h.Bookings.Stats(time.Now()),
		"LoadError":    loadErr,
		"DeletePrompt": booking.DeletePrompt,
	})
}

// StatusFormHandler applies the status select.
func (h *PanelHandler) StatusFormHandler(c *gin.Context) {
	id, ok := h.formBookingID(c)
	if !ok {
		return
	}
	_, err := h.Bookings.SetStatus(c.Request.Context(), middleware.AdminID(c), id, c.PostForm("status"))
	h.finish(c, err, "Status updated")
}

// DateFormHandler applies the date input. An empty value is ignored.
func (h *PanelHandler) DateFormHandler(c *gin.Context) {
	id, ok := h.formBookingID(c)
	if !ok {
		return
	}
	_, applied, err := h.Bookings.RescheduleDate(c.Request.Context(), middleware.AdminID(c), id, c.PostForm("date"))
	h.finishReschedule(c, id, applied, err, "Date updated")
}

// TimeFormHandler applies the time input. An empty value is ignored.
func (h *PanelHandler) TimeFormHandler(c *gin.Context) {
	id, ok := h.formBookingID(c)
	if !ok {
		return
	}
	_, applied, err := h.Bookings.RescheduleTime(c.Request.Context(), middleware.AdminID(c), id, c.PostForm("time"))
	h.finishReschedule(c, id, applied, err, "Time updated")
}

// DeleteFormHandler deletes a booking when the browser confirmation was accepted.
func (h *PanelHandler) DeleteFormHandler(c *gin.Context) {
	id, ok := h.formBookingID(c)
	if !ok {
		return
	}
	deleted, err := h.Bookings.Delete(c.Request.Context(), middleware.AdminID(c), id, booking.ConfirmFunc(func(string) bool {
		return c.PostForm("confirm") == "true"
	}))
	switch {
	case errors.Is(err, booking.ErrDeleteNotConfirmed):
	case err != nil:
		h.finish(c, err, "")
		return
	case !deleted:
		h.push(c, notification.Warning(msgNotFound))
	default:
		h.push(c, notification.Success("Booking deleted"))
	}
	backToPanel(c)
}

func (h *PanelHandler) formBookingID(c *gin.Context) (int64, bool) {
	id, ok := parseBookingID(c)
	if !ok {
		h.push(c, notification.Error(msgInvalidID))
		backToPanel(c)
	}
	return id, ok
}

func (h *PanelHandler) finish(c *gin.Context, err error, success string) {
	if err != nil {
		_, msg := bookingErrorStatus(err)
		h.Logger.Warn("Booking change rejected", zap.String("path", c.FullPath()), zap.Error(err))
		h.push(c, notification.Error(msg))
	} else {
		h.push(c, notification.Success(success))
	}
	backToPanel(c)
}

func (h *PanelHandler) finishReschedule(c *gin.Context, id int64, applied bool, err error, success string) {
	if err == nil && !applied {
		backToPanel(c)
		return
	}
	if err == nil {
		if overlaps := h.Bookings.Overlapping(id); len(overlaps) > 0 {
			ids := make([]string, 0, len(overlaps))
			for _, b := range overlaps {
				ids = append(ids, fmt.Sprintf("#%d", b.ID))
			}
			h.push(c, notification.Warning("Overlaps with "+strings.Join(ids, ", ")))
		}
	}
	h.finish(c, err, success)
}
