package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"salonadmin/services/booking"
	"salonadmin/utils"

	"github.com/gin-gonic/gin"
)

// Messages shown for failures the user cannot fix by changing their input.
const (
	msgLoadFailed   = "Failed to load bookings"
	msgSaveFailed   = "Failed to save changes. Please try again."
	msgNotFound     = "Booking not found"
	msgInvalidID    = "Invalid booking id"
	msgNotConfirmed = "Deletion was not confirmed"
)

// bookingErrorStatus maps a booking service error to an HTTP status and a user-facing message.
func bookingErrorStatus(err error) (int, string) {
	var validationErr *booking.ValidationError
	var persistErr *booking.PersistError

	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, booking.ErrDeleteNotConfirmed):
		return http.StatusPreconditionRequired, msgNotConfirmed
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &persistErr):
		return http.StatusInternalServerError, msgSaveFailed
	default:
		return http.StatusInternalServerError, msgLoadFailed
	}
}

func respondBookingError(c *gin.Context, err error) {
	status, msg := bookingErrorStatus(err)
	utils.JSONError(c, status, msg, err.Error())
}

func parseBookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}
