package bookingRepo

import (
	"context"
	"errors"

	"salonadmin/models"
)

// BookingsKey is the kv key holding the JSON array of bookings.
const BookingsKey = "beauty_bookings"

// ErrMalformedData is returned when the stored blob is not a JSON array of bookings.
var ErrMalformedData = errors.New("stored bookings are malformed")

// BookingRepository reads and writes the whole booking collection as one blob.
type BookingRepository interface {
	// LoadAll returns the stored collection; an absent or empty blob is an empty collection.
	LoadAll(ctx context.Context) ([]models.Booking, error)
	// SaveAll replaces the stored collection with bookings.
	SaveAll(ctx context.Context, bookings []models.Booking) error
	// Exists reports whether a collection has ever been stored.
	Exists(ctx context.Context) (bool, error)
}
