package booking

import (
	"strconv"
	"strings"

	"salonadmin/models"
)

// FilterBookings returns the bookings matching all three criteria, in order.
// An empty status is treated as "all".
func FilterBookings(bookings []models.Booking, filter models.BookingFilter) []models.Booking {
	search := strings.ToLower(filter.Search)
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if matchesSearch(b, search) && matchesStatus(b, filter.Status) && strings.HasPrefix(b.Date, filter.Date) {
			out = append(out, b)
		}
	}
	return out
}

func matchesSearch(b models.Booking, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Service), search) ||
		strings.Contains(strings.ToLower(b.Contacts), search) ||
		strings.Contains(strings.ToLower(b.Date), search) ||
		strings.Contains(strconv.FormatInt(b.ID, 10), search)
}

func matchesStatus(b models.Booking, status string) bool {
	return status == "" || status == models.StatusAll || string(b.Status) == status
}
