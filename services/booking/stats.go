package booking

import (
	"time"

	"salonadmin/models"
)

// Stats counts the in-memory collection. A booking is upcoming when its date
// parses and is not before now; everything else counts as past.
func (s *DefaultBookingService) Stats(now time.Time) models.BookingStats {
	bookings := s.Bookings()
	stats := models.BookingStats{
		Total:    len(bookings),
		ByStatus: make(map[models.BookingStatus]int, len(models.BookingStatuses)),
	}
	for _, st := range models.BookingStatuses {
		stats.ByStatus[st] = 0
	}

	loc := now.Location()
	for _, b := range bookings {
		stats.ByStatus[b.Status]++
		at, err := b.ScheduledAt(loc)
		if err == nil && !at.Before(now) {
			stats.Upcoming++
		}
	}
	stats.Past = stats.Total - stats.Upcoming
	return stats
}
