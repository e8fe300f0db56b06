package booking

import (
	"context"
	"strings"
	"time"

	"salonadmin/models"
)

// NormalizeDatePart accepts "DD.MM.YYYY" or the browser's "YYYY-MM-DD" and
// returns "DD.MM.YYYY".
func NormalizeDatePart(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(models.DatePartLayout, raw); err == nil {
		return t.Format(models.DatePartLayout), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.Format(models.DatePartLayout), nil
	}
	return "", newValidationError("date %q must be DD.MM.YYYY", raw)
}

// NormalizeTimePart accepts "HH:MM" or "HH:MM:SS" and returns "HH:MM".
func NormalizeTimePart(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{models.TimePartLayout, time.TimeOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(models.TimePartLayout), nil
		}
	}
	return "", newValidationError("time %q must be HH:MM", raw)
}

// RescheduleDate replaces the date half of a booking's date, keeping its time.
// An empty value is ignored and reported as not applied.
func (s *DefaultBookingService) RescheduleDate(ctx context.Context, adminID, bookingID int64, newDate string) (*models.Booking, bool, error) {
	if strings.TrimSpace(newDate) == "" {
		return nil, false, nil
	}
	datePart, err := NormalizeDatePart(newDate)
	if err != nil {
		return nil, false, err
	}
	return s.reschedule(ctx, adminID, bookingID, func(current models.Booking) (string, error) {
		timePart := current.TimePart()
		if timePart == "" {
			return "", newValidationError("booking %d has no time to keep", bookingID)
		}
		return datePart + " " + timePart, nil
	})
}

// RescheduleTime replaces the time half of a booking's date, keeping its date.
// An empty value is ignored and reported as not applied.
func (s *DefaultBookingService) RescheduleTime(ctx context.Context, adminID, bookingID int64, newTime string) (*models.Booking, bool, error) {
	if strings.TrimSpace(newTime) == "" {
		return nil, false, nil
	}
	timePart, err := NormalizeTimePart(newTime)
	if err != nil {
		return nil, false, err
	}
	return s.reschedule(ctx, adminID, bookingID, func(current models.Booking) (string, error) {
		datePart := current.DatePart()
		if datePart == "" {
			return "", newValidationError("booking %d has no date to keep", bookingID)
		}
		return datePart + " " + timePart, nil
	})
}

func (s *DefaultBookingService) reschedule(ctx context.Context, adminID, bookingID int64, combine func(models.Booking) (string, error)) (*models.Booking, bool, error) {
	updated, err := s.updateWith(ctx, adminID, bookingID, func(current models.Booking) (models.BookingUpdate, error) {
		date, err := combine(current)
		if err != nil {
			return models.BookingUpdate{}, err
		}
		return models.BookingUpdate{Date: &date}, nil
	})
	if err != nil {
		return nil, false, err
	}
	return updated, true, nil
}

// defaultDuration is assumed for bookings stored without a duration.
const defaultDuration = 60 * time.Minute

// Overlapping lists the other non-cancelled bookings whose time range
// intersects the given booking's.
func (s *DefaultBookingService) Overlapping(bookingID int64) []models.Booking {
	bookings := s.Bookings()
	idx := indexOf(bookings, bookingID)
	if idx < 0 {
		return nil
	}
	start, end, ok := s.interval(bookings[idx])
	if !ok {
		return nil
	}

	var out []models.Booking
	for i, other := range bookings {
		if i == idx || other.Status == models.StatusCancelled {
			continue
		}
		oStart, oEnd, ok := s.interval(other)
		if !ok {
			continue
		}
		if start.Before(oEnd) && end.After(oStart) {
			out = append(out, other)
		}
	}
	return out
}

func (s *DefaultBookingService) interval(b models.Booking) (time.Time, time.Time, bool) {
	start, err := b.ScheduledAt(s.location())
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	d := time.Duration(b.Duration) * time.Minute
	if d <= 0 {
		d = defaultDuration
	}
	return start, start.Add(d), true
}

func (s *DefaultBookingService) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}
