package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"salonadmin/models"

	"go.uber.org/zap"
)

// Load replaces the in-memory collection with the stored one. On failure the
// in-memory collection is emptied and the next mutation will try to load again.
func (s *DefaultBookingService) Load(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(s.bookings), nil
}

func (s *DefaultBookingService) loadLocked(ctx context.Context) error {
	bookings, err := s.Repo.LoadAll(ctx)
	if err != nil {
		s.bookings = nil
		s.loaded = false
		s.Logger.Error("Failed to load bookings", zap.Error(err))
		return fmt.Errorf("failed to load bookings: %w", err)
	}
	s.bookings = bookings
	s.loaded = true
	return nil
}

func (s *DefaultBookingService) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

// Bookings returns a copy of the in-memory collection.
func (s *DefaultBookingService) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookings)
}

// Filter applies filter to the in-memory collection.
func (s *DefaultBookingService) Filter(filter models.BookingFilter) []models.Booking {
	return FilterBookings(s.Bookings(), filter)
}

func indexOf(bookings []models.Booking, id int64) int {
	return slices.IndexFunc(bookings, func(b models.Booking) bool { return b.ID == id })
}

// Update shallow-merges update into the booking and writes the whole collection.
func (s *DefaultBookingService) Update(ctx context.Context, adminID, bookingID int64, update models.BookingUpdate) (*models.Booking, error) {
	return s.updateWith(ctx, adminID, bookingID, func(models.Booking) (models.BookingUpdate, error) {
		return update, nil
	})
}

// updateWith derives the update from the booking's current state under the
// service lock, so read-modify-write cannot interleave with another mutation.
func (s *DefaultBookingService) updateWith(ctx context.Context, adminID, bookingID int64, build func(current models.Booking) (models.BookingUpdate, error)) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	idx := indexOf(s.bookings, bookingID)
	if idx < 0 {
		return nil, ErrBookingNotFound
	}

	update, err := build(s.bookings[idx])
	if err != nil {
		return nil, err
	}
	if err := update.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	next := slices.Clone(s.bookings)
	next[idx] = update.Apply(next[idx])

	if err := s.Repo.SaveAll(ctx, next); err != nil {
		s.Logger.Error("Failed to update booking", zap.Int64("bookingID", bookingID), zap.Error(err))
		return nil, &PersistError{Op: "update booking", Err: err}
	}
	s.bookings = next

	detail, _ := json.Marshal(update)
	s.record(ctx, models.AuditEntry{Action: models.AuditUpdate, BookingID: bookingID, AdminID: adminID, Detail: string(detail)})

	updated := next[idx]
	return &updated, nil
}

// SetStatus applies a status change immediately.
func (s *DefaultBookingService) SetStatus(ctx context.Context, adminID, bookingID int64, status string) (*models.Booking, error) {
	parsed, err := models.ParseBookingStatus(status)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return s.Update(ctx, adminID, bookingID, models.BookingUpdate{Status: &parsed})
}

// Delete removes a booking after confirm agrees. An unknown id changes nothing
// and reports false.
func (s *DefaultBookingService) Delete(ctx context.Context, adminID, bookingID int64, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm.Confirm(DeletePrompt) {
		return false, ErrDeleteNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return false, err
	}
	idx := indexOf(s.bookings, bookingID)
	if idx < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.bookings), idx, idx+1)
	if err := s.Repo.SaveAll(ctx, next); err != nil {
		s.Logger.Error("Failed to delete booking", zap.Int64("bookingID", bookingID), zap.Error(err))
		return false, &PersistError{Op: "delete booking", Err: err}
	}
	s.bookings = next

	s.record(ctx, models.AuditEntry{Action: models.AuditDelete, BookingID: bookingID, AdminID: adminID})
	return true, nil
}

func (s *DefaultBookingService) record(ctx context.Context, entry models.AuditEntry) {
	if s.Audit == nil {
		return
	}
	entry.At = time.Now().UTC()
	if err := s.Audit.Record(ctx, entry); err != nil {
		s.Logger.Warn("Failed to record audit entry",
			zap.String("action", entry.Action),
			zap.Int64("bookingID", entry.BookingID),
			zap.Error(err))
	}
}
