package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "salonadmin/database/repository/booking"
	"salonadmin/models"
	"salonadmin/services/tasks"

	"go.uber.org/zap"
)

// BookingService is the admin console's view of the booking collection.
type BookingService interface {
	Load(ctx context.Context) ([]models.Booking, error)
	Bookings() []models.Booking
	Filter(filter models.BookingFilter) []models.Booking

	Update(ctx context.Context, adminID, bookingID int64, update models.BookingUpdate) (*models.Booking, error)
	SetStatus(ctx context.Context, adminID, bookingID int64, status string) (*models.Booking, error)
	RescheduleDate(ctx context.Context, adminID, bookingID int64, newDate string) (*models.Booking, bool, error)
	RescheduleTime(ctx context.Context, adminID, bookingID int64, newTime string) (*models.Booking, bool, error)
	Delete(ctx context.Context, adminID, bookingID int64, confirm Confirmer) (bool, error)

	Overlapping(bookingID int64) []models.Booking
	Stats(now time.Time) models.BookingStats
}

// DefaultBookingService keeps the last loaded collection in memory and
// writes the whole collection back on every mutation.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Audit  tasks.AuditRecorder
	Logger *zap.Logger
	// Location is used to interpret booking dates; defaults to time.Local.
	Location *time.Location

	mu       sync.Mutex
	bookings []models.Booking
	loaded   bool
}

// NewBookingService returns a service over repo. audit may be nil.
func NewBookingService(repo bookingRepo.BookingRepository, audit tasks.AuditRecorder, logger *zap.Logger) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:     repo,
		Audit:    audit,
		Logger:   logger,
		Location: time.Local,
	}
}

// Confirmer asks the user to confirm a destructive action. It must answer synchronously.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// DeletePrompt is the question asked before a booking is removed.
const DeletePrompt = "Are you sure you want to delete this booking?"
