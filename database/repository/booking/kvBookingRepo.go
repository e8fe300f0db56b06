package bookingRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/models"
)

type kvBookingRepo struct {
	store kvRepo.Store
}

// NewKVBookingRepo returns a BookingRepository over a kv store.
func NewKVBookingRepo(store kvRepo.Store) BookingRepository {
	return &kvBookingRepo{store: store}
}

func (r *kvBookingRepo) LoadAll(ctx context.Context) ([]models.Booking, error) {
	raw, found, err := r.store.Get(ctx, BookingsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []models.Booking{}, nil
	}

	var bookings []models.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (r *kvBookingRepo) SaveAll(ctx context.Context, bookings []models.Booking) error {
	if bookings == nil {
		bookings = []models.Booking{}
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}
	if err := r.store.Set(ctx, BookingsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	return nil
}

func (r *kvBookingRepo) Exists(ctx context.Context) (bool, error) {
	_, found, err := r.store.Get(ctx, BookingsKey)
	if err != nil {
		return false, fmt.Errorf("failed to read bookings: %w", err)
	}
	return found, nil
}
