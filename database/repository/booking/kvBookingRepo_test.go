package bookingRepo

import (
	"context"
	"errors"
	"testing"

	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/models"
)

func TestLoadAllAbsentIsEmpty(t *testing.T) {
	repo := NewKVBookingRepo(kvRepo.NewMemoryStore())
	got, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestLoadAllMalformed(t *testing.T) {
	ctx := context.Background()
	store := kvRepo.NewMemoryStore()
	_ = store.Set(ctx, BookingsKey, "{not json")

	_, err := NewKVBookingRepo(store).LoadAll(ctx)
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
}

func TestSaveAllRoundTripsStoredFieldNames(t *testing.T) {
	ctx := context.Background()
	store := kvRepo.NewMemoryStore()
	repo := NewKVBookingRepo(store)

	in := []models.Booking{{ID: 7, Service: "Pedicure", Date: "27.12.2024 16:00", ChatID: 555, UserID: 130208292, Status: models.StatusCompleted}}
	if err := repo.SaveAll(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, _, _ := store.Get(ctx, BookingsKey)
	want := `[{"id":7,"service":"Pedicure","date":"27.12.2024 16:00","duration":0,"contacts":"","timestamp":"","chat_id":555,"user_id":130208292,"status":"completed"}]`
	if raw != want {
		t.Fatalf("unexpected blob:\n got %s\nwant %s", raw, want)
	}

	exists, err := repo.Exists(ctx)
	if err != nil || !exists {
		t.Fatalf("expected blob to exist, got %v %v", exists, err)
	}
}
