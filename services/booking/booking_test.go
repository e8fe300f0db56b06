package booking

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	bookingRepo "salonadmin/database/repository/booking"
	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/models"
)

func sampleBookings() []models.Booking {
	return []models.Booking{
		{ID: 1, Service: "💅 Manicure", Date: "25.12.2024 10:00", Duration: 90, Contacts: "📱 +7 (978) 123-45-67",
			Timestamp: "2024-12-20T10:00:00Z", ChatID: 123456789, UserID: 1373071419, Username: "admin_manicure", Status: models.StatusConfirmed},
		{ID: 2, Service: "🧖 Laser hair removal", Date: "26.12.2024 14:30", Duration: 30, Contacts: "📧 client@example.com",
			Timestamp: "2024-12-20T11:30:00Z", ChatID: 987654321, UserID: 1094720117, Username: "admin_other", Status: models.StatusPending},
		{ID: 3, Service: "👣 Pedicure", Date: "27.12.2024 16:00", Duration: 90, Contacts: "📱 +7 (978) 987-65-43",
			Timestamp: "2024-12-20T12:15:00Z", ChatID: 555555555, UserID: 130208292, Username: "admin_all", Status: models.StatusCompleted},
	}
}

func newSeededService(t *testing.T) (*DefaultBookingService, bookingRepo.BookingRepository) {
	t.Helper()
	repo := bookingRepo.NewKVBookingRepo(kvRepo.NewMemoryStore())
	if err := repo.SaveAll(context.Background(), sampleBookings()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewBookingService(repo, nil, nil)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc, repo
}

func ids(bookings []models.Booking) []int64 {
	out := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func confirmYes() Confirmer { return ConfirmFunc(func(string) bool { return true }) }

func TestFilterDefaultCriteriaReturnsEverythingInOrder(t *testing.T) {
	all := sampleBookings()
	for _, f := range []models.BookingFilter{{}, {Status: models.StatusAll}} {
		got := FilterBookings(all, f)
		if !reflect.DeepEqual(got, all) {
			t.Fatalf("filter %+v changed the collection: %v", f, ids(got))
		}
	}
}

func TestFilterCriteria(t *testing.T) {
	all := sampleBookings()
	tests := []struct {
		name   string
		filter models.BookingFilter
		want   []int64
	}{
		{"status pending", models.BookingFilter{Status: "pending"}, []int64{2}},
		{"status all", models.BookingFilter{Status: "all"}, []int64{1, 2, 3}},
		{"search service case-insensitive", models.BookingFilter{Search: "PEDICURE"}, []int64{3}},
		{"search contacts", models.BookingFilter{Search: "example.com"}, []int64{2}},
		{"search date", models.BookingFilter{Search: "26.12"}, []int64{2}},
		{"date prefix", models.BookingFilter{Date: "25.12.2024"}, []int64{1}},
		{"date prefix month", models.BookingFilter{Date: "2"}, []int64{1, 2, 3}},
		{"date is a prefix not a substring", models.BookingFilter{Date: "12.2024"}, []int64{}},
		{"conjunctive", models.BookingFilter{Search: "978", Status: "completed"}, []int64{3}},
		{"no match", models.BookingFilter{Search: "massage"}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterBookings(all, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSearchMatchesID(t *testing.T) {
	bookings := []models.Booking{
		{ID: 4711, Service: "Lashes", Date: "01.01.2025 09:00"},
		{ID: 12, Service: "Makeup", Date: "01.01.2025 09:00"},
	}
	got := ids(FilterBookings(bookings, models.BookingFilter{Search: "471"}))
	if !reflect.DeepEqual(got, []int64{4711}) {
		t.Fatalf("expected id match, got %v", got)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	all := sampleBookings()
	filters := []models.BookingFilter{
		{},
		{Status: "pending"},
		{Search: "978"},
		{Search: "manicure", Status: "confirmed", Date: "25"},
		{Date: "27.12"},
	}
	for _, f := range filters {
		once := FilterBookings(all, f)
		twice := FilterBookings(once, f)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("filter %+v not idempotent: %v vs %v", f, ids(once), ids(twice))
		}
	}
}

func TestServiceFilterUsesLoadedCollection(t *testing.T) {
	svc, _ := newSeededService(t)
	got := svc.Filter(models.BookingFilter{Status: "pending"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only booking 2, got %v", ids(got))
	}
}

func TestLoadEmptyAndMalformed(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		svc := NewBookingService(bookingRepo.NewKVBookingRepo(kvRepo.NewMemoryStore()), nil, nil)
		got, err := svc.Load(ctx)
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty collection, got %v %v", got, err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		store := kvRepo.NewMemoryStore()
		repo := bookingRepo.NewKVBookingRepo(store)
		_ = repo.SaveAll(ctx, sampleBookings())
		svc := NewBookingService(repo, nil, nil)
		if _, err := svc.Load(ctx); err != nil {
			t.Fatalf("first load: %v", err)
		}

		_ = store.Set(ctx, bookingRepo.BookingsKey, "[{")
		_, err := svc.Load(ctx)
		if !errors.Is(err, bookingRepo.ErrMalformedData) {
			t.Fatalf("expected malformed error, got %v", err)
		}
		if len(svc.Bookings()) != 0 {
			t.Fatal("collection should be left empty after a failed load")
		}

		// A mutation must not overwrite the unreadable blob with an empty list.
		if _, err := svc.SetStatus(ctx, 1, 1, "completed"); !errors.Is(err, bookingRepo.ErrMalformedData) {
			t.Fatalf("expected mutation to fail on reload, got %v", err)
		}
		raw, _, _ := store.Get(ctx, bookingRepo.BookingsKey)
		if raw != "[{" {
			t.Fatalf("stored blob was overwritten: %q", raw)
		}
	})
}

func TestUpdateStatusThenLoad(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSeededService(t)

	completed := models.StatusCompleted
	if _, err := svc.Update(ctx, 130208292, 2, models.BookingUpdate{Status: &completed}); err != nil {
		t.Fatalf("update: %v", err)
	}

	reloaded, err := NewBookingService(repo, nil, nil).Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := sampleBookings()
	want[1].Status = models.StatusCompleted
	if !reflect.DeepEqual(reloaded, want) {
		t.Fatalf("unexpected collection after update:\n got %+v\nwant %+v", reloaded, want)
	}
}

func TestUpdateRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t)

	if _, err := svc.SetStatus(ctx, 1, 1, "archived"); !isValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	bad := "tomorrow"
	if _, err := svc.Update(ctx, 1, 1, models.BookingUpdate{Date: &bad}); !isValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	freeForm := "tomorrow afternoon"
	if _, err := svc.Update(ctx, 1, 1, models.BookingUpdate{Date: &freeForm}); !isValidation(err) {
		t.Fatalf("expected validation error for %q, got %v", freeForm, err)
	}
	if _, err := svc.SetStatus(ctx, 1, 99, "completed"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !reflect.DeepEqual(svc.Bookings(), sampleBookings()) {
		t.Fatal("rejected updates must not change the collection")
	}
}

func isValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func TestDeleteThenLoad(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSeededService(t)

	removed, err := svc.Delete(ctx, 1, 2, confirmYes())
	if err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}

	reloaded, _ := NewBookingService(repo, nil, nil).Load(ctx)
	if !reflect.DeepEqual(ids(reloaded), []int64{1, 3}) {
		t.Fatalf("unexpected ids after delete: %v", ids(reloaded))
	}
}

func TestDeleteUnknownIDLeavesCollection(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSeededService(t)

	removed, err := svc.Delete(ctx, 1, 42, confirmYes())
	if err != nil || removed {
		t.Fatalf("expected nothing removed, got removed=%v err=%v", removed, err)
	}
	reloaded, _ := repo.LoadAll(ctx)
	if !reflect.DeepEqual(reloaded, sampleBookings()) {
		t.Fatal("collection changed after deleting an unknown id")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSeededService(t)

	var prompt string
	decline := ConfirmFunc(func(p string) bool { prompt = p; return false })
	if _, err := svc.Delete(ctx, 1, 1, decline); !errors.Is(err, ErrDeleteNotConfirmed) {
		t.Fatalf("expected ErrDeleteNotConfirmed, got %v", err)
	}
	if prompt != DeletePrompt {
		t.Fatalf("unexpected prompt %q", prompt)
	}
	if _, err := svc.Delete(ctx, 1, 1, nil); !errors.Is(err, ErrDeleteNotConfirmed) {
		t.Fatalf("nil confirmer must not delete, got %v", err)
	}

	reloaded, _ := repo.LoadAll(ctx)
	if len(reloaded) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(reloaded))
	}
}

type failingRepo struct {
	bookingRepo.BookingRepository
	saveErr error
}

func (f *failingRepo) SaveAll(context.Context, []models.Booking) error { return f.saveErr }

func TestWriteFailureKeepsPriorState(t *testing.T) {
	ctx := context.Background()
	inner := bookingRepo.NewKVBookingRepo(kvRepo.NewMemoryStore())
	_ = inner.SaveAll(ctx, sampleBookings())
	repo := &failingRepo{BookingRepository: inner, saveErr: errors.New("quota exceeded")}
	svc := NewBookingService(repo, nil, nil)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	var pErr *PersistError
	if _, err := svc.SetStatus(ctx, 1, 1, "cancelled"); !errors.As(err, &pErr) {
		t.Fatalf("expected PersistError, got %v", err)
	}
	if _, err := svc.Delete(ctx, 1, 1, confirmYes()); !errors.As(err, &pErr) {
		t.Fatalf("expected PersistError, got %v", err)
	}
	if !reflect.DeepEqual(svc.Bookings(), sampleBookings()) {
		t.Fatal("in-memory collection changed after failed writes")
	}
}

type recordingAudit struct {
	entries []models.AuditEntry
	err     error
}

func (r *recordingAudit) Record(_ context.Context, e models.AuditEntry) error {
	r.entries = append(r.entries, e)
	return r.err
}

func TestMutationsAreAudited(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t)
	audit := &recordingAudit{err: errors.New("queue down")}
	svc.Audit = audit

	if _, err := svc.SetStatus(ctx, 130208292, 1, "completed"); err != nil {
		t.Fatalf("audit failures must not fail the update: %v", err)
	}
	if _, err := svc.Delete(ctx, 130208292, 2, confirmYes()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(audit.entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(audit.entries))
	}
	first := audit.entries[0]
	if first.Action != models.AuditUpdate || first.BookingID != 1 || first.AdminID != 130208292 || first.Detail != `{"status":"completed"}` {
		t.Fatalf("unexpected update entry %+v", first)
	}
	if audit.entries[1].Action != models.AuditDelete || audit.entries[1].BookingID != 2 {
		t.Fatalf("unexpected delete entry %+v", audit.entries[1])
	}
}

func TestRescheduleDateAndTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t)

	b, applied, err := svc.RescheduleDate(ctx, 1, 1, "2024-12-28")
	if err != nil || !applied {
		t.Fatalf("reschedule date: applied=%v err=%v", applied, err)
	}
	if b.Date != "28.12.2024 10:00" {
		t.Fatalf("expected time to be kept, got %q", b.Date)
	}

	b, applied, err = svc.RescheduleTime(ctx, 1, 1, "12:15")
	if err != nil || !applied {
		t.Fatalf("reschedule time: applied=%v err=%v", applied, err)
	}
	if b.Date != "28.12.2024 12:15" {
		t.Fatalf("expected new date to be kept, got %q", b.Date)
	}

	b, _, err = svc.RescheduleDate(ctx, 1, 1, "29.12.2024")
	if err != nil || b.Date != "29.12.2024 12:15" {
		t.Fatalf("dotted date: %q %v", b.Date, err)
	}
}

func TestRescheduleIgnoresEmptyValues(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t)
	audit := &recordingAudit{}
	svc.Audit = audit

	for _, fn := range []func() (*models.Booking, bool, error){
		func() (*models.Booking, bool, error) { return svc.RescheduleDate(ctx, 1, 1, "") },
		func() (*models.Booking, bool, error) { return svc.RescheduleTime(ctx, 1, 1, "  ") },
	} {
		_, applied, err := fn()
		if err != nil || applied {
			t.Fatalf("empty value should be a no-op, got applied=%v err=%v", applied, err)
		}
	}
	if len(audit.entries) != 0 {
		t.Fatal("no-op reschedules must not write")
	}
}

func TestRescheduleRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t)

	if _, _, err := svc.RescheduleDate(ctx, 1, 1, "31.02.2024"); !isValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, _, err := svc.RescheduleTime(ctx, 1, 1, "25:00"); !isValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, _, err := svc.RescheduleTime(ctx, 1, 404, "10:00"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOverlapping(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t)
	svc.Location = time.UTC

	// Move booking 2 (30 min) into booking 1's 90 minute slot.
	if _, _, err := svc.RescheduleDate(ctx, 1, 2, "25.12.2024"); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if _, _, err := svc.RescheduleTime(ctx, 1, 2, "11:00"); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if got := ids(svc.Overlapping(2)); !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("expected overlap with 1, got %v", got)
	}

	if _, err := svc.SetStatus(ctx, 1, 1, "cancelled"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := svc.Overlapping(2); len(got) != 0 {
		t.Fatalf("cancelled bookings do not block a slot, got %v", ids(got))
	}
	if got := svc.Overlapping(404); got != nil {
		t.Fatalf("unknown id should have no overlaps, got %v", ids(got))
	}
}

func TestStats(t *testing.T) {
	svc, _ := newSeededService(t)
	now := time.Date(2024, 12, 26, 12, 0, 0, 0, time.UTC)

	stats := svc.Stats(now)
	if stats.Total != 3 || stats.Upcoming != 2 || stats.Past != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	for _, st := range models.BookingStatuses {
		want := 0
		switch st {
		case models.StatusConfirmed, models.StatusPending, models.StatusCompleted:
			want = 1
		}
		if stats.ByStatus[st] != want {
			t.Errorf("status %s: got %d, want %d", st, stats.ByStatus[st], want)
		}
	}
}
