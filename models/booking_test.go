package models

import "testing"

func TestBookingDateParts(t *testing.T) {
	b := Booking{Date: "25.12.2024 10:00"}
	if b.DatePart() != "25.12.2024" {
		t.Errorf("date part: got %q", b.DatePart())
	}
	if b.TimePart() != "10:00" {
		t.Errorf("time part: got %q", b.TimePart())
	}

	noTime := Booking{Date: "25.12.2024"}
	if noTime.TimePart() != "" {
		t.Errorf("expected empty time part, got %q", noTime.TimePart())
	}
}

func TestBookingClientName(t *testing.T) {
	tests := []struct {
		name string
		b    Booking
		want string
	}{
		{"full name", Booking{FirstName: "Anna", LastName: "Petrova", Username: "anna"}, "Anna Petrova"},
		{"first only", Booking{FirstName: "Anna"}, "Anna"},
		{"username", Booking{Username: "anna"}, "anna"},
		{"nothing", Booking{}, "Not specified"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.ClientName(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBookingUpdateApplyIsShallowMerge(t *testing.T) {
	orig := Booking{ID: 1, Service: "Manicure", Date: "25.12.2024 10:00", Duration: 90, Status: StatusConfirmed}
	completed := StatusCompleted
	got := BookingUpdate{Status: &completed}.Apply(orig)

	if got.Status != StatusCompleted {
		t.Fatalf("status not applied: %q", got.Status)
	}
	got.Status = orig.Status
	if got != orig {
		t.Fatalf("other fields changed: %+v", got)
	}
}

func TestBookingUpdateValidate(t *testing.T) {
	bogus := BookingStatus("archived")
	badDate := "25.12.2024"
	twoSpaces := "25.12.2024 10:00 extra"
	zero := 0
	okDate := "26.12.2024 11:30"
	freeForm := "tomorrow afternoon"
	isoDate := "2024-12-26 11:30"
	impossible := "31.02.2024 10:00"

	tests := []struct {
		name    string
		u       BookingUpdate
		wantErr bool
	}{
		{"empty", BookingUpdate{}, false},
		{"unknown status", BookingUpdate{Status: &bogus}, true},
		{"date without time", BookingUpdate{Date: &badDate}, true},
		{"date with extra part", BookingUpdate{Date: &twoSpaces}, true},
		{"zero duration", BookingUpdate{Duration: &zero}, true},
		{"free-form date", BookingUpdate{Date: &freeForm}, true},
		{"iso date", BookingUpdate{Date: &isoDate}, true},
		{"impossible date", BookingUpdate{Date: &impossible}, true},
		{"valid date", BookingUpdate{Date: &okDate}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.u.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, s := range BookingStatuses {
		if got, err := ParseBookingStatus(string(s)); err != nil || got != s {
			t.Errorf("parse %q: got %q, %v", s, got, err)
		}
	}
	if _, err := ParseBookingStatus("all"); err == nil {
		t.Error("\"all\" is a filter value, not a status")
	}
}
