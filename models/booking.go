package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BookingDateLayout is the layout of Booking.Date.
const BookingDateLayout = "02.01.2006 15:04"

// Layouts of the two halves of Booking.Date.
const (
	DatePartLayout = "02.01.2006"
	TimePartLayout = "15:04"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// StatusAll is the status filter value that matches every booking.
const StatusAll = "all"

// BookingStatuses lists every valid status in display order.
var BookingStatuses = []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

var statusLabels = map[BookingStatus]string{
	StatusPending:   "⏳ Pending",
	StatusConfirmed: "✅ Confirmed",
	StatusCancelled: "❌ Cancelled",
	StatusCompleted: "🏁 Completed",
}

// Valid reports whether s is one of the four known statuses.
func (s BookingStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label is the human readable badge for s; unknown statuses are shown verbatim.
func (s BookingStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseBookingStatus validates raw as a status.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("unknown booking status %q", raw)
	}
	return s, nil
}

// Booking is a single scheduled-service record as written by the intake bot.
type Booking struct {
	ID        int64         `json:"id"`
	Service   string        `json:"service"`
	Date      string        `json:"date"` // "DD.MM.YYYY HH:MM"
	Duration  int           `json:"duration"`
	Contacts  string        `json:"contacts"`
	Timestamp string        `json:"timestamp"` // ISO-8601 creation time
	ChatID    int64         `json:"chat_id"`
	UserID    int64         `json:"user_id"`
	Username  string        `json:"username,omitempty"`
	FirstName string        `json:"first_name,omitempty"`
	LastName  string        `json:"last_name,omitempty"`
	Status    BookingStatus `json:"status"`
}

// DatePart returns the "DD.MM.YYYY" half of Date.
func (b Booking) DatePart() string {
	datePart, _, _ := strings.Cut(b.Date, " ")
	return datePart
}

// TimePart returns the "HH:MM" half of Date, or "" when Date has no time.
func (b Booking) TimePart() string {
	_, timePart, _ := strings.Cut(b.Date, " ")
	return timePart
}

// ScheduledAt parses Date in loc.
func (b Booking) ScheduledAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(BookingDateLayout, b.Date, loc)
}

// ClientName is the display name of the person who booked.
func (b Booking) ClientName() string {
	if b.FirstName != "" || b.LastName != "" {
		return strings.TrimSpace(b.FirstName + " " + b.LastName)
	}
	if b.Username != "" {
		return b.Username
	}
	return "Not specified"
}

// BookingUpdate is a partial set of field changes; nil fields are left alone.
// The id is deliberately absent so updates can never break id uniqueness.
type BookingUpdate struct {
	Service   *string        `json:"service,omitempty"`
	Date      *string        `json:"date,omitempty"`
	Duration  *int           `json:"duration,omitempty"`
	Contacts  *string        `json:"contacts,omitempty"`
	Status    *BookingStatus `json:"status,omitempty"`
	Username  *string        `json:"username,omitempty"`
	FirstName *string        `json:"first_name,omitempty"`
	LastName  *string        `json:"last_name,omitempty"`
}

// IsEmpty reports whether u changes nothing.
func (u BookingUpdate) IsEmpty() bool {
	return u.Service == nil && u.Date == nil && u.Duration == nil && u.Contacts == nil &&
		u.Status == nil && u.Username == nil && u.FirstName == nil && u.LastName == nil
}

// Validate checks that applying u keeps the booking invariants.
func (u BookingUpdate) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("unknown booking status %q", *u.Status)
	}
	if u.Date != nil {
		if err := ValidateBookingDate(*u.Date); err != nil {
			return err
		}
	}
	if u.Duration != nil && *u.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

// Apply returns b with the fields of u merged over it.
func (u BookingUpdate) Apply(b Booking) Booking {
	if u.Service != nil {
		b.Service = *u.Service
	}
	if u.Date != nil {
		b.Date = *u.Date
	}
	if u.Duration != nil {
		b.Duration = *u.Duration
	}
	if u.Contacts != nil {
		b.Contacts = *u.Contacts
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.Username != nil {
		b.Username = *u.Username
	}
	if u.FirstName != nil {
		b.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		b.LastName = *u.LastName
	}
	return b
}

// ValidateBookingDate checks that date is a real "DD.MM.YYYY HH:MM" moment.
func ValidateBookingDate(date string) error {
	if _, err := time.Parse(BookingDateLayout, date); err != nil {
		return fmt.Errorf("date %q must be \"DD.MM.YYYY HH:MM\"", date)
	}
	return nil
}

// BookingFilter holds the three conjunctive filter criteria of the admin view.
type BookingFilter struct {
	Search string `form:"search" json:"search"`
	Status string `form:"status" json:"status"`
	Date   string `form:"date" json:"date"`
}

// BookingStats summarizes the collection.
type BookingStats struct {
	Total    int                   `json:"total"`
	Upcoming int                   `json:"upcoming"`
	Past     int                   `json:"past"`
	ByStatus map[BookingStatus]int `json:"byStatus"`
}
