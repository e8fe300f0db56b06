package models

import "time"

// Audit actions.
const (
	AuditUpdate = "update"
	AuditDelete = "delete"
)

// AuditEntry records one successful mutation made from the console.
type AuditEntry struct {
	Action    string    `json:"action"`
	BookingID int64     `json:"bookingId"`
	AdminID   int64     `json:"adminId,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}
