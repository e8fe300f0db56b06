package models

// AuthState is the outcome of an admin check for one session.
type AuthState struct {
	Authenticated bool   `json:"authenticated"`
	AdminID       *int64 `json:"adminId"`
	Loading       bool   `json:"loading"`
}
