// File: utils/constants.go
package utils

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "admin_session"

// Gin context keys.
const (
	CtxSessionID = "sessionID"
	CtxAdminID   = "adminID"
	CtxAuthState = "authState"
)
