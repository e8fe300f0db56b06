package auth

import (
	"context"
	"strconv"
	"strings"
)

// ParseUserID strictly parses the login input.
func ParseUserID(input string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: "userId", Message: InvalidUserIDMessage}
	}
	return id, nil
}

// Login records the entered id as the session's current user and then calls
// onLogin with it. It does not consult the allow-list: a non-admin id is stored
// too, and the Checker alone decides whether it grants access.
func Login(ctx context.Context, session *Session, input string, onLogin func(userID int64)) (int64, error) {
	id, err := ParseUserID(input)
	if err != nil {
		return 0, err
	}
	if err := session.SetCurrentUserID(ctx, id); err != nil {
		return 0, err
	}
	if onLogin != nil {
		onLogin(id)
	}
	return id, nil
}
