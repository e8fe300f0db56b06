package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	kvRepo "salonadmin/database/repository/kv"
)

// CurrentUserKeyPrefix prefixes the kv key holding a session's current user id.
const CurrentUserKeyPrefix = "current_user_id:"

// Session is one browser's login state. It is created per request from the
// session cookie and passed explicitly to the checker, login and logout.
type Session struct {
	ID    string
	store kvRepo.Store
	ttl   time.Duration
}

// NewSession binds a session id to the store holding its state.
func NewSession(id string, store kvRepo.Store) *Session {
	return &Session{ID: id, store: store}
}

// WithTTL makes the stored current user expire together with the session cookie.
func (s *Session) WithTTL(ttl time.Duration) *Session {
	s.ttl = ttl
	return s
}

func (s *Session) key() string {
	return CurrentUserKeyPrefix + s.ID
}

// CurrentUserID returns the recorded user id; found is false when logged out.
func (s *Session) CurrentUserID(ctx context.Context) (id int64, found bool, err error) {
	raw, found, err := s.store.Get(ctx, s.key())
	if err != nil {
		return 0, false, fmt.Errorf("failed to read current user id: %w", err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("stored current user id %q is not numeric: %w", raw, err)
	}
	return id, true, nil
}

// SetCurrentUserID records id as the session's current user.
func (s *Session) SetCurrentUserID(ctx context.Context, id int64) error {
	value := strconv.FormatInt(id, 10)
	var err error
	if s.ttl > 0 {
		err = s.store.SetWithTTL(ctx, s.key(), value, s.ttl)
	} else {
		err = s.store.Set(ctx, s.key(), value)
	}
	if err != nil {
		return fmt.Errorf("failed to save current user id: %w", err)
	}
	return nil
}

// Logout tears the session down by forgetting the current user.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key()); err != nil {
		return fmt.Errorf("failed to clear current user id: %w", err)
	}
	return nil
}
