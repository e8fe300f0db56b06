package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	kvRepo "salonadmin/database/repository/kv"
)

// BannerKeyPrefix prefixes the kv key holding a session's banners.
const BannerKeyPrefix = "banner:"

// Banner kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindWarning = "warning"
)

// Banner is a transient message shown at the top of the admin view.
type Banner struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// BannerService keeps per-session banners that dismiss themselves after TTL.
type BannerService interface {
	Push(ctx context.Context, sessionID string, banner Banner) error
	Pending(ctx context.Context, sessionID string) ([]Banner, error)
}

// DefaultBannerService stores banners in the kv store with a TTL. Pushing a
// new banner restarts the TTL for all of the session's banners.
type DefaultBannerService struct {
	Store kvRepo.Store
	TTL   time.Duration

	mu sync.Mutex
}

func NewBannerService(store kvRepo.Store, ttl time.Duration) *DefaultBannerService {
	return &DefaultBannerService{Store: store, TTL: ttl}
}

func (s *DefaultBannerService) Push(ctx context.Context, sessionID string, banner Banner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	banners, err := s.Pending(ctx, sessionID)
	if err != nil {
		return err
	}
	banners = append(banners, banner)

	data, err := json.Marshal(banners)
	if err != nil {
		return fmt.Errorf("failed to marshal banners: %w", err)
	}
	if err := s.Store.SetWithTTL(ctx, BannerKeyPrefix+sessionID, string(data), s.TTL); err != nil {
		return fmt.Errorf("failed to save banners: %w", err)
	}
	return nil
}

func (s *DefaultBannerService) Pending(ctx context.Context, sessionID string) ([]Banner, error) {
	raw, found, err := s.Store.Get(ctx, BannerKeyPrefix+sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read banners: %w", err)
	}
	if !found {
		return nil, nil
	}
	var banners []Banner
	if err := json.Unmarshal([]byte(raw), &banners); err != nil {
		return nil, fmt.Errorf("failed to parse banners: %w", err)
	}
	return banners, nil
}

// Success is a convenience constructor.
func Success(msg string) Banner { return Banner{Kind: KindSuccess, Message: msg} }

// Error is a convenience constructor.
func Error(msg string) Banner { return Banner{Kind: KindError, Message: msg} }

// Warning is a convenience constructor.
func Warning(msg string) Banner { return Banner{Kind: KindWarning, Message: msg} }
