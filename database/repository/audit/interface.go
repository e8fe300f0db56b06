package auditRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/models"
)

// AuditKey is the kv key holding the JSON array of audit entries.
const AuditKey = "booking_audit"

// MaxEntries caps the stored trail; older entries are dropped first.
const MaxEntries = 200

type AuditRepository interface {
	Append(ctx context.Context, entry models.AuditEntry) error
	// List returns entries newest first.
	List(ctx context.Context) ([]models.AuditEntry, error)
}

type kvAuditRepo struct {
	mu    sync.Mutex
	store kvRepo.Store
}

func NewKVAuditRepo(store kvRepo.Store) AuditRepository {
	return &kvAuditRepo{store: store}
}

func (r *kvAuditRepo) Append(ctx context.Context, entry models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal audit trail: %w", err)
	}
	if err := r.store.Set(ctx, AuditKey, string(data)); err != nil {
		return fmt.Errorf("failed to save audit trail: %w", err)
	}
	return nil
}

func (r *kvAuditRepo) List(ctx context.Context) ([]models.AuditEntry, error) {
	entries, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.AuditEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out, nil
}

func (r *kvAuditRepo) load(ctx context.Context) ([]models.AuditEntry, error) {
	raw, found, err := r.store.Get(ctx, AuditKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit trail: %w", err)
	}
	if !found || raw == "" {
		return nil, nil
	}
	var entries []models.AuditEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse audit trail: %w", err)
	}
	return entries, nil
}
