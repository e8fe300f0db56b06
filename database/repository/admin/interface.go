package adminRepo

import (
	"context"
	"encoding/json"
	"fmt"

	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/models"
)

// AdminConfigKey is the kv key holding the JSON AdminConfig.
const AdminConfigKey = "admin_config"

// AdminConfigRepository reads and writes the stored allow-list.
type AdminConfigRepository interface {
	// Get returns nil, nil when no config is stored.
	Get(ctx context.Context) (*models.AdminConfig, error)
	Save(ctx context.Context, cfg models.AdminConfig) error
}

type kvAdminConfigRepo struct {
	store kvRepo.Store
}

// NewKVAdminConfigRepo returns an AdminConfigRepository over a kv store.
func NewKVAdminConfigRepo(store kvRepo.Store) AdminConfigRepository {
	return &kvAdminConfigRepo{store: store}
}

func (r *kvAdminConfigRepo) Get(ctx context.Context) (*models.AdminConfig, error) {
	raw, found, err := r.store.Get(ctx, AdminConfigKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read admin config: %w", err)
	}
	if !found {
		return nil, nil
	}
	var cfg models.AdminConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse admin config: %w", err)
	}
	return &cfg, nil
}

func (r *kvAdminConfigRepo) Save(ctx context.Context, cfg models.AdminConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal admin config: %w", err)
	}
	if err := r.store.Set(ctx, AdminConfigKey, string(data)); err != nil {
		return fmt.Errorf("failed to save admin config: %w", err)
	}
	return nil
}
