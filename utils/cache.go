// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"salonadmin/config"

	"github.com/go-redis/redis/v8"
)

// StoreClient is the redis client backing the kv store.
var StoreClient *redis.Client

// InitStoreClient initializes the redis client for the kv store (DB from AppConfig).
func InitStoreClient() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis (store): %w", err)
	}
	StoreClient = client
	return nil
}

// GetStoreClient returns the kv store redis client, connecting on first use.
func GetStoreClient() (*redis.Client, error) {
	if StoreClient == nil {
		if err := InitStoreClient(); err != nil {
			return nil, err
		}
	}
	return StoreClient, nil
}
