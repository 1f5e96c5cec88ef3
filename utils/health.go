package utils

import (
	"context"
	"sync"
	"time"

	"partypilot/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest snapshot of the service's backing dependencies:
// the Mongo database and the Redis cache.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// RecordHealth replaces the stored snapshot.
func RecordHealth(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// checkHealth runs one round of dependency pings. A nil client counts as
// unhealthy.
func checkHealth(ctx context.Context, cache *redis.Client, mongoClient *mongo.Client) HealthStatus {
	cacheOK := cache != nil && cache.Ping(ctx).Err() == nil
	mongoOK := mongoClient != nil && mongoClient.Ping(ctx, nil) == nil

	return HealthStatus{
		Mongo:     mongoOK,
		Cache:     cacheOK,
		CheckedAt: time.Now(),
	}
}

// StartHealthMonitor pings Mongo and the cache on the configured interval
// and keeps the latest snapshot in memory for the health endpoint.
func StartHealthMonitor(cache *redis.Client, mongoClient *mongo.Client) {
	interval := time.Duration(config.AppConfig.HealthCheckInterval) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			RecordHealth(checkHealth(ctx, cache, mongoClient))
		}
	}()
}
