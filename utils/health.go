// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is a point-in-time snapshot of the service's backing stores:
// the record/account database and the auth and verification-token caches.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth   HealthStatus
	currentHealthMu sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	currentHealthMu.RLock()
	defer currentHealthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes the given Redis clients and the Mongo client on
// a fixed interval, updating the in-memory snapshot the /health route serves.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		ctx := context.Background()

		// Take an initial snapshot so /health is meaningful before the
		// first tick.
		probeHealth(ctx, redisClients, mongoClient)
		for range ticker.C {
			probeHealth(ctx, redisClients, mongoClient)
		}
	}()
}

func probeHealth(ctx context.Context, redisClients []*redis.Client, mongoClient *mongo.Client) {
	redisHealth := make([]bool, 0, len(redisClients))
	for _, client := range redisClients {
		redisHealth = append(redisHealth, client.Ping(ctx).Err() == nil)
	}

	mongoHealthy := mongoClient.Ping(ctx, nil) == nil
	if !mongoHealthy {
		GetLogger().Warn("Health check: MongoDB unreachable", zap.Time("checkedAt", time.Now()))
	}

	currentHealthMu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	currentHealthMu.Unlock()
}
