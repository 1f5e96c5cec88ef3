package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthSnapshotRoundTrip(t *testing.T) {
	defer RecordHealth(HealthStatus{})

	now := time.Now()
	RecordHealth(HealthStatus{Mongo: true, Cache: false, CheckedAt: now})

	got := GetHealthStatus()
	assert.True(t, got.Mongo)
	assert.False(t, got.Cache)
	assert.Equal(t, now, got.CheckedAt)
}

func TestCheckHealthNilClientsAreUnhealthy(t *testing.T) {
	status := checkHealth(context.Background(), nil, nil)

	assert.False(t, status.Mongo)
	assert.False(t, status.Cache)
	assert.False(t, status.CheckedAt.IsZero())
}
