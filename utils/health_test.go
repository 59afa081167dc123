package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHealthChecks(t *testing.T) {
	status := RunHealthChecks(context.Background(), map[string]HealthCheck{
		"mongo": func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})

	assert.False(t, status.Healthy)
	assert.True(t, status.Services["mongo"])
	assert.False(t, status.Services["redis"])
	assert.Equal(t, status, GetHealthStatus())

	status = RunHealthChecks(context.Background(), nil)
	assert.True(t, status.Healthy)
	assert.Empty(t, status.Services)
}

func TestStartHealthMonitor(t *testing.T) {
	calls := 0
	c, err := StartHealthMonitor("@every 1h", map[string]HealthCheck{
		"noop": func(context.Context) error { calls++; return nil },
	})
	require.NoError(t, err)
	defer c.Stop()

	assert.Equal(t, 1, calls)
	assert.Len(t, c.Entries(), 1)

	_, err = StartHealthMonitor("not a schedule", nil)
	assert.Error(t, err)
}
