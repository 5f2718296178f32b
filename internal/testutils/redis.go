// Package testutils provides shared test helpers: an in-memory Redis and
// on-disk catalog data fixtures.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/rubika-tools/planner-api/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis and returns a client
// connected to it plus a cleanup function.
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, func() { mr.Close() }
}

// CreateTestRedisClientWithSetup starts an in-memory Redis, lets the test
// seed it, and returns a connected client plus a cleanup function.
func CreateTestRedisClientWithSetup(t *testing.T, setup func(mr *miniredis.Miniredis)) (redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	if setup != nil {
		setup(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, func() { mr.Close() }
}
