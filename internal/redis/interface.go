package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client wraps redis.UniversalClient so callers hold an interface. Tests
// back it with a real client pointed at miniredis.
type Client interface {
	redis.UniversalClient
}
