package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories and the booster
// checker can be handed a single-node, cluster or failover client alike
type Client interface {
	redis.UniversalClient
}
