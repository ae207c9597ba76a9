// Package booster answers whether a player gets the boosted chat and
// daily rewards
package booster

//go:generate mockgen -destination=mock/mock_checker.go -package=boostermock github.com/KirkDiggler/rpg-player/internal/booster Checker

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-player/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-player/internal/redis"
)

// DefaultRedisKey is the set holding boosted player IDs
const DefaultRedisKey = "players:boosted"

// Checker reports whether a player is boosted
type Checker interface {
	IsBoosted(ctx context.Context, playerID string) (bool, error)
}

// Static is a fixed, in-process set of boosted players
type Static struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewStatic creates a Static checker from a list of IDs
func NewStatic(ids ...string) *Static {
	s := &Static{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// IsBoosted never fails
func (s *Static) IsBoosted(_ context.Context, playerID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[playerID]
	return ok, nil
}

// Set adds or removes a player
func (s *Static) Set(playerID string, boosted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if boosted {
		s.ids[playerID] = struct{}{}
		return
	}
	delete(s.ids, playerID)
}

// RedisConfig configures the Redis-backed checker
type RedisConfig struct {
	Client redisclient.Client
	// Key defaults to DefaultRedisKey
	Key string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// Redis checks membership in a Redis set, so boosts can be managed
// outside the service
type Redis struct {
	client redisclient.Client
	key    string
}

// NewRedis creates a Redis-backed checker
func NewRedis(cfg *RedisConfig) (*Redis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}
	return &Redis{client: cfg.Client, key: key}, nil
}

// IsBoosted runs SISMEMBER against the configured set
func (r *Redis) IsBoosted(ctx context.Context, playerID string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key, playerID).Result()
	if err != nil {
		return false, errors.Persistence(err, "failed to check boost for player %s", playerID)
	}
	return ok, nil
}

// Set adds or removes a player from the set
func (r *Redis) Set(ctx context.Context, playerID string, boosted bool) error {
	var err error
	if boosted {
		err = r.client.SAdd(ctx, r.key, playerID).Err()
	} else {
		err = r.client.SRem(ctx, r.key, playerID).Err()
	}
	if err != nil {
		return errors.Persistence(err, "failed to update boost for player %s", playerID)
	}
	return nil
}
