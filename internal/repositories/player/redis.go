package player

import (
	"context"
	"encoding/json"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-player/internal/redis"
)

const (
	playerKeyPrefix = "player:"

	errIDEmpty     = "player ID cannot be empty"
	errRecordEmpty = "player record cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis player repository
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.ID)).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("player %s not found", input.ID)
		}
		return nil, errors.Persistence(err, "failed to get player %s", input.ID)
	}

	var record rpg.Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player %s", input.ID)
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordEmpty)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player %s", input.Record.ID)
	}

	if err := r.client.Set(ctx, GetKey(input.Record.ID), data, 0).Err(); err != nil {
		return nil, errors.Persistence(err, "failed to save player %s", input.Record.ID)
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	removed, err := r.client.Del(ctx, GetKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Persistence(err, "failed to delete player %s", input.ID)
	}

	return &DeleteOutput{Existed: removed > 0}, nil
}

// GetKey returns the Redis key for a player
// Exposed for testing purposes
func GetKey(id string) string {
	return playerKeyPrefix + id
}
