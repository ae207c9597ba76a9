package booster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-player/internal/booster"
	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/testutils"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()
	s := booster.NewStatic("u1")

	ok, err := s.IsBoosted(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	s.Set("u1", false)
	s.Set("u2", true)

	ok, _ = s.IsBoosted(ctx, "u1")
	assert.False(t, ok)
	ok, _ = s.IsBoosted(ctx, "u2")
	assert.True(t, ok)
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)

	checker, err := booster.NewRedis(&booster.RedisConfig{Client: client})
	require.NoError(t, err)

	ok, err := checker.IsBoosted(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = mr.SAdd(booster.DefaultRedisKey, "u1")
	require.NoError(t, err)

	ok, err = checker.IsBoosted(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, checker.Set(ctx, "u1", false))
	ok, _ = checker.IsBoosted(ctx, "u1")
	assert.False(t, ok)

	mr.Close()
	_, err = checker.IsBoosted(ctx, "u1")
	assert.True(t, errors.IsPersistence(err))
}

func TestNewRedisValidation(t *testing.T) {
	_, err := booster.NewRedis(nil)
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = booster.NewRedis(&booster.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}
