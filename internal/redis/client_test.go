package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisclient "github.com/KirkDiggler/rpg-player/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redisclient.NewClient("", nil)
	assert.Error(t, err)
}

func TestNewClusterClientRequiresEndpoints(t *testing.T) {
	_, err := redisclient.NewClusterClient(nil, nil)
	assert.Error(t, err)
}

func TestClientsReachServer(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	testCases := []struct {
		name string
		dial func() (redisclient.Client, error)
	}{
		{
			name: "single node",
			dial: func() (redisclient.Client, error) {
				return redisclient.NewClient(mr.Addr(), &redisclient.Options{PoolSize: 2})
			},
		},
		{
			name: "cluster",
			dial: func() (redisclient.Client, error) {
				return redisclient.NewClusterClient([]string{mr.Addr()}, &redisclient.Options{PoolSize: 2})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := tc.dial()
			require.NoError(t, err)
			defer func() { _ = client.Close() }()

			require.NoError(t, client.Set(ctx, "player:"+tc.name, "1", 0).Err())
			got, err := mr.Get("player:" + tc.name)
			require.NoError(t, err)
			assert.Equal(t, "1", got)
		})
	}
}
