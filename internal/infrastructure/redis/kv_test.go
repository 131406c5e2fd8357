package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comanda-eventos/internal/infrastructure/redis"
	"github.com/jhoicas/comanda-eventos/pkg/config"
)

func TestNewKV_SinServidorFalla(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	kv, err := redis.NewKV(ctx, config.RedisConfig{Addr: "127.0.0.1:1", PoolSize: 1})

	require.Error(t, err)
	assert.Nil(t, kv)
	assert.Contains(t, err.Error(), "ping redis")
}
