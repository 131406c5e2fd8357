// Package redis implementa kvstore.KV sobre Redis (go-redis v8).
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"github.com/jhoicas/comanda-eventos/internal/infrastructure/kvstore"
	"github.com/jhoicas/comanda-eventos/pkg/config"
)

var _ kvstore.KV = (*KV)(nil)

// KV adaptador clave-valor. Todas las claves llevan el prefijo configurado para
// poder compartir la instancia de Redis con otros servicios.
type KV struct {
	client *goredis.Client
	prefix string
}

// NewKV crea el cliente y verifica la conexión con PING.
func NewKV(ctx context.Context, cfg config.RedisConfig) (*KV, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &KV{client: client, prefix: cfg.KeyPrefix}, nil
}

func (r *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, true, nil
}

func (r *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// SetMany escribe todas las claves dentro de MULTI/EXEC.
func (r *KV) SetMany(ctx context.Context, values map[string][]byte) error {
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, r.prefix+k, v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis multi set: %w", err)
	}
	return nil
}

// Close libera las conexiones del pool.
func (r *KV) Close() error {
	return r.client.Close()
}
