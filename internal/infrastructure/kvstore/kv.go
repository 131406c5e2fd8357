// Package kvstore implementa repository.Store sobre un almacén clave-valor,
// guardando cada colección como un documento JSON bajo una clave fija
// (mismo esquema que el almacenamiento local de la versión web).
package kvstore

import (
	"context"
	"sync"
)

// KV puerto mínimo clave-valor. SetMany debe ser atómico: o se escriben todas
// las claves o ninguna.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
}

var _ KV = (*MemoryKV)(nil)

// MemoryKV almacén en memoria del proceso (tests y STORE_DRIVER=memory).
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV construye un almacén vacío.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) SetMany(_ context.Context, values map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.data[k] = append([]byte(nil), v...)
	}
	return nil
}
