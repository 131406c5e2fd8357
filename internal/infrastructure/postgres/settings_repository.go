package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

const (
	settingRestaurantName = "restaurant_name"
	settingEventType      = "event_type"
)

// SettingsRepo configuración general como pares clave-valor.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve found=false si la tabla está vacía.
func (r *SettingsRepo) Get(ctx context.Context) (entity.Settings, bool, error) {
	rows, err := r.q.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return entity.Settings{}, false, fmt.Errorf("get settings: %w", err)
	}
	defer rows.Close()

	var (
		s     entity.Settings
		found bool
	)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return entity.Settings{}, false, fmt.Errorf("scan setting: %w", err)
		}
		found = true
		switch key {
		case settingRestaurantName:
			s.RestaurantName = value
		case settingEventType:
			s.EventType = value
		}
	}
	return s, found, rows.Err()
}

// Save guarda ambos valores (upsert).
func (r *SettingsRepo) Save(ctx context.Context, s entity.Settings) error {
	query := `
		INSERT INTO settings (key, value) VALUES ($1, $2), ($3, $4)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := r.q.Exec(ctx, query,
		settingRestaurantName, s.RestaurantName,
		settingEventType, s.EventType,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Clear borra la configuración (restore).
func (r *SettingsRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM settings`); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}
