package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/domain"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
	"github.com/jhoicas/comanda-eventos/pkg/logger"
)

// SettingsUseCase configuración general (nombre del local y tipo de evento) y
// pantalla activa.
type SettingsUseCase struct {
	state *session.State
	store repository.SettingsStore
	log   *logger.Logger
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(state *session.State, store repository.SettingsStore, log *logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{state: state, store: store, log: log.Named("settings")}
}

func (uc *SettingsUseCase) Get() entity.Settings {
	return uc.state.Settings()
}

// Update guarda de inmediato y luego actualiza el estado.
func (uc *SettingsUseCase) Update(ctx context.Context, restaurantName, eventType string) (entity.Settings, error) {
	s := entity.Settings{
		RestaurantName: strings.TrimSpace(restaurantName),
		EventType:      strings.TrimSpace(eventType),
	}
	if s.RestaurantName == "" || s.EventType == "" {
		return entity.Settings{}, domain.ErrInvalidInput
	}
	if err := uc.store.SaveSettings(ctx, s); err != nil {
		uc.log.Error().Err(err).Msg("guardar configuración")
		return entity.Settings{}, fmt.Errorf("settings: guardar: %w", err)
	}
	uc.state.SetSettings(s)
	return s, nil
}

// View pantalla activa.
func (uc *SettingsUseCase) View() session.View {
	return uc.state.View()
}

// SetView cambia de pantalla.
func (uc *SettingsUseCase) SetView(v session.View) error {
	if !v.Valid() {
		return domain.ErrInvalidInput
	}
	uc.state.SetView(v)
	return nil
}

// PendingCount badge de cocina.
func (uc *SettingsUseCase) PendingCount() int {
	return uc.state.PendingCount()
}
