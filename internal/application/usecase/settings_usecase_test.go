package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/domain"
)

func TestSettingsUpdate_PersisteDeInmediato(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.settings.Update(ctx, "  El Fogón ", "Festival")
	require.NoError(t, err)
	assert.Equal(t, "El Fogón", s.RestaurantName)
	assert.Equal(t, "Festival", s.EventType)
	assert.Equal(t, s, f.settings.Get())

	stored, found, err := f.store.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, s, stored)
}

func TestSettingsUpdate_Vacio(t *testing.T) {
	f := newFixture(t)

	_, err := f.settings.Update(context.Background(), "", "Festival")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "La Parrilla", f.settings.Get().RestaurantName)
}

func TestSetView(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.settings.SetView(session.ViewHistory))
	assert.Equal(t, session.ViewHistory, f.settings.View())

	assert.ErrorIs(t, f.settings.SetView("caja"), domain.ErrInvalidInput)
	assert.Equal(t, session.ViewHistory, f.settings.View())
}
