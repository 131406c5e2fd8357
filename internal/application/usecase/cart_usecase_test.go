package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
	"github.com/jhoicas/comanda-eventos/internal/domain"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

func TestCart_AgregarAjustarNota(t *testing.T) {
	f := newFixture(t)

	_, err := f.cart.Add(burger.ID)
	require.NoError(t, err)
	_, err = f.cart.Add(burger.ID)
	require.NoError(t, err)
	resp := f.cart.SetNote(burger.ID, "sin cebolla")

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, "sin cebolla", resp.Items[0].Note)
	assert.True(t, decimal.NewFromInt(17000).Equal(resp.Total))

	resp = f.cart.Adjust(burger.ID, -2)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
}

func TestCart_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.cart.Add("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.state.Cart().Len())
}

type fakeTicketGenerator struct {
	gotRestaurant string
	gotOrderID    string
	err           error
}

func (g *fakeTicketGenerator) GenerateTicketPDF(_ context.Context, o *entity.Order, restaurant string) ([]byte, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.gotRestaurant = restaurant
	g.gotOrderID = o.ID
	return []byte("%PDF-1.3"), nil
}

func TestTicketDownload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.state.Cart().Add(soda)
	order, err := f.orders.Checkout(ctx, dto.CheckoutRequest{})
	require.NoError(t, err)

	gen := &fakeTicketGenerator{}
	tickets := usecase.NewTicketUseCase(f.orders, f.state, gen)
	pdf, name, err := tickets.Download(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, "%PDF-1.3", string(pdf))
	assert.Equal(t, "ticket_"+order.ID[len(order.ID)-8:]+".pdf", name)
	assert.Equal(t, "La Parrilla", gen.gotRestaurant)
	assert.Equal(t, order.ID, gen.gotOrderID)
}

func TestTicketDownload_Errores(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("fuente no encontrada")
	tickets := usecase.NewTicketUseCase(f.orders, f.state, &fakeTicketGenerator{err: boom})

	_, _, err := tickets.Download(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.state.Cart().Add(soda)
	order, err := f.orders.Checkout(context.Background(), dto.CheckoutRequest{})
	require.NoError(t, err)
	_, _, err = tickets.Download(context.Background(), order.ID)
	assert.ErrorIs(t, err, boom)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", usecase.ShortID("abc"))
	assert.Equal(t, "12345678", usecase.ShortID("0000-12345678"))
}
