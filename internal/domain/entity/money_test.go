package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

func TestProductJSON_PrecioComoNumero(t *testing.T) {
	raw, err := json.Marshal(entity.Product{ID: "1", Name: "Té", Price: decimal.RequireFromString("900.5"), Category: "Bebidas"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"Té","price":900.5,"category":"Bebidas"}`, string(raw))
}

func TestOrderJSON_TotalComoNumero(t *testing.T) {
	raw, err := json.Marshal(entity.Order{ID: "o-1", Total: decimal.NewFromInt(17000), Items: []entity.CartItem{}})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total":17000`)
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entity.OrderStatusPending.Valid())
	assert.True(t, entity.OrderStatusDelivered.Valid())
	assert.False(t, entity.OrderStatus("cancelled").Valid())
	assert.False(t, entity.OrderStatus("").Valid())
}
