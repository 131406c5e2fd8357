package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", pgErr)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
	assert.False(t, isUniqueViolation(nil))
}

func TestItemRows_ConservaPosicion(t *testing.T) {
	p := func(id string) entity.Product {
		return entity.Product{ID: id, Name: id, Price: decimal.NewFromInt(10), Category: "C"}
	}
	orders := []entity.Order{
		{ID: "a", Date: time.Now(), Items: []entity.CartItem{
			{Product: p("x"), Quantity: 2, Note: "sin sal"},
			{Product: p("y"), Quantity: 1},
		}},
		{ID: "b", Items: nil},
		{ID: "c", Items: []entity.CartItem{{Product: p("z"), Quantity: 3}}},
	}

	rows := itemRows(orders)

	require.Len(t, rows, 3)
	require.Len(t, rows[0], len(itemColumns))
	assert.Equal(t, []any{"a", 0, "x", "x", decimal.NewFromInt(10), "C", 2, "sin sal"}, rows[0])
	assert.Equal(t, "a", rows[1][0])
	assert.Equal(t, 1, rows[1][1])
	assert.Equal(t, "c", rows[2][0])
	assert.Equal(t, 0, rows[2][1])
}
