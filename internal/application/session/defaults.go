package session

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

// Defaults valores con los que arranca un almacén vacío.
type Defaults struct {
	Settings   entity.Settings
	Products   []entity.Product
	Categories []entity.Category
}

// DefaultCatalog catálogo de ejemplo del primer arranque.
func DefaultCatalog(settings entity.Settings) Defaults {
	return Defaults{
		Settings:   settings,
		Categories: []entity.Category{"Comida", "Bebidas", "Postres"},
		Products: []entity.Product{
			{ID: "1", Name: "Hamburguesa Clásica", Price: decimal.NewFromInt(8500), Category: "Comida"},
			{ID: "2", Name: "Papas Fritas", Price: decimal.NewFromInt(3500), Category: "Comida"},
			{ID: "3", Name: "Choripán", Price: decimal.NewFromInt(6000), Category: "Comida"},
			{ID: "4", Name: "Gaseosa", Price: decimal.NewFromInt(2500), Category: "Bebidas"},
			{ID: "5", Name: "Agua Mineral", Price: decimal.NewFromInt(2000), Category: "Bebidas"},
			{ID: "6", Name: "Cerveza", Price: decimal.NewFromInt(4500), Category: "Bebidas"},
			{ID: "7", Name: "Brownie", Price: decimal.NewFromInt(3000), Category: "Postres"},
		},
	}
}
