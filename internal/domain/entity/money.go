package entity

import "github.com/shopspring/decimal"

func init() {
	// Precios y totales viajan como números JSON en la API, el almacenamiento
	// clave-valor y los respaldos (mismo formato que la versión web).
	decimal.MarshalJSONWithoutQuotes = true
}
