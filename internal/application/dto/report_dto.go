package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

// SalesSummaryDTO KPIs del historial.
type SalesSummaryDTO struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	Count          int             `json:"count"`
	DeliveredCount int             `json:"delivered_count"`
	DeliveredRatio float64         `json:"delivered_ratio"` // 0 si no hay órdenes
}

// HistoryResponse respuesta de GET /api/history.
type HistoryResponse struct {
	Date    string          `json:"date,omitempty"` // YYYY-MM-DD; vacío = todo el historial
	Orders  []entity.Order  `json:"orders"`
	Summary SalesSummaryDTO `json:"summary"`
}
