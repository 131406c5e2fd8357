// Package report agrega KPIs de solo lectura sobre un conjunto de órdenes.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

// Summary totales del conjunto de órdenes en vista.
type Summary struct {
	TotalRevenue   decimal.Decimal
	Count          int
	DeliveredCount int
	DeliveredRatio float64
}

// Summarize suma los totales guardados en cada orden (no recalcula ítems).
// DeliveredRatio es 0 cuando no hay órdenes.
func Summarize(orders []entity.Order) Summary {
	s := Summary{TotalRevenue: decimal.Zero, Count: len(orders)}
	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(o.Total)
		if o.Status == entity.OrderStatusDelivered {
			s.DeliveredCount++
		}
	}
	if s.Count > 0 {
		s.DeliveredRatio = float64(s.DeliveredCount) / float64(s.Count)
	}
	return s
}

// SortForDisplay ordena en sitio: pendientes antes que entregadas y, dentro de cada
// grupo, la más nueva primero.
func SortForDisplay(orders []entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		pi, pj := orders[i].IsPending(), orders[j].IsPending()
		if pi != pj {
			return pi
		}
		return orders[i].Date.After(orders[j].Date)
	})
}
