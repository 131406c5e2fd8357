package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/report"
	"github.com/jhoicas/comanda-eventos/internal/domain"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
)

const dayLayout = "2006-01-02"

// HistoryUseCase historial de ventas y KPIs. Siempre lee del store, así que
// refleja las ediciones apenas se confirman.
type HistoryUseCase struct {
	store repository.OrderStore
	loc   *time.Location
}

// NewHistoryUseCase construye el caso de uso. loc define el día calendario (nil = Local).
func NewHistoryUseCase(store repository.OrderStore, loc *time.Location) *HistoryUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &HistoryUseCase{store: store, loc: loc}
}

// ParseDay interpreta "YYYY-MM-DD" en la zona horaria del local.
func (uc *HistoryUseCase) ParseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(dayLayout, s, uc.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
	}
	return day, nil
}

// Day órdenes creadas en el día indicado con sus KPIs.
func (uc *HistoryUseCase) Day(ctx context.Context, day time.Time) (*dto.HistoryResponse, error) {
	orders, err := uc.store.ListOrdersByDay(ctx, day.In(uc.loc))
	if err != nil {
		return nil, fmt.Errorf("history: órdenes del día: %w", err)
	}
	resp := build(orders)
	resp.Date = day.In(uc.loc).Format(dayLayout)
	return resp, nil
}

// All historial completo.
func (uc *HistoryUseCase) All(ctx context.Context) (*dto.HistoryResponse, error) {
	orders, err := uc.store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("history: órdenes: %w", err)
	}
	return build(orders), nil
}

func build(orders []entity.Order) *dto.HistoryResponse {
	if orders == nil {
		orders = []entity.Order{}
	}
	report.SortForDisplay(orders)
	s := report.Summarize(orders)
	return &dto.HistoryResponse{
		Orders: orders,
		Summary: dto.SalesSummaryDTO{
			TotalRevenue:   s.TotalRevenue,
			Count:          s.Count,
			DeliveredCount: s.DeliveredCount,
			DeliveredRatio: s.DeliveredRatio,
		},
	}
}
