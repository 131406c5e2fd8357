package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
	"github.com/jhoicas/comanda-eventos/pkg/logger"
)

// Service respaldo y restauración del estado completo.
type Service struct {
	state *session.State
	store repository.Store
	log   *logger.Logger
	now   func() time.Time
}

// NewService construye el servicio.
func NewService(state *session.State, store repository.Store, log *logger.Logger) *Service {
	return &Service{state: state, store: store, log: log.Named("backup"), now: time.Now}
}

// Export arma el documento con catálogo y configuración vigentes y todas las órdenes
// del store. Devuelve también el nombre de archivo sugerido.
func (s *Service) Export(ctx context.Context) (*Document, string, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("backup: listar órdenes: %w", err)
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	now := s.now()
	settings := s.state.Settings()
	doc := &Document{
		Products:       s.state.Products(),
		Categories:     s.state.Categories(),
		Orders:         orders,
		RestaurantName: settings.RestaurantName,
		EventType:      settings.EventType,
		ExportDate:     now.UTC().Format(time.RFC3339Nano),
	}
	if doc.Products == nil {
		doc.Products = []entity.Product{}
	}
	if doc.Categories == nil {
		doc.Categories = []entity.Category{}
	}
	return doc, FileName(now), nil
}

// Preview valida el archivo y resume lo que se restauraría, sin aplicar nada.
func (s *Service) Preview(raw []byte, fileName string) (*dto.BackupPreviewDTO, *Document, error) {
	parsed, err := Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	doc := parsed.Resolve(s.state.Settings())
	return &dto.BackupPreviewDTO{
		FileName:       fileName,
		Products:       len(doc.Products),
		Categories:     len(doc.Categories),
		Orders:         len(doc.Orders),
		RestaurantName: doc.RestaurantName,
		EventType:      doc.EventType,
		ExportDate:     doc.ExportDate,
	}, doc, nil
}

// Apply reemplaza todo el estado por el del documento:
//  1. persiste el snapshot completo en el store (atómico),
//  2. refleja catálogo, órdenes y configuración en memoria,
//  3. vacía el carrito y descarta cualquier edición.
//
// Si el paso 1 falla no se modifica nada en memoria.
func (s *Service) Apply(ctx context.Context, doc *Document) error {
	if err := s.store.Restore(ctx, doc.Snapshot()); err != nil {
		s.log.Error().Err(err).Msg("restaurar respaldo")
		return fmt.Errorf("backup: restaurar: %w", err)
	}

	s.state.SetProducts(doc.Products)
	s.state.SetCategories(doc.Categories)
	s.state.SetOrders(session.PendingOnly(doc.Orders))
	s.state.SetSettings(entity.Settings{RestaurantName: doc.RestaurantName, EventType: doc.EventType})

	s.state.Cart().Clear()
	s.state.SetEditingID("")

	s.log.Info().
		Int("products", len(doc.Products)).
		Int("categories", len(doc.Categories)).
		Int("orders", len(doc.Orders)).
		Msg("base de datos restaurada")
	return nil
}

// Restore valida el archivo y lo aplica. Un archivo inválido no toca ningún estado.
func (s *Service) Restore(ctx context.Context, raw []byte, fileName string) (*dto.BackupPreviewDTO, error) {
	preview, doc, err := s.Preview(raw, fileName)
	if err != nil {
		return nil, err
	}
	if err := s.Apply(ctx, doc); err != nil {
		return nil, err
	}
	return preview, nil
}
