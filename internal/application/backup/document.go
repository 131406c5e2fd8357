// Package backup exporta e importa el estado completo del POS como un documento
// JSON portable. La importación reemplaza todo; nunca mezcla.
package backup

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comanda-eventos/internal/domain"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

const fileNameLayout = "comanda_backup_2006-01-02.json"

// Document respaldo completo.
type Document struct {
	Products       []entity.Product  `json:"products"`
	Categories     []entity.Category `json:"categories"`
	Orders         []entity.Order    `json:"orders"`
	RestaurantName string            `json:"restaurantName"`
	EventType      string            `json:"eventType"`
	ExportDate     string            `json:"exportDate"`
}

// Snapshot convierte el documento en la unidad de restauración del store.
func (d *Document) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		Products:   d.Products,
		Categories: d.Categories,
		Orders:     d.Orders,
		Settings:   entity.Settings{RestaurantName: d.RestaurantName, EventType: d.EventType},
	}
}

// FileName nombre sugerido para el archivo exportado en la fecha dada.
func FileName(t time.Time) string {
	return t.Format(fileNameLayout)
}

// Encode serializa el documento con sangría de dos espacios.
func Encode(doc *Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup: serializar: %w", err)
	}
	return b, nil
}

// Parsed documento importado tal como vino: cada campo puede faltar.
type Parsed struct {
	Products       *[]entity.Product  `json:"products"`
	Categories     *[]entity.Category `json:"categories"`
	Orders         *[]entity.Order    `json:"orders"`
	RestaurantName *string            `json:"restaurantName"`
	EventType      *string            `json:"eventType"`
	ExportDate     *string            `json:"exportDate"`
}

// Parse valida el respaldo: JSON válido con products y categories, y contenido que
// cualquier store acepta (IDs únicos, precios > 0, pagos y estados conocidos).
// Cualquier otro campo es opcional. No toca ningún estado.
func Parse(raw []byte) (*Parsed, error) {
	var p Parsed
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}
	if p.Products == nil || p.Categories == nil {
		return nil, domain.ErrInvalidBackup
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}
	return &p, nil
}

func (p *Parsed) validate() error {
	for _, c := range *p.Categories {
		if strings.TrimSpace(string(c)) == "" {
			return fmt.Errorf("categoría vacía")
		}
	}

	productIDs := make(map[string]struct{}, len(*p.Products))
	for _, pr := range *p.Products {
		if strings.TrimSpace(pr.ID) == "" {
			return fmt.Errorf("producto sin id")
		}
		if _, dup := productIDs[pr.ID]; dup {
			return fmt.Errorf("producto %s repetido", pr.ID)
		}
		productIDs[pr.ID] = struct{}{}
		if !pr.Price.GreaterThan(decimal.Zero) {
			return fmt.Errorf("producto %s: precio %s", pr.ID, pr.Price)
		}
	}

	if p.Orders == nil {
		return nil
	}
	orderIDs := make(map[string]struct{}, len(*p.Orders))
	for _, o := range *p.Orders {
		if strings.TrimSpace(o.ID) == "" {
			return fmt.Errorf("orden sin id")
		}
		if _, dup := orderIDs[o.ID]; dup {
			return fmt.Errorf("orden %s repetida", o.ID)
		}
		orderIDs[o.ID] = struct{}{}
		if !o.Payment.Valid() {
			return fmt.Errorf("orden %s: medio de pago %q", o.ID, o.Payment)
		}
		if !o.Status.Valid() {
			return fmt.Errorf("orden %s: estado %q", o.ID, o.Status)
		}
		for _, it := range o.Items {
			if it.Quantity <= 0 {
				return fmt.Errorf("orden %s: cantidad %d de %s", o.ID, it.Quantity, it.ID)
			}
		}
	}
	return nil
}

// Resolve completa los campos ausentes: órdenes vacías y la configuración vigente
// para nombre del local y tipo de evento. Las categorías repetidas se descartan
// conservando la primera aparición.
func (p *Parsed) Resolve(current entity.Settings) *Document {
	doc := &Document{
		Products:       append([]entity.Product{}, *p.Products...),
		Categories:     uniqueCategories(*p.Categories),
		Orders:         []entity.Order{},
		RestaurantName: current.RestaurantName,
		EventType:      current.EventType,
	}
	if p.Orders != nil {
		doc.Orders = append(doc.Orders, *p.Orders...)
	}
	if p.RestaurantName != nil && *p.RestaurantName != "" {
		doc.RestaurantName = *p.RestaurantName
	}
	if p.EventType != nil && *p.EventType != "" {
		doc.EventType = *p.EventType
	}
	if p.ExportDate != nil {
		doc.ExportDate = *p.ExportDate
	}
	return doc
}

func uniqueCategories(in []entity.Category) []entity.Category {
	out := make([]entity.Category, 0, len(in))
	seen := make(map[entity.Category]struct{}, len(in))
	for _, c := range in {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
