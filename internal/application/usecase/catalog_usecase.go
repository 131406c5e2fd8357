package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/domain"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
	"github.com/jhoicas/comanda-eventos/pkg/logger"
)

// CatalogUseCase administra productos y categorías. Cada cambio se persiste primero
// y luego se refleja en el estado en memoria.
type CatalogUseCase struct {
	mu    sync.Mutex // serializa las escrituras del catálogo
	state *session.State
	store repository.CatalogStore
	log   *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(state *session.State, store repository.CatalogStore, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{state: state, store: store, log: log.Named("catalog")}
}

// ListProducts devuelve los productos; category vacía o "Todos" no filtra.
func (uc *CatalogUseCase) ListProducts(category string) []entity.Product {
	products := uc.state.Products()
	if category == "" || category == entity.AllCategories {
		return products
	}
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ListCategories devuelve las categorías en orden de inserción.
func (uc *CatalogUseCase) ListCategories() []entity.Category {
	return uc.state.Categories()
}

// CreateProduct agrega un producto al catálogo.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.ProductRequest) (*entity.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.validateProduct(&in); err != nil {
		return nil, err
	}
	p := entity.Product{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
	}
	products := append(uc.state.Products(), p)
	if err := uc.saveProducts(ctx, products); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct reemplaza nombre, precio y categoría. El ID no cambia.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, in dto.ProductRequest) (*entity.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.validateProduct(&in); err != nil {
		return nil, err
	}
	products := uc.state.Products()
	i := productIndex(products, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	products[i].Name = in.Name
	products[i].Price = in.Price
	products[i].Category = in.Category
	if err := uc.saveProducts(ctx, products); err != nil {
		return nil, err
	}
	p := products[i]
	return &p, nil
}

// DeleteProduct elimina el producto. Las órdenes guardan copias de los ítems,
// así que no se revisan referencias.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products := uc.state.Products()
	i := productIndex(products, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	products = append(products[:i], products[i+1:]...)
	return uc.saveProducts(ctx, products)
}

// CreateCategory agrega una categoría al final. Rechaza duplicados exactos.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, name string) (entity.Category, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" || name == entity.AllCategories {
		return "", domain.ErrInvalidInput
	}
	categories := uc.state.Categories()
	if entity.ContainsCategory(categories, name) {
		return "", domain.ErrDuplicate
	}
	categories = append(categories, name)
	if err := uc.saveCategories(ctx, categories); err != nil {
		return "", err
	}
	return name, nil
}

// DeleteCategory elimina una categoría que ningún producto use.
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, name string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	categories := uc.state.Categories()
	idx := -1
	for i, c := range categories {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	for _, p := range uc.state.Products() {
		if p.Category == name {
			return domain.ErrCategoryInUse
		}
	}
	categories = append(categories[:idx], categories[idx+1:]...)
	return uc.saveCategories(ctx, categories)
}

func (uc *CatalogUseCase) validateProduct(in *dto.ProductRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || !in.Price.IsPositive() || in.Category == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ContainsCategory(uc.state.Categories(), in.Category) {
		return fmt.Errorf("%w: categoría %q inexistente", domain.ErrInvalidInput, in.Category)
	}
	return nil
}

func (uc *CatalogUseCase) saveProducts(ctx context.Context, products []entity.Product) error {
	if err := uc.store.SaveProducts(ctx, products); err != nil {
		uc.log.Error().Err(err).Msg("guardar productos")
		return fmt.Errorf("catalog: guardar productos: %w", err)
	}
	uc.state.SetProducts(products)
	return nil
}

func (uc *CatalogUseCase) saveCategories(ctx context.Context, categories []entity.Category) error {
	if err := uc.store.SaveCategories(ctx, categories); err != nil {
		uc.log.Error().Err(err).Msg("guardar categorías")
		return fmt.Errorf("catalog: guardar categorías: %w", err)
	}
	uc.state.SetCategories(categories)
	return nil
}

func productIndex(products []entity.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
