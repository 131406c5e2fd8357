package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

// CatalogRepo productos y categorías (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Products lista los productos en el orden en que se guardaron.
func (r *CatalogRepo) Products(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, price, category FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ReplaceProducts reemplaza la colección completa. Llamar dentro de una tx.
func (r *CatalogRepo) ReplaceProducts(ctx context.Context, products []entity.Product) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	if len(products) == 0 {
		return nil
	}
	rows := make([][]any, len(products))
	for i, p := range products {
		rows[i] = []any{p.ID, p.Name, p.Price, p.Category, i}
	}
	_, err := r.q.CopyFrom(ctx, pgx.Identifier{"products"},
		[]string{"id", "name", "price", "category", "position"}, pgx.CopyFromRows(rows))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product id repeated: %w", err)
		}
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

// Categories lista las categorías en orden de inserción.
func (r *CatalogRepo) Categories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT name FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []entity.Category
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, name)
	}
	return list, rows.Err()
}

// ReplaceCategories reemplaza la colección completa. Llamar dentro de una tx.
func (r *CatalogRepo) ReplaceCategories(ctx context.Context, categories []entity.Category) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	if len(categories) == 0 {
		return nil
	}
	rows := make([][]any, len(categories))
	for i, c := range categories {
		rows[i] = []any{c, i}
	}
	_, err := r.q.CopyFrom(ctx, pgx.Identifier{"categories"}, []string{"name", "position"}, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("insert categories: %w", err)
	}
	return nil
}
