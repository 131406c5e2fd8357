package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/comanda-eventos/internal/domain"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

const orderColumns = `id, date, client, table_label, payment, status, total`

var itemColumns = []string{"order_id", "position", "product_id", "name", "price", "category", "quantity", "note"}

// OrderRepo cabeceras (orders) e ítems (order_items). Las escrituras de cabecera
// e ítems deben correr en la misma tx (ver TxRunner).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera y luego sus ítems.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Date, o.Client, o.Table, string(o.Payment), string(o.Status), o.Total,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert order %s: %w", o.ID, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertItems(ctx, []entity.Order{*o})
}

// Update sobrescribe total, cliente, mesa y pago y reemplaza los ítems completos.
// Fecha y estado no cambian.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders
		SET total = $2, client = $3, table_label = $4, payment = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, o.ID, o.Total, o.Client, o.Table, string(o.Payment))
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return r.insertItems(ctx, []entity.Order{*o})
}

// UpdateStatus cambia solo el estado.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	orders := []entity.Order{*o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// List todas las órdenes, la más nueva primero.
func (r *OrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY date DESC, id`)
}

// ListBetween órdenes con fecha en [start, end), la más nueva primero.
func (r *OrderRepo) ListBetween(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE date >= $1 AND date < $2
		ORDER BY date DESC, id`
	return r.list(ctx, query, start, end)
}

// Clear borra todas las órdenes e ítems (restore).
func (r *OrderRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `TRUNCATE order_items, orders`); err != nil {
		return fmt.Errorf("truncate orders: %w", err)
	}
	return nil
}

// BulkInsert carga órdenes completas con COPY (restore). Llamar dentro de una tx.
func (r *OrderRepo) BulkInsert(ctx context.Context, orders []entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	rows := make([][]any, len(orders))
	for i, o := range orders {
		rows[i] = []any{o.ID, o.Date, o.Client, o.Table, string(o.Payment), string(o.Status), o.Total}
	}
	_, err := r.q.CopyFrom(ctx, pgx.Identifier{"orders"},
		[]string{"id", "date", "client", "table_label", "payment", "status", "total"}, pgx.CopyFromRows(rows))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("copy orders: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("copy orders: %w", err)
	}
	return r.insertItems(ctx, orders)
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var list []entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, *o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachItems carga los ítems de todas las órdenes en una sola consulta.
func (r *OrderRepo) attachItems(ctx context.Context, orders []entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	query := `
		SELECT order_id, product_id, name, price, category, quantity, note
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	byOrder := make(map[string][]entity.CartItem, len(orders))
	for rows.Next() {
		var (
			orderID string
			it      entity.CartItem
		)
		if err := rows.Scan(&orderID, &it.ID, &it.Name, &it.Price, &it.Category, &it.Quantity, &it.Note); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		byOrder[orderID] = append(byOrder[orderID], it)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return nil
}

func (r *OrderRepo) insertItems(ctx context.Context, orders []entity.Order) error {
	rows := itemRows(orders)
	if len(rows) == 0 {
		return nil
	}
	if _, err := r.q.CopyFrom(ctx, pgx.Identifier{"order_items"}, itemColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("insert order items: %w", err)
	}
	return nil
}

// itemRows filas para COPY en order_items; position conserva el orden del carrito.
func itemRows(orders []entity.Order) [][]any {
	var rows [][]any
	for _, o := range orders {
		for pos, it := range o.Items {
			rows = append(rows, []any{o.ID, pos, it.ID, it.Name, it.Price, it.Category, it.Quantity, it.Note})
		}
	}
	return rows
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o       entity.Order
		payment string
		status  string
	)
	if err := row.Scan(&o.ID, &o.Date, &o.Client, &o.Table, &payment, &status, &o.Total); err != nil {
		return nil, err
	}
	o.Payment = entity.PaymentMethod(payment)
	o.Status = entity.OrderStatus(status)
	return &o, nil
}
