package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// OrderRepo хранит оформленные заказы и их строки в PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create сохраняет заказ вместе со строками в транзакции из контекста.
// Номер вида ORD-<год>-<порядковый id> присваивается после вставки,
// когда известен id записи.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (session_id, status, subtotal, shipping, tax, total, created_at)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5::numeric, $6::numeric, $7)
		RETURNING id, created_at;
	`

	created := *order
	if err := tx.QueryRow(ctx, query,
		order.SessionID,
		order.Status,
		order.Subtotal.String(),
		order.Shipping.String(),
		order.Tax.String(),
		order.Total.String(),
		order.CreatedAt,
	).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: failed to insert order: %w", whereami.WhereAmI(), err)
	}

	created.Number = fmt.Sprintf("ORD-%d-%03d", created.CreatedAt.Year(), created.ID)
	if _, err := tx.Exec(ctx, `UPDATE orders SET number = $1 WHERE id = $2;`, created.Number, created.ID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, name, price, quantity, image)
		VALUES ($1, $2, $3, $4::numeric, $5, $6);
	`

	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, itemQuery,
			created.ID, item.ProductID, item.Name, item.Price.String(), item.Quantity, item.Image,
		); err != nil {
			return nil, fmt.Errorf("%s: failed to insert order item: %w", whereami.WhereAmI(), err)
		}
	}

	return &created, nil
}

// ListBySession возвращает заказы сессии со строками, новые первыми.
func (o *OrderRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	query := `
		SELECT
			id, number, session_id, status,
			subtotal::text, shipping::text, tax::text, total::text,
			created_at
		FROM orders
		WHERE session_id = $1
		ORDER BY created_at DESC, id DESC;
	`

	rows, err := o.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var order domain.Order
		var subtotal, shipping, tax, total string

		if err := rows.Scan(
			&order.ID, &order.Number, &order.SessionID, &order.Status,
			&subtotal, &shipping, &tax, &total,
			&order.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if order.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if order.Shipping, err = decimal.NewFromString(shipping); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if order.Tax, err = decimal.NewFromString(tax); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if order.Total, err = decimal.NewFromString(total); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		order.Items = make([]domain.OrderItem, 0)
		index[order.ID] = len(orders)
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := o.attachItems(ctx, sessionID, orders, index); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return orders, nil
}

// attachItems дочитывает строки заказов сессии и раскладывает их по заказам.
func (o *OrderRepo) attachItems(ctx context.Context, sessionID string, orders []domain.Order, index map[int64]int) error {
	query := `
		SELECT i.order_id, i.product_id, i.name, i.price::text, i.quantity, i.image
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.session_id = $1
		ORDER BY i.id;
	`

	rows, err := o.pool.Query(ctx, query, sessionID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var item domain.OrderItem
		var price string

		if err := rows.Scan(&orderID, &item.ProductID, &item.Name, &price, &item.Quantity, &item.Image); err != nil {
			return err
		}

		if item.Price, err = decimal.NewFromString(price); err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
