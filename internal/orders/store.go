package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Store encapsulates persistence of checkout orders.
type Store interface {
	CreateOrder(ctx context.Context, order NewOrder) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

// querier is the subset of *pgx.Conn the store uses.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

type connectFn func(ctx context.Context, dsn string) (querier, error)

// PostgresStore talks to the orders table. Each call opens its own connection
// and closes it before returning; there is no pool and no state between
// invocations.
type PostgresStore struct {
	dsn     string
	logger  *slog.Logger
	connect connectFn
}

// NewPostgresStore creates a store for the given DSN. The DSN is not checked
// here; a bad one fails on the first call.
func NewPostgresStore(dsn string, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{
		dsn:    dsn,
		logger: logger,
		connect: func(ctx context.Context, dsn string) (querier, error) {
			return pgx.Connect(ctx, dsn)
		},
	}
}

// release closes the per-call connection on every exit path.
func (s *PostgresStore) release(ctx context.Context, conn querier) {
	if err := conn.Close(ctx); err != nil {
		s.logger.Warn("close connection failed", "error", err)
	}
}

// CreateOrder inserts a single order row with payment_status = pending and
// returns the generated identifier.
func (s *PostgresStore) CreateOrder(ctx context.Context, order NewOrder) (int64, error) {
	conn, err := s.connect(ctx, s.dsn)
	if err != nil {
		return 0, fmt.Errorf("connect db: %w", err)
	}
	defer s.release(ctx, conn)

	const query = `INSERT INTO orders (
                       order_number, customer_name, customer_email, customer_phone,
                       delivery_address, delivery_method, payment_method,
                       payment_status, total_amount, items, user_id
                   ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                   RETURNING id`

	var id int64
	err = conn.QueryRow(ctx, query,
		order.OrderNumber, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.DeliveryAddress, order.DeliveryMethod, order.PaymentMethod,
		PaymentStatusPending, order.TotalAmount, order.ItemsJSON, order.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// ListByUser returns all orders of a user, newest first.
func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	conn, err := s.connect(ctx, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	defer s.release(ctx, conn)

	const query = `SELECT id, order_number, customer_name, customer_email,
                          delivery_method, payment_method, payment_status,
                          total_amount, items, created_at
                   FROM orders
                   WHERE user_id = $1
                   ORDER BY created_at DESC`

	rows, err := conn.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var result []Order
	for rows.Next() {
		var (
			o        Order
			itemsRaw []byte
		)
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail,
			&o.DeliveryMethod, &o.PaymentMethod, &o.PaymentStatus,
			&o.TotalAmount, &itemsRaw, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// EnsureSchema creates the orders table if it does not exist yet. Used by the
// local dev server; deployed functions expect the table to be provisioned.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	conn, err := s.connect(ctx, s.dsn)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer s.release(ctx, conn)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_number TEXT UNIQUE NOT NULL,
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            customer_phone TEXT NOT NULL,
            delivery_address TEXT NOT NULL DEFAULT '',
            delivery_method TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            payment_status TEXT NOT NULL DEFAULT 'pending',
            total_amount NUMERIC(10, 2) NOT NULL DEFAULT 0,
            items JSONB NOT NULL,
            user_id TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
