package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) createOne(ctx context.Context, newOrder *Order) error {
	tx, err := s.db.BeginTx(
		ctx,
		nil,
	)
	if err != nil {
		return err
	}

	orderQuery := `INSERT INTO orders(order_id, order_number, user_id, total_amount, status, shipping_address, phone, notes)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.ExecContext(
		ctx,
		orderQuery,
		newOrder.OrderID,
		newOrder.OrderNumber,
		newOrder.UserID,
		newOrder.TotalAmount,
		newOrder.Status,
		newOrder.ShippingAddress,
		newOrder.Phone,
		newOrder.Notes,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf(
			"failed to insert new order in order store: %w",
			err,
		)
	}

	itemQuery := `INSERT INTO order_items(order_id, product_id, product_name, price, quantity)
		VALUES($1, $2, $3, $4, $5)`

	for _, item := range newOrder.Items {
		_, err = tx.ExecContext(
			ctx,
			itemQuery,
			newOrder.OrderID,
			item.ProductID,
			item.ProductName,
			item.Price,
			item.Quantity,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf(
				"failed to insert order item in order store: %w",
				err,
			)
		}
	}

	return tx.Commit()
}

func (s *Store) findAll(ctx context.Context, status OrderStatus) ([]*Order, error) {
	query := `SELECT o.order_id, o.order_number, o.user_id, u.name, u.email, o.total_amount, o.status, o.shipping_address, o.phone, o.notes, o.created_at
		FROM orders o
		JOIN users u ON u.user_id = o.user_id`

	queryParams := []any{}
	if status != "" {
		query += ` WHERE o.status = $1`
		queryParams = append(queryParams, status)
	}

	query += ` ORDER BY o.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, queryParams...)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get orders from order store: %w",
			err,
		)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		err := rows.Scan(
			&o.OrderID,
			&o.OrderNumber,
			&o.UserID,
			&o.UserName,
			&o.UserEmail,
			&o.TotalAmount,
			&o.Status,
			&o.ShippingAddress,
			&o.Phone,
			&o.Notes,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan order from order store: %w",
				err,
			)
		}

		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

func (s *Store) findByID(ctx context.Context, orderID uuid.UUID) (*Order, error) {
	query := `SELECT order_id, order_number, user_id, total_amount, status, shipping_address, phone, notes, created_at
		FROM orders WHERE order_id = $1`

	var o Order
	err := s.db.QueryRowContext(ctx, query, orderID).Scan(
		&o.OrderID,
		&o.OrderNumber,
		&o.UserID,
		&o.TotalAmount,
		&o.Status,
		&o.ShippingAddress,
		&o.Phone,
		&o.Notes,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan order from order store: %w",
			err,
		)
	}

	return &o, nil
}

func (s *Store) updateStatus(ctx context.Context, orderID uuid.UUID, status OrderStatus) error {
	query := `UPDATE orders SET status = $1 WHERE order_id = $2`

	result, err := s.db.ExecContext(
		ctx,
		query,
		status,
		orderID,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to update order status in order store: %w",
			err,
		)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return servererrors.ErrNotFound
	}

	return nil
}
