package admin

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) gatherStats(ctx context.Context) (*StatsResponse, error) {
	stats := &StatsResponse{}

	countsQuery := `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM orders),
		(SELECT COUNT(*) FROM bookings),
		(SELECT COUNT(*) FROM adoptions),
		(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = 'delivered'),
		(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
		(SELECT COUNT(*) FROM bookings WHERE status = 'pending')`

	err := s.db.QueryRowContext(ctx, countsQuery).Scan(
		&stats.TotalUsers,
		&stats.TotalOrders,
		&stats.TotalBookings,
		&stats.TotalAdoptions,
		&stats.TotalRevenue,
		&stats.PendingOrders,
		&stats.PendingBookings,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to gather counts in admin store: %w",
			err,
		)
	}

	recentOrders, err := s.recentOrders(ctx)
	if err != nil {
		return nil, err
	}
	stats.RecentOrders = recentOrders

	recentBookings, err := s.recentBookings(ctx)
	if err != nil {
		return nil, err
	}
	stats.RecentBookings = recentBookings

	return stats, nil
}

func (s *Store) recentOrders(ctx context.Context) ([]RecentOrder, error) {
	query := `SELECT o.order_number, u.name, o.total_amount, o.status
		FROM orders o
		JOIN users u ON u.user_id = o.user_id
		ORDER BY o.created_at DESC
		LIMIT 5`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get recent orders in admin store: %w",
			err,
		)
	}
	defer rows.Close()

	orders := []RecentOrder{}
	for rows.Next() {
		var o RecentOrder
		err := rows.Scan(
			&o.OrderNumber,
			&o.UserName,
			&o.TotalAmount,
			&o.Status,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan recent order in admin store: %w",
				err,
			)
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (s *Store) recentBookings(ctx context.Context) ([]RecentBooking, error) {
	query := `SELECT b.service_id, u.name, b.booking_date, b.status
		FROM bookings b
		JOIN users u ON u.user_id = b.user_id
		ORDER BY b.created_at DESC
		LIMIT 5`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get recent bookings in admin store: %w",
			err,
		)
	}
	defer rows.Close()

	bookings := []RecentBooking{}
	for rows.Next() {
		var b RecentBooking
		err := rows.Scan(
			&b.ServiceID,
			&b.UserName,
			&b.BookingDate,
			&b.Status,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan recent booking in admin store: %w",
				err,
			)
		}

		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
