package booking

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

func (s *Store) createOne(ctx context.Context, newBooking *Booking) error {
	query := `INSERT INTO bookings(booking_id, user_id, service_id, pet_name, pet_type, booking_date, booking_time, notes, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		newBooking.BookingID,
		newBooking.UserID,
		newBooking.ServiceID,
		newBooking.PetName,
		newBooking.PetType,
		newBooking.BookingDate,
		newBooking.BookingTime,
		newBooking.Notes,
		newBooking.Status,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to insert new booking in booking store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) findAll(ctx context.Context, status BookingStatus) ([]*Booking, error) {
	query := `SELECT b.booking_id, b.user_id, u.name, u.email, b.service_id, b.pet_name, b.pet_type, b.booking_date, b.booking_time, b.notes, b.status, b.created_at
		FROM bookings b
		JOIN users u ON u.user_id = b.user_id`

	queryParams := []any{}
	if status != "" {
		query += ` WHERE b.status = $1`
		queryParams = append(queryParams, status)
	}

	query += ` ORDER BY b.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, queryParams...)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get bookings from booking store: %w",
			err,
		)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		err := rows.Scan(
			&b.BookingID,
			&b.UserID,
			&b.UserName,
			&b.UserEmail,
			&b.ServiceID,
			&b.PetName,
			&b.PetType,
			&b.BookingDate,
			&b.BookingTime,
			&b.Notes,
			&b.Status,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan booking from booking store: %w",
				err,
			)
		}

		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}

func (s *Store) findByID(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	query := `SELECT booking_id, user_id, service_id, pet_name, pet_type, booking_date, booking_time, notes, status, created_at
		FROM bookings WHERE booking_id = $1`

	var b Booking
	err := s.db.QueryRowContext(ctx, query, bookingID).Scan(
		&b.BookingID,
		&b.UserID,
		&b.ServiceID,
		&b.PetName,
		&b.PetType,
		&b.BookingDate,
		&b.BookingTime,
		&b.Notes,
		&b.Status,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan booking from booking store: %w",
			err,
		)
	}

	return &b, nil
}

func (s *Store) updateStatus(ctx context.Context, bookingID uuid.UUID, status BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE booking_id = $2`

	result, err := s.db.ExecContext(
		ctx,
		query,
		status,
		bookingID,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to update booking status in booking store: %w",
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
