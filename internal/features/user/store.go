package user

import (
	"context"
	"database/sql"
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

// UpsertCustomer inserts a customer record keyed by email, refreshing the
// name and phone on conflict, and returns the row's user id. Checkout,
// booking and adoption all funnel their contact details through here.
func (s *Store) UpsertCustomer(ctx context.Context, email, name, phone string) (uuid.UUID, error) {
	query := `INSERT INTO users(user_id, email, name, phone, role)
		VALUES($1, $2, $3, $4, $5)
		ON CONFLICT(email) DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone
		RETURNING user_id`

	var userID uuid.UUID
	err := s.db.QueryRowContext(
		ctx,
		query,
		uuid.New(),
		email,
		name,
		phone,
		RoleCustomer,
	).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf(
			"failed to upsert customer in user store: %w",
			err,
		)
	}

	return userID, nil
}

func (s *Store) findAll(ctx context.Context) ([]*User, error) {
	query := `SELECT user_id, email, name, phone, avatar_url, role, created_at
		FROM users ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get users from user store: %w",
			err,
		)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var u User
		err := rows.Scan(
			&u.UserID,
			&u.Email,
			&u.Name,
			&u.Phone,
			&u.AvatarURL,
			&u.Role,
			&u.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan user from user store: %w",
				err,
			)
		}

		users = append(users, &u)
	}

	return users, rows.Err()
}

func (s *Store) deleteOne(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM users WHERE user_id = $1`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf(
			"failed to delete user in user store: %w",
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
