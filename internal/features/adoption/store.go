package adoption

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

func (s *Store) createOne(ctx context.Context, newAdoption *Adoption) error {
	query := `INSERT INTO adoptions(adoption_id, user_id, pet_id, address, pet_experience, reason, status)
		VALUES($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		newAdoption.AdoptionID,
		newAdoption.UserID,
		newAdoption.PetID,
		newAdoption.Address,
		newAdoption.PetExperience,
		newAdoption.Reason,
		newAdoption.Status,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to insert new adoption in adoption store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) findAll(ctx context.Context, status AdoptionStatus) ([]*Adoption, error) {
	query := `SELECT a.adoption_id, a.user_id, u.name, u.email, a.pet_id, a.address, a.pet_experience, a.reason, a.status, a.created_at
		FROM adoptions a
		JOIN users u ON u.user_id = a.user_id`

	queryParams := []any{}
	if status != "" {
		query += ` WHERE a.status = $1`
		queryParams = append(queryParams, status)
	}

	query += ` ORDER BY a.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, queryParams...)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get adoptions from adoption store: %w",
			err,
		)
	}
	defer rows.Close()

	var adoptions []*Adoption
	for rows.Next() {
		var a Adoption
		err := rows.Scan(
			&a.AdoptionID,
			&a.UserID,
			&a.UserName,
			&a.UserEmail,
			&a.PetID,
			&a.Address,
			&a.PetExperience,
			&a.Reason,
			&a.Status,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan adoption from adoption store: %w",
				err,
			)
		}

		adoptions = append(adoptions, &a)
	}

	return adoptions, rows.Err()
}

func (s *Store) findByID(ctx context.Context, adoptionID uuid.UUID) (*Adoption, error) {
	query := `SELECT adoption_id, user_id, pet_id, address, pet_experience, reason, status, created_at
		FROM adoptions WHERE adoption_id = $1`

	var a Adoption
	err := s.db.QueryRowContext(ctx, query, adoptionID).Scan(
		&a.AdoptionID,
		&a.UserID,
		&a.PetID,
		&a.Address,
		&a.PetExperience,
		&a.Reason,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan adoption from adoption store: %w",
			err,
		)
	}

	return &a, nil
}

func (s *Store) updateStatus(ctx context.Context, adoptionID uuid.UUID, status AdoptionStatus) error {
	query := `UPDATE adoptions SET status = $1 WHERE adoption_id = $2`

	result, err := s.db.ExecContext(
		ctx,
		query,
		status,
		adoptionID,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to update adoption status in adoption store: %w",
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
