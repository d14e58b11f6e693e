package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) createOne(ctx context.Context, messageID uuid.UUID, req *ContactRequest) error {
	query := `INSERT INTO contact_messages(message_id, name, email, phone, subject, message)
		VALUES($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		messageID,
		req.Name,
		req.Email,
		req.Phone,
		req.Subject,
		req.Message,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to insert contact message in contact store: %w",
			err,
		)
	}

	return nil
}
