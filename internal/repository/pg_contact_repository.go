package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/noievoi/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row. ID, status, and timestamps are
// assigned by the caller (service layer) before this is reached.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, company, phone, subject, message, status, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9)`,
		msg.ID, msg.Name, msg.Email, msg.Company, msg.Phone, msg.Subject, msg.Message, msg.Status, msg.CreatedAt,
	)
	return err
}

// List returns all contact messages, newest first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(company, ''), COALESCE(phone, ''), subject, message, status, created_at
		 FROM contact_messages ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Company, &m.Phone, &m.Subject, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// GetByID は ID でメッセージを取得する
func (r *PgContactRepository) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(company, ''), COALESCE(phone, ''), subject, message, status, created_at
		 FROM contact_messages WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Company, &m.Phone, &m.Subject, &m.Message, &m.Status, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateStatus changes the status of a single message. No other column is
// writable after creation.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a message permanently.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
