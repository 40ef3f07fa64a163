package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, subject, message, is_read, created_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.IsRead, msg.CreatedAt,
	).Scan(&msg.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return apperror.BadRequest("Message violates a storage constraint")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *contactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	query := `SELECT id, name, email, subject, message, is_read, created_at
              FROM contact_messages WHERE id = $1`
	var msg domain.ContactMessage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.IsRead, &msg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Message not found")
		}
		return nil, apperror.Internal(err)
	}
	return &msg, nil
}

func (r *contactRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.ContactMessage, int64, error) {
	query := `SELECT id, name, email, subject, message, is_read, created_at
              FROM contact_messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.IsRead, &msg.CreatedAt); err != nil {
			return nil, 0, apperror.Internal(err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	return messages, total, nil
}

func (r *contactRepo) MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	query := `UPDATE contact_messages SET is_read = TRUE WHERE id = $1
              RETURNING id, name, email, subject, message, is_read, created_at`
	var msg domain.ContactMessage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.IsRead, &msg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Message not found")
		}
		return nil, apperror.Internal(err)
	}
	return &msg, nil
}

func (r *contactRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Message not found")
	}
	return nil
}
