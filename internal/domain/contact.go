package domain

import (
	"context"
	"time"
)

// ContactMessage is one visitor inquiry submitted through the public form.
// Content fields are immutable once stored; only IsRead ever changes.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactSubmission is the public contact form payload. Fields are trimmed
// before validation, so whitespace-only input fails `required` and the
// length ceilings apply to the trimmed value.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,contact_email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

// ContactPage is one page of messages plus offset-pagination metadata.
type ContactPage struct {
	Messages    []ContactMessage `json:"messages"`
	Total       int64            `json:"total"`
	Pages       int64            `json:"pages"`
	CurrentPage int              `json:"current_page"`
	PerPage     int              `json:"per_page"`
}

type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	GetByID(ctx context.Context, id int64) (*ContactMessage, error)
	// Fetch returns messages ordered by creation time descending plus the
	// total row count.
	Fetch(ctx context.Context, limit, offset int) ([]ContactMessage, int64, error)
	MarkRead(ctx context.Context, id int64) (*ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

type ContactUsecase interface {
	Submit(ctx context.Context, sub *ContactSubmission) (*ContactMessage, error)
	List(ctx context.Context, page, perPage int) (*ContactPage, error)
	Get(ctx context.Context, id int64) (*ContactMessage, error)
	MarkRead(ctx context.Context, id int64) (*ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}
