package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"
)

const (
	defaultPerPage = 10
	// Ceiling to prevent abuse; larger requests are clamped, not rejected.
	maxPerPage = 100
)

type contactUsecase struct {
	repo     domain.ContactRepository
	validate *validator.Validate
}

func NewContactUsecase(repo domain.ContactRepository, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		validate: validate,
	}
}

// Submit trims and validates a public contact form submission and persists
// it. The stored email is lowercased; length ceilings apply to the trimmed
// values, so an exact-limit field passes.
func (uc *contactUsecase) Submit(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactMessage, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	sub.Subject = strings.TrimSpace(sub.Subject)
	sub.Message = strings.TrimSpace(sub.Message)

	if err := uc.validate.Struct(sub); err != nil {
		return nil, apperror.BadRequest(validation.FirstErrorMessage(err))
	}

	msg := &domain.ContactMessage{
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List pages through messages newest-first. Out-of-range pages yield an
// empty page with correct metadata rather than an error.
func (uc *contactUsecase) List(ctx context.Context, page, perPage int) (*domain.ContactPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	offset := (page - 1) * perPage
	messages, total, err := uc.repo.Fetch(ctx, perPage, offset)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.ContactMessage{}
	}

	pages := (total + int64(perPage) - 1) / int64(perPage)

	return &domain.ContactPage{
		Messages:    messages,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		PerPage:     perPage,
	}, nil
}

func (uc *contactUsecase) Get(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *contactUsecase) MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	return uc.repo.MarkRead(ctx, id)
}

func (uc *contactUsecase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
