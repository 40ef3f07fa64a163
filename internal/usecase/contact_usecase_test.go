package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/validation"
)

// Mock Repositories
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *MockContactRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.ContactMessage, int64, error) {
	args := m.Called(ctx, limit, offset)
	var msgs []domain.ContactMessage
	if args.Get(0) != nil {
		msgs = args.Get(0).([]domain.ContactMessage)
	}
	return msgs, args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepo) MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *MockContactRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newContactUC(repo domain.ContactRepository) domain.ContactUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return usecase.NewContactUsecase(repo, validate)
}

func TestContactSubmitNormalization(t *testing.T) {
	mockRepo := new(MockContactRepo)
	uc := newContactUC(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.ContactMessage")).Return(nil).Run(func(args mock.Arguments) {
		msg := args.Get(1).(*domain.ContactMessage)
		assert.Equal(t, "Ada Lovelace", msg.Name)
		assert.Equal(t, "ada@example.co", msg.Email)
		assert.Equal(t, "Hello", msg.Subject)
		assert.Equal(t, "A note", msg.Message)
		assert.False(t, msg.IsRead)
		assert.False(t, msg.CreatedAt.IsZero())
	})

	msg, err := uc.Submit(ctx, &domain.ContactSubmission{
		Name:    "  Ada Lovelace  ",
		Email:   " ADA@Example.Co ",
		Subject: "Hello",
		Message: " A note ",
	})
	assert.NoError(t, err)
	assert.NotNil(t, msg)
	mockRepo.AssertExpectations(t)
}

func TestContactSubmitValidation(t *testing.T) {
	valid := func() *domain.ContactSubmission {
		return &domain.ContactSubmission{
			Name:    "A",
			Email:   "a@b.co",
			Subject: "S",
			Message: "M",
		}
	}

	cases := []struct {
		name    string
		mutate  func(*domain.ContactSubmission)
		wantErr string
	}{
		{"missing name", func(s *domain.ContactSubmission) { s.Name = "" }, "name is required"},
		{"whitespace name", func(s *domain.ContactSubmission) { s.Name = "   " }, "name is required"},
		{"missing email", func(s *domain.ContactSubmission) { s.Email = "" }, "email is required"},
		{"missing subject", func(s *domain.ContactSubmission) { s.Subject = " \t " }, "subject is required"},
		{"missing message", func(s *domain.ContactSubmission) { s.Message = "" }, "message is required"},
		{"bad email", func(s *domain.ContactSubmission) { s.Email = "not-an-email" }, "Invalid email format"},
		{"email without tld", func(s *domain.ContactSubmission) { s.Email = "a@b" }, "Invalid email format"},
		{"email short tld", func(s *domain.ContactSubmission) { s.Email = "a@b.c" }, "Invalid email format"},
		{"name too long", func(s *domain.ContactSubmission) { s.Name = strings.Repeat("x", 101) }, "Name must be less than 100 characters"},
		{"subject too long", func(s *domain.ContactSubmission) { s.Subject = strings.Repeat("x", 201) }, "Subject must be less than 200 characters"},
		{"message too long", func(s *domain.ContactSubmission) { s.Message = strings.Repeat("x", 2001) }, "Message must be less than 2000 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockContactRepo)
			uc := newContactUC(mockRepo)

			sub := valid()
			tc.mutate(sub)

			_, err := uc.Submit(context.Background(), sub)
			assert.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
			// Nothing must be persisted on a validation failure
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestContactSubmitErrorPrecedence(t *testing.T) {
	cases := []struct {
		name    string
		sub     *domain.ContactSubmission
		wantErr string
	}{
		{
			"missing field wins over bad email",
			&domain.ContactSubmission{Name: "A", Email: "not-an-email", Subject: "S", Message: ""},
			"message is required",
		},
		{
			"bad email wins over length limit",
			&domain.ContactSubmission{Name: strings.Repeat("x", 101), Email: "not-an-email", Subject: "S", Message: "M"},
			"Invalid email format",
		},
		{
			"missing field wins over length limit",
			&domain.ContactSubmission{Name: strings.Repeat("x", 101), Email: "a@b.co", Subject: "", Message: "M"},
			"subject is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockContactRepo)
			uc := newContactUC(mockRepo)

			_, err := uc.Submit(context.Background(), tc.sub)
			assert.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestContactSubmitExactLimits(t *testing.T) {
	mockRepo := new(MockContactRepo)
	uc := newContactUC(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.ContactMessage")).Return(nil)

	_, err := uc.Submit(ctx, &domain.ContactSubmission{
		Name:    strings.Repeat("n", 100),
		Email:   "a@b.co",
		Subject: strings.Repeat("s", 200),
		Message: strings.Repeat("m", 2000),
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestContactSubmitTrimsBeforeLimitCheck(t *testing.T) {
	mockRepo := new(MockContactRepo)
	uc := newContactUC(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.ContactMessage")).Return(nil)

	// 100 chars of content padded with whitespace must still pass
	_, err := uc.Submit(ctx, &domain.ContactSubmission{
		Name:    "  " + strings.Repeat("n", 100) + "  ",
		Email:   "a@b.co",
		Subject: "S",
		Message: "M",
	})
	assert.NoError(t, err)
}

func TestContactListPagination(t *testing.T) {
	ctx := context.Background()

	t.Run("per_page is clamped to 100", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUC(mockRepo)

		mockRepo.On("Fetch", ctx, 100, 0).Return([]domain.ContactMessage{}, int64(250), nil)

		page, err := uc.List(ctx, 1, 500)
		assert.NoError(t, err)
		assert.Equal(t, 100, page.PerPage)
		assert.Equal(t, int64(250), page.Total)
		assert.Equal(t, int64(3), page.Pages)
		mockRepo.AssertExpectations(t)
	})

	t.Run("defaults applied for invalid values", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUC(mockRepo)

		mockRepo.On("Fetch", ctx, 10, 0).Return([]domain.ContactMessage{}, int64(0), nil)

		page, err := uc.List(ctx, -3, 0)
		assert.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 10, page.PerPage)
		assert.Equal(t, int64(0), page.Pages)
	})

	t.Run("out-of-range page yields empty result, not an error", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUC(mockRepo)

		mockRepo.On("Fetch", ctx, 10, 990).Return(nil, int64(5), nil)

		page, err := uc.List(ctx, 100, 10)
		assert.NoError(t, err)
		assert.NotNil(t, page.Messages)
		assert.Len(t, page.Messages, 0)
		assert.Equal(t, 100, page.CurrentPage)
	})
}
