package usecase

import (
	"context"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type userUsecase struct {
	repo domain.UserRepository
}

func NewUserUsecase(repo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{repo: repo}
}

func (uc *userUsecase) ListActive(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := uc.repo.FetchActive(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, *users[i].Public())
	}
	return public, nil
}

// GetPublic returns the public projection of an active user. Deactivated
// accounts are indistinguishable from absent ones here.
func (uc *userUsecase) GetPublic(ctx context.Context, id int64) (*domain.PublicUser, error) {
	user, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// UpdateProfile mutates first/last name on the caller's own record. Fields
// absent from the request are left untouched.
func (uc *userUsecase) UpdateProfile(ctx context.Context, callerID, id int64, upd *domain.ProfileUpdate) (*domain.User, error) {
	if !domain.CanModify(callerID, id) {
		return nil, apperror.Forbidden("Unauthorized")
	}

	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.FirstName != nil {
		user.FirstName = strings.TrimSpace(*upd.FirstName)
	}
	if upd.LastName != nil {
		user.LastName = strings.TrimSpace(*upd.LastName)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate soft-deletes the caller's own account. The record is kept and
// stays reachable through authenticated paths.
func (uc *userUsecase) Deactivate(ctx context.Context, callerID, id int64) error {
	if !domain.CanModify(callerID, id) {
		return apperror.Forbidden("Unauthorized")
	}
	return uc.repo.Deactivate(ctx, id)
}
