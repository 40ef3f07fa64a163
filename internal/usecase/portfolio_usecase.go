package usecase

import (
	"portfolio-backend/internal/domain"
)

type portfolioUsecase struct {
	owner *domain.OwnerProfile
}

// NewPortfolioUsecase serves the owner document loaded from config at
// startup. The document is read-only for the lifetime of the process.
func NewPortfolioUsecase(owner *domain.OwnerProfile) domain.PortfolioUsecase {
	return &portfolioUsecase{owner: owner}
}

func (uc *portfolioUsecase) Owner() *domain.OwnerProfile {
	return uc.owner
}
