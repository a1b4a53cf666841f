package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/thyeshengleng/collection-form/logger"
	"github.com/thyeshengleng/collection-form/models"
	"github.com/thyeshengleng/collection-form/repositories"
)

// DebtorLimit caps the number of debtors returned by the API
const DebtorLimit = 1000

// DebtorService interface defines debtor lookups
type DebtorService interface {
	GetDebtors(ctx context.Context) ([]models.Debtor, error)
}

type debtorService struct {
	debtorRepo repositories.DebtorRepository
}

// NewDebtorService creates a new debtor service
func NewDebtorService(debtorRepo repositories.DebtorRepository) DebtorService {
	return &debtorService{debtorRepo: debtorRepo}
}

// GetDebtors retrieves the first DebtorLimit debtors ordered by company name
func (s *debtorService) GetDebtors(ctx context.Context) ([]models.Debtor, error) {
	debtors, err := s.debtorRepo.GetTop(ctx, DebtorLimit)
	if err != nil {
		logger.Log.Error("failed to fetch debtors", zap.Error(err))
		return nil, err
	}
	return debtors, nil
}
