package services

import (
	"context"
	"fmt"
	"time"

	"github.com/adreenastore/pos_backend/internal/apperrors"
	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/models"
)

// reportingService computes the dashboard aggregates.
type reportingService struct {
	reportingRepo ports.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo ports.ReportingRepository) ports.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ ports.ReportingService = (*reportingService)(nil)

// GetMonthlySummary returns total sales, total profit and the transaction
// count for one calendar month. A month without sales yields zero sums.
func (s *reportingService) GetMonthlySummary(ctx context.Context, year int, month time.Month) (*models.MonthlySummary, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	summary, err := s.reportingRepo.GetMonthlySummary(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary for %d-%02d: %w", year, month, err)
	}
	return summary, nil
}
