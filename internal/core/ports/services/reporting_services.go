package services

import (
	"context"
	"time"

	"github.com/glsvc/ledger-backend/internal/core/domain"
)

// ReportingService builds the aggregate reports over a tenant's ledger.
type ReportingService interface {
	TrialBalance(ctx context.Context, tenantID string, from, to time.Time) (*domain.TrialBalanceReport, error)
	TrialBalanceCSV(ctx context.Context, tenantID string, from, to time.Time) ([]byte, error)
	BalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheetReport, error)
	ProfitAndLoss(ctx context.Context, tenantID string, from, to time.Time, includeAll bool) (*domain.ProfitAndLossReport, error)
}
