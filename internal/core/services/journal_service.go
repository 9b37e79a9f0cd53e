package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/dto"
	"github.com/glsvc/ledger-backend/internal/utils/accounting"
	"github.com/glsvc/ledger-backend/internal/utils/synthref"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultJournalPageSize = 20
	maxJournalPageSize     = 100
)

// journalService validates and posts balanced journals and serves journal
// drill-down for both storage generations.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.JournalService {
	return &journalService{journalRepo: journalRepo, accountRepo: accountRepo}
}

var _ portssvc.JournalService = (*journalService)(nil)

// PostJournal validates the posting and persists the header plus all lines
// atomically. Lines with both amounts zero are dropped before validation;
// the debit and credit sums must match exactly after rounding, not within a
// tolerance.
func (s *journalService) PostJournal(ctx context.Context, tenantID string, req dto.PostJournalRequest, userID string) (*domain.Journal, error) {
	journalDate, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		return nil, apperrors.FieldErrors{"date": "must be a valid YYYY-MM-DD date"}
	}

	lines, fieldErrs := normalizeLines(req.Lines)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	if len(lines) == 0 {
		return nil, apperrors.FieldErrors{"lines": "at least one line with a nonzero amount is required"}
	}

	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	if !totalDebit.Equal(totalCredit) {
		return nil, apperrors.FieldErrors{
			"lines": fmt.Sprintf("debits (%s) must equal credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		}
	}
	if !totalDebit.IsPositive() {
		return nil, apperrors.FieldErrors{"lines": "journal total must be greater than zero"}
	}

	if err := s.validateAccounts(ctx, tenantID, lines); err != nil {
		return nil, err
	}

	journalType := req.JournalType
	if journalType == "" {
		journalType = domain.DefaultJournalType
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	journal := domain.Journal{
		JournalID:   uuid.NewString(),
		TenantID:    tenantID,
		JournalDate: journalDate,
		JournalType: journalType,
		Memo:        req.Memo,
		SourceTable: req.SourceTable,
		SourceID:    req.SourceID,
		AuditFields: audit,
	}

	entries := make([]domain.Entry, len(lines))
	for i, line := range lines {
		entries[i] = domain.Entry{
			EntryID:     uuid.NewString(),
			JournalID:   journal.JournalID,
			AccountID:   line.AccountID,
			LineNo:      i + 1,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Memo:        line.Memo,
			AuditFields: audit,
		}
	}

	saved, err := s.journalRepo.SaveJournal(ctx, journal, entries)
	if err != nil {
		s.LogError(ctx, err, "Failed to save journal", slog.String("journal_id", journal.JournalID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal posted",
		slog.String("journal_id", saved.JournalID),
		slog.String("journal_number", saved.JournalNumber),
		slog.Int("lines", len(entries)))
	return saved, nil
}

// normalizeLines drops zero-zero lines, rounds amounts and enforces the
// one-sided invariant per remaining line. Field keys are indexed against the
// original request so the caller can correlate messages to inputs.
func normalizeLines(reqLines []dto.JournalLineRequest) ([]dto.JournalLineRequest, apperrors.FieldErrors) {
	lines := make([]dto.JournalLineRequest, 0, len(reqLines))
	fieldErrs := apperrors.FieldErrors{}
	for i, line := range reqLines {
		key := fmt.Sprintf("lines[%d]", i)
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			fieldErrs[key] = "amounts must not be negative"
			continue
		}
		line.Debit = accounting.Round2(line.Debit)
		line.Credit = accounting.Round2(line.Credit)
		if line.Debit.IsZero() && line.Credit.IsZero() {
			continue
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			fieldErrs[key] = "a line must carry either a debit or a credit, not both"
			continue
		}
		lines = append(lines, line)
	}
	if len(fieldErrs) == 0 {
		return lines, nil
	}
	return nil, fieldErrs
}

func (s *journalService) validateAccounts(ctx context.Context, tenantID string, lines []dto.JournalLineRequest) error {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			ids = append(ids, line.AccountID)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, ids)
	if err != nil {
		return err
	}

	fieldErrs := apperrors.FieldErrors{}
	for i, line := range lines {
		account, ok := accounts[line.AccountID]
		if !ok {
			fieldErrs[fmt.Sprintf("lines[%d].accountID", i)] = "account not found"
			continue
		}
		if !account.IsActive {
			fieldErrs[fmt.Sprintf("lines[%d].accountID", i)] = "account is inactive"
		}
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

// GetJournal resolves either a normalized journal id or a synthref token
// pointing at a legacy pseudo-journal.
func (s *journalService) GetJournal(ctx context.Context, tenantID, journalRef string) (*domain.JournalView, error) {
	if synthref.IsToken(journalRef) {
		entryDate, refNo, refTable, err := synthref.Decode(journalRef)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		return s.journalRepo.FindLegacyJournal(ctx, tenantID, entryDate, refNo, refTable)
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, tenantID, journalRef)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindEntriesByJournalID(ctx, tenantID, journalRef)
	if err != nil {
		return nil, err
	}
	return &domain.JournalView{Journal: *journal, Lines: lines}, nil
}

func (s *journalService) ListJournals(ctx context.Context, tenantID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalPageSize
	}
	if limit > maxJournalPageSize {
		limit = maxJournalPageSize
	}

	journals, nextToken, err := s.journalRepo.ListJournals(ctx, tenantID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals")
		return nil, err
	}

	resp := dto.ToListJournalsResponse(journals, nextToken)
	return &resp, nil
}
