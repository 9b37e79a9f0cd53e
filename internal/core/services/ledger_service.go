package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/utils/accounting"
)

// ledgerService reads one account's ledger across whichever storage
// generation the resolver picks.
type ledgerService struct {
	BaseService
	resolver portssvc.SchemaResolver
	readers  portsrepo.LedgerReaderFactory
}

func NewLedgerService(resolver portssvc.SchemaResolver, readers portsrepo.LedgerReaderFactory) portssvc.LedgerService {
	return &ledgerService{resolver: resolver, readers: readers}
}

var _ portssvc.LedgerService = (*ledgerService)(nil)

func (s *ledgerService) ListLedgerAccounts(ctx context.Context, tenantID string) (domain.LedgerSchema, []domain.LedgerAccount, error) {
	schema, err := s.resolver.Resolve(ctx, tenantID)
	if err != nil {
		return domain.SchemaNone, nil, err
	}
	accounts, err := s.readers.ReaderFor(schema).ListLedgerAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger accounts", slog.String("schema", string(schema)))
		return schema, nil, err
	}
	return schema, accounts, nil
}

// ReadAccountLedger replays one account's movements in (date, journal, line)
// order. The running balance starts at the opening net and is rounded after
// every step so the displayed figures never drift from what a user would
// compute line by line.
func (s *ledgerService) ReadAccountLedger(ctx context.Context, tenantID string, ref domain.AccountRef, from, to time.Time) (*domain.AccountLedger, error) {
	schema, err := s.resolver.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	reader := s.readers.ReaderFor(schema)

	accounts, err := reader.ListLedgerAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		// A tenant with zero setup gets an empty ledger, not an error.
		return &domain.AccountLedger{Schema: schema, Entries: []domain.LedgerLine{}}, nil
	}

	account := selectLedgerAccount(accounts, ref)
	if account == nil {
		return nil, apperrors.ErrNotFound
	}

	opening, err := reader.OpeningBalance(ctx, tenantID, account.Ref, from)
	if err != nil {
		return nil, err
	}
	opening = accounting.Round2(opening)

	entries, err := reader.AccountEntries(ctx, tenantID, account.Ref, from, to)
	if err != nil {
		return nil, err
	}

	running := opening
	for i := range entries {
		running = accounting.Round2(running.Add(entries[i].Debit).Sub(entries[i].Credit))
		entries[i].RunningBalance = running
	}

	return &domain.AccountLedger{
		Schema:         schema,
		Account:        account,
		OpeningBalance: opening,
		Entries:        entries,
	}, nil
}

// selectLedgerAccount picks the requested account from the reader's list, or
// the first one by code when no reference was given.
func selectLedgerAccount(accounts []domain.LedgerAccount, ref domain.AccountRef) *domain.LedgerAccount {
	if ref.IsZero() {
		return &accounts[0]
	}
	for i := range accounts {
		if ref.AccountID != "" && accounts[i].Ref.AccountID == ref.AccountID {
			return &accounts[i]
		}
		if ref.AccountID == "" && accounts[i].Code == ref.Code {
			return &accounts[i]
		}
	}
	return nil
}
