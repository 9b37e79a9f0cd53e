package services

import (
	"context"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/glsvc/ledger-backend/internal/dto"
)

// JournalService validates and posts balanced journals, and serves journal
// drill-down for both storage generations.
type JournalService interface {
	// PostJournal validates the posting and persists header plus lines
	// atomically. Validation failures are apperrors.FieldErrors; transient
	// persistence failures match apperrors.ErrStorage and are retryable.
	PostJournal(ctx context.Context, tenantID string, req dto.PostJournalRequest, userID string) (*domain.Journal, error)

	// GetJournal resolves a journal reference: a normalized journal id, or a
	// synthref token identifying a legacy pseudo-journal.
	GetJournal(ctx context.Context, tenantID, journalRef string) (*domain.JournalView, error)

	// ListJournals returns one page of journal headers, newest first.
	ListJournals(ctx context.Context, tenantID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}
