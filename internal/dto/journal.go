package dto

import (
	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit-or-credit line in a posting. Lines with
// both amounts zero are dropped silently; lines with both positive are a
// field-level validation error.
type JournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
}

// PostJournalRequest is the payload for posting a balanced journal.
type PostJournalRequest struct {
	Date        string               `json:"date" binding:"required"`
	JournalType string               `json:"journalType"`
	Memo        string               `json:"memo"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=1,dive"`
	SourceTable string               `json:"sourceTable"`
	SourceID    string               `json:"sourceID"`
}

// ListJournalsParams holds parameters for listing journals.
type ListJournalsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// JournalResponse is the API shape of a journal header.
type JournalResponse struct {
	JournalID     string `json:"journalID"`
	JournalNumber string `json:"journalNumber"`
	Date          string `json:"date"`
	JournalType   string `json:"journalType"`
	Memo          string `json:"memo"`
	SourceTable   string `json:"sourceTable,omitempty"`
	SourceID      string `json:"sourceID,omitempty"`
}

// JournalLineResponse is one resolved line in a journal view.
type JournalLineResponse struct {
	EntryID     string          `json:"entryID,omitempty"`
	AccountID   string          `json:"accountID,omitempty"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	LineNo      int             `json:"lineNo"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo"`
}

// JournalViewResponse is a journal header with its lines, as served by the
// drill-down endpoint. For legacy pseudo-journals JournalID is a synthref
// token and JournalNumber is the legacy reference number.
type JournalViewResponse struct {
	JournalResponse
	Lines []JournalLineResponse `json:"lines"`
}

// ListJournalsResponse is one page of journal headers.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToJournalResponse converts a domain journal header.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{
		JournalID:     j.JournalID,
		JournalNumber: j.JournalNumber,
		Date:          j.JournalDate.Format(DateFormat),
		JournalType:   j.JournalType,
		Memo:          j.Memo,
		SourceTable:   j.SourceTable,
		SourceID:      j.SourceID,
	}
}

// ToJournalViewResponse converts a journal view with its lines.
func ToJournalViewResponse(v *domain.JournalView) JournalViewResponse {
	resp := JournalViewResponse{
		JournalResponse: ToJournalResponse(&v.Journal),
		Lines:           make([]JournalLineResponse, len(v.Lines)),
	}
	for i, line := range v.Lines {
		resp.Lines[i] = JournalLineResponse{
			EntryID:     line.EntryID,
			AccountID:   line.Account.AccountID,
			AccountCode: line.AccountCode,
			AccountName: line.AccountName,
			LineNo:      line.LineNo,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Memo:        line.Memo,
		}
	}
	return resp
}

// ToListJournalsResponse converts one page of journal headers.
func ToListJournalsResponse(journals []domain.Journal, nextToken *string) ListJournalsResponse {
	resp := ListJournalsResponse{
		Journals:  make([]JournalResponse, len(journals)),
		NextToken: nextToken,
	}
	for i := range journals {
		resp.Journals[i] = ToJournalResponse(&journals[i])
	}
	return resp
}
