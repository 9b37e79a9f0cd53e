package mapping

import (
	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/glsvc/ledger-backend/internal/models"
)

func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:     d.JournalID,
		TenantID:      d.TenantID,
		JournalNumber: d.JournalNumber,
		JournalYear:   d.JournalDate.Year(),
		JournalDate:   d.JournalDate,
		JournalType:   d.JournalType,
		Memo:          d.Memo,
		SourceTable:   d.SourceTable,
		SourceID:      d.SourceID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:     m.JournalID,
		TenantID:      m.TenantID,
		JournalNumber: m.JournalNumber,
		JournalDate:   m.JournalDate,
		JournalType:   m.JournalType,
		Memo:          m.Memo,
		SourceTable:   m.SourceTable,
		SourceID:      m.SourceID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:     d.EntryID,
		JournalID:   d.JournalID,
		AccountID:   d.AccountID,
		LineNo:      d.LineNo,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Memo:        d.Memo,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLegacyLine converts one flat ledger row into a journal line of the
// synthesized view. The account name comes from the chart when one exists and
// is synthesized from the code otherwise.
func ToDomainLegacyLine(m models.LedgerRow, accountName string, lineNo int) domain.JournalLine {
	if accountName == "" {
		accountName = "Account " + m.AccountCode
	}
	return domain.JournalLine{
		Account:     domain.SyntheticAccount(m.AccountCode),
		AccountCode: m.AccountCode,
		AccountName: accountName,
		LineNo:      lineNo,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Memo:        m.Memo,
	}
}

func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:    m.TenantID,
		Slug:        m.Slug,
		Name:        m.Name,
		APIKeyHash:  m.APIKeyHash,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
