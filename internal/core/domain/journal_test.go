package domain_test

import (
	"testing"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatJournalNumber(t *testing.T) {
	tests := []struct {
		year int
		seq  int
		want string
	}{
		{2024, 1, "J-2024-00001"},
		{2024, 2, "J-2024-00002"},
		{2024, 3, "J-2024-00003"},
		{2024, 99999, "J-2024-99999"},
		// A sequence past the pad width widens rather than truncates.
		{2024, 123456, "J-2024-123456"},
		// The counter is per year, so January restarts the visible sequence.
		{2025, 1, "J-2025-00001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.FormatJournalNumber(tt.year, tt.seq))
	}
}

func TestFormatJournalNumberOrdersWithinYear(t *testing.T) {
	prev := domain.FormatJournalNumber(2024, 1)
	for seq := 2; seq <= 12; seq++ {
		cur := domain.FormatJournalNumber(2024, seq)
		assert.Less(t, prev, cur, "seq %d must sort after its predecessor", seq)
		prev = cur
	}
}
