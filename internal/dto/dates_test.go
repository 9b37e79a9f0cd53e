package dto_test

import (
	"testing"
	"time"

	"github.com/glsvc/ledger-backend/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	got := dto.ParseDateOr("2024-03-15", fallback)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)

	assert.Equal(t, fallback, dto.ParseDateOr("", fallback))
	assert.Equal(t, fallback, dto.ParseDateOr("15/03/2024", fallback))
	assert.Equal(t, fallback, dto.ParseDateOr("2024-02-30", fallback))
}

func TestDefaultReportRange(t *testing.T) {
	now := time.Date(2024, 3, 17, 14, 30, 0, 0, time.UTC)

	from, to := dto.DefaultReportRange(now)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), to)
}
