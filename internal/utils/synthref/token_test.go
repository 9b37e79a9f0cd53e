package synthref_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/glsvc/ledger-backend/internal/utils/synthref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entryDate := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)

	token := synthref.Encode(entryDate, "INV-42", "invoices")

	assert.True(t, synthref.IsToken(token))

	gotDate, refNo, refTable, err := synthref.Decode(token)
	require.NoError(t, err)
	assert.True(t, gotDate.Equal(entryDate))
	assert.Equal(t, "INV-42", refNo)
	assert.Equal(t, "invoices", refTable)
}

func TestEncodeSurvivesSeparatorInRefNo(t *testing.T) {
	entryDate := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		refNo    string
		refTable string
	}{
		{"A|B", "payments"},
		{"CHQ 100% |del", "bank|imports"},
		{"", "invoices"},
	}
	for _, tt := range tests {
		token := synthref.Encode(entryDate, tt.refNo, tt.refTable)

		gotDate, refNo, refTable, err := synthref.Decode(token)
		require.NoError(t, err, "refNo %q", tt.refNo)
		assert.True(t, gotDate.Equal(entryDate))
		assert.Equal(t, tt.refNo, refNo)
		assert.Equal(t, tt.refTable, refTable)
	}
}

func TestIsToken(t *testing.T) {
	assert.True(t, synthref.IsToken("L~abc"))
	assert.False(t, synthref.IsToken("d2f6f9a0-0000-0000-0000-000000000000"))
	assert.False(t, synthref.IsToken(""))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := map[string]string{
		"no prefix":      "abc",
		"bad base64":     "L~!!!",
		"missing fields": synthref.Encode(time.Now(), "", "")[:4],
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := synthref.Decode(token)
			assert.Error(t, err)
		})
	}
}

func TestDecodeRejectsBadEscape(t *testing.T) {
	// A payload whose ref_no field carries a broken percent escape.
	token := "L~" + base64.RawURLEncoding.EncodeToString([]byte("2019-06-01|%zz|invoices"))

	_, _, _, err := synthref.Decode(token)
	assert.Error(t, err)
}

func TestDecodeRejectsBadDate(t *testing.T) {
	// A well-formed token whose date part is not a calendar date.
	token := "L~" + base64.RawURLEncoding.EncodeToString([]byte("2019-13-99|X|Y"))

	_, _, _, err := synthref.Decode(token)
	assert.Error(t, err)
}
