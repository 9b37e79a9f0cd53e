// Package synthref encodes legacy pseudo-journal identity as a stateless
// token. Legacy flat ledger rows have no journal entity; rows sharing
// (entry_date, ref_no, ref_table) form one pseudo-journal. Encoding that key
// in the drill-down link keeps it durable across requests without any
// server-side session index.
package synthref

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	prefix     = "L~"
	dateFormat = "2006-01-02"
)

// Encode builds a token from a legacy pseudo-journal key. The variable
// fields are percent-escaped so a separator inside ref_no or ref_table
// round-trips intact.
func Encode(entryDate time.Time, refNo, refTable string) string {
	raw := strings.Join([]string{
		entryDate.Format(dateFormat),
		url.QueryEscape(refNo),
		url.QueryEscape(refTable),
	}, "|")
	return prefix + base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// IsToken reports whether a journal reference looks like a synthref token
// rather than a real journal id.
func IsToken(ref string) bool {
	return strings.HasPrefix(ref, prefix)
}

// Decode parses a token back into the pseudo-journal key.
func Decode(token string) (entryDate time.Time, refNo, refTable string, err error) {
	if !IsToken(token) {
		return time.Time{}, "", "", fmt.Errorf("not a legacy journal token")
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(token, prefix))
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("invalid legacy journal token: %w", err)
	}
	parts := strings.SplitN(string(raw), "|", 3)
	if len(parts) != 3 {
		return time.Time{}, "", "", fmt.Errorf("invalid legacy journal token payload")
	}
	entryDate, err = time.Parse(dateFormat, parts[0])
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("invalid legacy journal token date: %w", err)
	}
	refNo, err = url.QueryUnescape(parts[1])
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("invalid legacy journal token ref_no: %w", err)
	}
	refTable, err = url.QueryUnescape(parts[2])
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("invalid legacy journal token ref_table: %w", err)
	}
	return entryDate, refNo, refTable, nil
}
