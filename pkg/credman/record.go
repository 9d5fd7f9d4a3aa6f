// Package credman validates extracted session cookies into a credential
// record and persists it for the sync process.
package credman

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/warpdl/cookiesave/internal/cookies"
	"github.com/warpdl/cookiesave/pkg/credman/types"
)

// MissingRequiredFieldError reports that one or more required identifiers
// were not found.
type MissingRequiredFieldError struct {
	Missing []string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf(
		"missing required cookies: %s (required: %s)",
		strings.Join(e.Missing, ", "),
		strings.Join(cookies.RequiredIDs, ", "),
	)
}

// IsMissingRequiredField reports whether err wraps a MissingRequiredFieldError.
func IsMissingRequiredField(err error) bool {
	var mr *MissingRequiredFieldError
	return errors.As(err, &mr)
}

// BuildRecord validates creds and stamps the result with now. The primary
// and timestamp identifiers must be present and non-empty. A missing
// secondary identifier becomes an empty string.
func BuildRecord(creds cookies.Credentials, now time.Time) (types.Record, error) {
	var missing []string
	for _, name := range cookies.RequiredIDs {
		if creds[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return types.Record{}, &MissingRequiredFieldError{Missing: missing}
	}
	return types.Record{
		PrimaryID:   creds[cookies.PrimaryID],
		SecondaryID: creds[cookies.SecondaryID],
		TimestampID: creds[cookies.TimestampID],
		CapturedAt:  now.UTC(),
	}, nil
}

// Preview shortens a secret for console output to its first n runes.
func Preview(value string, n int) string {
	if utf8.RuneCountInString(value) <= n {
		return value
	}
	return string([]rune(value)[:n]) + "..."
}
