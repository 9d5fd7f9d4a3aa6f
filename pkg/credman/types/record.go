// Package types defines the credential record shared between cookiesave
// and the sync process that consumes it.
package types

import "time"

// Record keys as they appear in the persisted file. They are also the
// environment variable names the downstream server reads.
const (
	KeyPrimaryID   = "SECURE_1PSID"
	KeySecondaryID = "SECURE_1PSIDCC"
	KeyTimestampID = "SECURE_1PSIDTS"
	KeyCapturedAt  = "timestamp"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision, e.g.
// 2024-05-01T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is one captured set of session credentials. It is built once per
// run and never mutated afterwards.
type Record struct {
	// PrimaryID is the __Secure-1PSID value.
	PrimaryID string
	// SecondaryID is the __Secure-1PSIDCC value, empty when the export
	// did not carry one.
	SecondaryID string
	// TimestampID is the __Secure-1PSIDTS value.
	TimestampID string
	// CapturedAt is when the extraction ran, not anything read from input.
	CapturedAt time.Time
}

// CapturedAtString formats CapturedAt with TimestampLayout.
func (r Record) CapturedAtString() string {
	return r.CapturedAt.UTC().Format(TimestampLayout)
}

// Env renders the credential fields as KEY=value pairs in slot order.
func (r Record) Env() []string {
	return []string{
		KeyPrimaryID + "=" + r.PrimaryID,
		KeySecondaryID + "=" + r.SecondaryID,
		KeyTimestampID + "=" + r.TimestampID,
	}
}
