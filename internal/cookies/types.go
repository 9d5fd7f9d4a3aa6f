package cookies

import "time"

// Recognized cookie names. Matching is exact and case-sensitive.
const (
	// PrimaryID is the primary session identifier. Required.
	PrimaryID = "__Secure-1PSID"
	// SecondaryID is the rotating secondary identifier. Optional.
	SecondaryID = "__Secure-1PSIDCC"
	// TimestampID is the session-timestamp identifier. Required.
	TimestampID = "__Secure-1PSIDTS"
)

// AllowList holds the recognized cookie names in slot order.
var AllowList = []string{PrimaryID, SecondaryID, TimestampID}

// RequiredIDs holds the names that must be present for a record to be written.
var RequiredIDs = []string{PrimaryID, TimestampID}

var allowed = map[string]bool{
	PrimaryID:   true,
	SecondaryID: true,
	TimestampID: true,
}

// IsRecognized reports whether name is one of the allow-listed identifiers.
func IsRecognized(name string) bool {
	return allowed[name]
}

// Credentials maps a recognized cookie name to its value.
// It never holds names outside AllowList.
type Credentials map[string]string

// CookieFormat identifies the format of a browser cookie store.
type CookieFormat int

const (
	FormatUnknown CookieFormat = iota
	// FormatFirefox is the moz_cookies SQLite schema.
	FormatFirefox
	// FormatChrome is the Chromium cookies SQLite schema. Only
	// unencrypted values are usable.
	FormatChrome
	// FormatNetscape is the tab-separated text export.
	FormatNetscape
)

func (f CookieFormat) String() string {
	switch f {
	case FormatFirefox:
		return "Firefox"
	case FormatChrome:
		return "Chrome"
	case FormatNetscape:
		return "Netscape"
	default:
		return "unknown"
	}
}

// Cookie is a single cookie read from a cookie store.
// Value is sensitive and must never reach a log line or error message.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	Expiry   time.Time
	Secure   bool
	HttpOnly bool
}

// CookieSource describes where cookies were imported from.
type CookieSource struct {
	Path    string
	Format  CookieFormat
	Browser string
}
