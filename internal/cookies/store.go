package cookies

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// chromeEpochOffset is the number of seconds between 1601-01-01 and the Unix epoch.
const chromeEpochOffset int64 = 11_644_473_600

// storeSchema describes how one browser lays out its SQLite cookie table.
type storeSchema struct {
	format CookieFormat
	table  string
	// query selects name, value, host, path, expiry, secure, httponly and
	// takes the exact domain, dot domain, LIKE pattern and "now" in store units.
	query string
	// toStoreTime and fromStoreTime convert between Unix seconds and the
	// store's expiry column.
	toStoreTime   func(unix int64) int64
	fromStoreTime func(v int64) int64
}

var firefoxSchema = storeSchema{
	format: FormatFirefox,
	table:  "moz_cookies",
	query: `
        SELECT name, value, host, path, expiry, isSecure, isHttpOnly
        FROM moz_cookies
        WHERE (host = ? OR host = ? OR host LIKE ?)
          AND expiry > ?
        ORDER BY path DESC, name ASC`,
	toStoreTime:   func(unix int64) int64 { return unix },
	fromStoreTime: func(v int64) int64 { return v },
}

// Chromium keeps microseconds since 1601-01-01. Rows whose value is empty
// carry an encrypted_value instead and are skipped: decrypting them needs
// the OS keychain.
var chromeSchema = storeSchema{
	format: FormatChrome,
	table:  "cookies",
	query: `
        SELECT name, value, host_key, path, expires_utc, is_secure, is_httponly
        FROM cookies
        WHERE (host_key = ? OR host_key = ? OR host_key LIKE ?)
          AND value != ''
          AND expires_utc > ?
        ORDER BY path DESC, name ASC`,
	toStoreTime:   func(unix int64) int64 { return (unix + chromeEpochOffset) * 1_000_000 },
	fromStoreTime: func(v int64) int64 { return v/1_000_000 - chromeEpochOffset },
}

// ParseFirefox reads unexpired cookies for domain from a copied Firefox
// cookies.sqlite.
func ParseFirefox(dbPath, domain string) ([]Cookie, error) {
	return firefoxSchema.read(dbPath, domain)
}

// ParseChrome reads unexpired, unencrypted cookies for domain from a copied
// Chromium Cookies database.
func ParseChrome(dbPath, domain string) ([]Cookie, error) {
	return chromeSchema.read(dbPath, domain)
}

func (s storeSchema) read(dbPath, domain string) ([]Cookie, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?immutable=1", dbPath))
	if err != nil {
		return nil, fmt.Errorf("open %s cookie database: %w", s.format, err)
	}
	defer db.Close()

	now := s.toStoreTime(time.Now().Unix())
	rows, err := db.Query(s.query, domain, "."+domain, "%."+domain, now)
	if err != nil {
		return nil, fmt.Errorf("query %s cookies: %w", s.format, err)
	}
	defer rows.Close()

	var out []Cookie
	for rows.Next() {
		var (
			c              Cookie
			expiry         int64
			secure, httpOn int
		)
		if err := rows.Scan(&c.Name, &c.Value, &c.Domain, &c.Path, &expiry, &secure, &httpOn); err != nil {
			return nil, fmt.Errorf("scan %s cookie row: %w", s.format, err)
		}
		c.Expiry = time.Unix(s.fromStoreTime(expiry), 0)
		c.Secure = secure != 0
		c.HttpOnly = httpOn != 0
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s cookie rows: %w", s.format, err)
	}
	return out, nil
}
