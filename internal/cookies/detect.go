package cookies

import (
	"bufio"
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

var sqliteMagic = []byte("SQLite format 3\x00")

// DetectFormat sniffs the cookie store at path. SQLite files are told apart
// by their cookie table, text files by the Netscape header line.
func DetectFormat(path string) (CookieFormat, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return FormatUnknown, &MissingFileError{Path: path}
	}
	if info.Size() == 0 {
		return FormatUnknown, fmt.Errorf("cookie store %s is empty", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("open cookie store: %w", err)
	}
	defer f.Close()

	head := make([]byte, len(sqliteMagic))
	n, err := io.ReadFull(f, head)
	if err == nil && bytes.Equal(head, sqliteMagic) {
		return detectSQLiteSchema(path)
	}

	// text export: look at the first line only
	first := string(head[:n])
	if !strings.Contains(first, "\n") {
		rest, _ := bufio.NewReader(f).ReadString('\n')
		first += rest
	}
	first, _, _ = strings.Cut(first, "\n")
	first = strings.TrimSuffix(first, "\r")
	if first == netscapeHeader || first == netscapeAltHeader {
		return FormatNetscape, nil
	}
	return FormatUnknown, fmt.Errorf("unsupported cookie store format at %s", path)
}

func detectSQLiteSchema(path string) (CookieFormat, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return FormatUnknown, fmt.Errorf("open SQLite cookie store: %w", err)
	}
	defer db.Close()

	for _, s := range []storeSchema{firefoxSchema, chromeSchema} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, s.table).Scan(&name)
		if err == nil {
			return s.format, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unsupported cookie database schema at %s", path)
}
