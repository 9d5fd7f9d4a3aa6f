package cookies

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseNetscape(t *testing.T) {
	future := time.Now().Add(24 * time.Hour).Unix()
	past := time.Now().Add(-24 * time.Hour).Unix()
	content := "# Netscape HTTP Cookie File\n" +
		"#HttpOnly_.google.com\tTRUE\t/\tTRUE\t" + itoa(future) + "\t__Secure-1PSID\tA\n" +
		"gemini.google.com\tFALSE\t/app\tFALSE\t0\tsession\ts\n" +
		".google.com\tTRUE\t/\tTRUE\t" + itoa(past) + "\texpired\tx\n" +
		".example.com\tTRUE\t/\tTRUE\t" + itoa(future) + "\tother\to\n" +
		"broken line\n" +
		".google.com\tTRUE\t/\tTRUE\tsoon\tbadexpiry\tb\n"
	path := writeTempFile(t, "cookies.txt", content)

	got, err := ParseNetscape(path, "google.com", nil)
	if err != nil {
		t.Fatalf("ParseNetscape: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cookies, got %d: %+v", len(got), got)
	}
	if got[0].Name != PrimaryID || !got[0].HttpOnly || !got[0].Secure || got[0].Domain != ".google.com" {
		t.Errorf("unexpected first cookie %+v", got[0])
	}
	if got[1].Name != "session" || got[1].Path != "/app" || got[1].Secure {
		t.Errorf("unexpected second cookie %+v", got[1])
	}
}

func TestParseNetscape_MissingFile(t *testing.T) {
	if _, err := ParseNetscape(filepath.Join(t.TempDir(), "nope"), "", nil); !IsMissingFile(err) {
		t.Fatalf("expected MissingFileError, got %v", err)
	}
}

func TestWriteNetscape_ReadableByExtract(t *testing.T) {
	var buf bytes.Buffer
	err := WriteNetscape(&buf, []Cookie{
		{Name: TimestampID, Value: "C", Domain: ".google.com", Path: "/", Secure: true, HttpOnly: true},
		{Name: PrimaryID, Value: "A", Expiry: time.Unix(4102444800, 0), Secure: true},
		{Name: SecondaryID, Value: "B", Domain: "gemini.google.com"},
	})
	if err != nil {
		t.Fatalf("WriteNetscape: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "# Netscape HTTP Cookie File\n") {
		t.Errorf("missing header:\n%s", out)
	}
	if strings.Contains(out, "#HttpOnly_") {
		t.Errorf("HttpOnly prefix should not be written:\n%s", out)
	}
	if !strings.Contains(out, ".google.com\tTRUE\t/\tTRUE\t4102444800\t__Secure-1PSID\tA\n") {
		t.Errorf("unexpected primary line:\n%s", out)
	}
	if !strings.Contains(out, "gemini.google.com\tFALSE\t/\tFALSE\t0\t__Secure-1PSIDCC\tB\n") {
		t.Errorf("unexpected secondary line:\n%s", out)
	}

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/out.txt", buf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
	creds, err := NewExtractor(fs, nil).Extract("/out.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if creds[PrimaryID] != "A" || creds[SecondaryID] != "B" || creds[TimestampID] != "C" {
		t.Errorf("round trip lost values: %v", creds)
	}
}

func TestMatchesDomain(t *testing.T) {
	tests := []struct {
		cookie, domain string
		want           bool
	}{
		{"google.com", "google.com", true},
		{".google.com", "google.com", true},
		{"gemini.google.com", "google.com", true},
		{"notgoogle.com", "google.com", false},
		{"example.com", "", true},
	}
	for _, tt := range tests {
		if got := matchesDomain(tt.cookie, tt.domain); got != tt.want {
			t.Errorf("matchesDomain(%q, %q) = %v, want %v", tt.cookie, tt.domain, got, tt.want)
		}
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
