package credman

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/warpdl/cookiesave/internal/cookies"
	"github.com/warpdl/cookiesave/pkg/credman/types"
)

var testCapture = time.Date(2024, 5, 1, 9, 30, 0, 123e6, time.UTC)

func testRecord() types.Record {
	return types.Record{
		PrimaryID:   "g.a000-primary<&>",
		SecondaryID: "AKEyXz-secondary",
		TimestampID: "sidts-CjEB",
		CapturedAt:  testCapture,
	}
}

func TestStore_SaveJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs, "/srv/cookies.json")
	if err := s.Save(testRecord()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := afero.ReadFile(fs, "/srv/cookies.json")
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "SECURE_1PSID": "g.a000-primary<&>",
  "SECURE_1PSIDCC": "AKEyXz-secondary",
  "SECURE_1PSIDTS": "sidts-CjEB",
  "timestamp": "2024-05-01T09:30:00.123Z"
}
`
	if string(data) != want {
		t.Errorf("record file:\n got: %s\nwant: %s", data, want)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"cookies.json", "cookies.yaml", "cookies.yml"} {
		t.Run(name, func(t *testing.T) {
			s := NewStore(afero.NewMemMapFs(), "/srv/"+name)
			if err := s.Save(testRecord()); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			want := testRecord()
			if got.PrimaryID != want.PrimaryID || got.SecondaryID != want.SecondaryID || got.TimestampID != want.TimestampID {
				t.Errorf("got %+v, want %+v", got, want)
			}
			if !got.CapturedAt.Equal(want.CapturedAt) {
				t.Errorf("captured at %v, want %v", got.CapturedAt, want.CapturedAt)
			}
		})
	}
}

func TestStore_SaveYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := NewStore(fs, "/srv/cookies.yaml").Save(testRecord()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := afero.ReadFile(fs, "/srv/cookies.yaml")
	if !strings.HasPrefix(string(data), "SECURE_1PSID: ") {
		t.Errorf("expected YAML keys in slot order, got:\n%s", data)
	}
	if !strings.Contains(string(data), `timestamp: "2024-05-01T09:30:00.123Z"`) &&
		!strings.Contains(string(data), "timestamp: 2024-05-01T09:30:00.123Z") {
		t.Errorf("timestamp missing:\n%s", data)
	}
}

func TestStore_SaveReplacesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "cookies.json")
	s := NewStore(afero.NewOsFs(), path)
	if err := s.Save(testRecord()); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	rec := testRecord()
	rec.PrimaryID = "rotated"
	if err := s.Save(rec); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.PrimaryID != "rotated" {
		t.Errorf("primary = %q, want rotated", got.PrimaryID)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the record file, found %d entries", len(entries))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestStore_FailedSaveKeepsPrevious(t *testing.T) {
	base := afero.NewMemMapFs()
	previous := []byte(`{"SECURE_1PSID":"old","SECURE_1PSIDTS":"old"}`)
	if err := afero.WriteFile(base, "/srv/cookies.json", previous, 0600); err != nil {
		t.Fatal(err)
	}
	s := NewStore(afero.NewReadOnlyFs(base), "/srv/cookies.json")
	if err := s.Save(testRecord()); err == nil {
		t.Fatal("expected Save to fail on a read-only filesystem")
	}
	data, _ := afero.ReadFile(base, "/srv/cookies.json")
	if !bytes.Equal(data, previous) {
		t.Errorf("previous record modified: %s", data)
	}
}

func TestStore_LoadAliases(t *testing.T) {
	tests := map[string]string{
		"cookie names": `{"__Secure-1PSID":"A","__Secure-1PSIDCC":"B","__Secure-1PSIDTS":"C","saved_at":"2024-05-01T09:30:00.123Z"}`,
		"short names":  `{"1PSID":"A","1PSIDCC":"B","1PSIDTS":"C","timestamp":"2024-05-01T09:30:00.123"}`,
		"nested":       `{"cookies":{"SECURE_1PSID":"A","__Secure-1PSIDCC":"B","1PSIDTS":"C"},"saved_at":"2024-05-01T09:30:00.123Z"}`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "/r.json", []byte(content), 0600); err != nil {
				t.Fatal(err)
			}
			rec, err := NewStore(fs, "/r.json").Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if rec.PrimaryID != "A" || rec.SecondaryID != "B" || rec.TimestampID != "C" {
				t.Errorf("unexpected record %+v", rec)
			}
			if !rec.CapturedAt.Equal(testCapture) {
				t.Errorf("captured at %v, want %v", rec.CapturedAt, testCapture)
			}
		})
	}
}

func TestStore_LoadYAMLAliases(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "cookies:\n  __Secure-1PSID: A\n  1PSIDTS: C\nsaved_at: 2024-05-01T09:30:00.123Z\n"
	if err := afero.WriteFile(fs, "/r.yml", []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	rec, err := NewStore(fs, "/r.yml").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.PrimaryID != "A" || rec.SecondaryID != "" || rec.TimestampID != "C" {
		t.Errorf("unexpected record %+v", rec)
	}
	if !rec.CapturedAt.Equal(testCapture) {
		t.Errorf("captured at %v, want %v", rec.CapturedAt, testCapture)
	}
}

func TestStore_LoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := NewStore(fs, "/missing.json").Load(); !cookies.IsMissingFile(err) {
		t.Errorf("missing file: expected MissingFileError, got %v", err)
	}

	files := map[string]string{
		"/bad.json":     `{"SECURE_1PSID":`,
		"/array.json":   `["SECURE_1PSID"]`,
		"/partial.json": `{"SECURE_1PSID":"A"}`,
		"/empty.yaml":   ``,
	}
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	for _, path := range []string{"/bad.json", "/array.json", "/empty.yaml"} {
		if _, err := NewStore(fs, path).Load(); err == nil || IsMissingRequiredField(err) {
			t.Errorf("%s: expected a decode error, got %v", path, err)
		}
	}
	if _, err := NewStore(fs, "/partial.json").Load(); !IsMissingRequiredField(err) {
		t.Errorf("partial record: expected MissingRequiredFieldError, got %v", err)
	}
}

func TestStore_LoadWithoutTimestamp(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/r.json", []byte(`{"SECURE_1PSID":"A","SECURE_1PSIDTS":"C"}`), 0600); err != nil {
		t.Fatal(err)
	}
	rec, err := NewStore(fs, "/r.json").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !rec.CapturedAt.IsZero() {
		t.Errorf("captured at = %v, want zero", rec.CapturedAt)
	}
}
