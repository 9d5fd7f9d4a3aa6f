package credman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/warpdl/cookiesave/internal/cookies"
	"github.com/warpdl/cookiesave/pkg/credman/types"
	"gopkg.in/yaml.v3"
)

const recordFileMode = 0600

// aliases lists, per record slot, every key a persisted record may use.
// The sync server accepts the raw cookie names and the short forms too.
var aliases = map[string][]string{
	types.KeyPrimaryID:   {types.KeyPrimaryID, cookies.PrimaryID, "1PSID"},
	types.KeySecondaryID: {types.KeySecondaryID, cookies.SecondaryID, "1PSIDCC"},
	types.KeyTimestampID: {types.KeyTimestampID, cookies.TimestampID, "1PSIDTS"},
	types.KeyCapturedAt:  {types.KeyCapturedAt, "saved_at"},
}

// wireRecord fixes the on-disk key order and timestamp format.
type wireRecord struct {
	PrimaryID   string `json:"SECURE_1PSID" yaml:"SECURE_1PSID"`
	SecondaryID string `json:"SECURE_1PSIDCC" yaml:"SECURE_1PSIDCC"`
	TimestampID string `json:"SECURE_1PSIDTS" yaml:"SECURE_1PSIDTS"`
	Timestamp   string `json:"timestamp" yaml:"timestamp"`
}

// Store reads and writes one credential record file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a Store for path on fs. A nil fs means the OS filesystem.
func NewStore(fs afero.Fs, path string) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs, path: path}
}

// Path returns the record file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) isYAML() bool {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Save replaces the record file with rec. The new content is written to a
// temp file next to the target and renamed over it, so a failed save leaves
// the previous record as it was.
func (s *Store) Save(rec types.Record) error {
	data, err := s.encode(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpPath)
		return fmt.Errorf("write record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := s.fs.Chmod(tmpPath, recordFileMode); err != nil {
		s.fs.Remove(tmpPath)
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		s.fs.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) encode(rec types.Record) ([]byte, error) {
	w := wireRecord{
		PrimaryID:   rec.PrimaryID,
		SecondaryID: rec.SecondaryID,
		TimestampID: rec.TimestampID,
		Timestamp:   rec.CapturedAtString(),
	}
	if s.isYAML() {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(w); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads the record back. Besides the keys Save writes it accepts the
// raw cookie names, the short 1PSID forms, a nested "cookies" object and a
// "saved_at" timestamp, which covers records written by older tooling.
func (s *Store) Load() (types.Record, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Record{}, &cookies.MissingFileError{Path: s.path}
		}
		return types.Record{}, fmt.Errorf("read record: %w", err)
	}

	var get func(key string) (string, bool)
	if s.isYAML() {
		get, err = yamlLookup(data)
	} else {
		get, err = jsonLookup(data)
	}
	if err != nil {
		return types.Record{}, fmt.Errorf("decode record %s: %w", s.path, err)
	}

	lookup := func(slot string) string {
		for _, key := range aliases[slot] {
			if v, ok := get(key); ok && v != "" {
				return v
			}
			if v, ok := get("cookies." + key); ok && v != "" {
				return v
			}
		}
		return ""
	}

	creds := cookies.Credentials{}
	for slot, name := range map[string]string{
		types.KeyPrimaryID:   cookies.PrimaryID,
		types.KeySecondaryID: cookies.SecondaryID,
		types.KeyTimestampID: cookies.TimestampID,
	} {
		if v := lookup(slot); v != "" {
			creds[name] = v
		}
	}
	rec, err := BuildRecord(creds, time.Time{})
	if err != nil {
		return types.Record{}, err
	}
	rec.CapturedAt = parseTimestamp(lookup(types.KeyCapturedAt))
	return rec, nil
}

func jsonLookup(data []byte) (func(string) (string, bool), error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("record is not an object")
	}
	return func(key string) (string, bool) {
		parent := root
		if rest, ok := strings.CutPrefix(key, "cookies."); ok {
			parent = root.Get("cookies")
			key = rest
		}
		v := parent.Get(key)
		return v.String(), v.Exists()
	}, nil
}

func yamlLookup(data []byte) (func(string) (string, bool), error) {
	var root map[string]interface{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("record is empty")
	}
	return func(key string) (string, bool) {
		m := root
		if rest, ok := strings.CutPrefix(key, "cookies."); ok {
			nested, ok := root["cookies"].(map[string]interface{})
			if !ok {
				return "", false
			}
			m, key = nested, rest
		}
		v, ok := m[key]
		if !ok || v == nil {
			return "", false
		}
		switch t := v.(type) {
		case string:
			return t, true
		case time.Time:
			return t.UTC().Format(types.TimestampLayout), true
		default:
			return fmt.Sprint(t), true
		}
	}, nil
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
