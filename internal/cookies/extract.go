package cookies

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/warpdl/cookiesave/pkg/logger"
)

const (
	// minFields is the shortest record the extractor accepts. Extra
	// trailing fields are tolerated.
	minFields  = 7
	nameField  = 5
	valueField = 6
)

// Extractor reads Netscape cookie exports and selects the recognized
// identifiers from them.
type Extractor struct {
	fs  afero.Fs
	log logger.Logger
}

// NewExtractor returns an Extractor reading from fs. A nil fs means the
// OS filesystem and a nil l discards log output.
func NewExtractor(fs afero.Fs, l logger.Logger) *Extractor {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Extractor{fs: fs, log: l}
}

// ExtractFile runs Extract against the OS filesystem.
func ExtractFile(path string) (Credentials, error) {
	return NewExtractor(nil, nil).Extract(path)
}

// Extract reads the export at path and returns the recognized cookies it
// defines. Comment lines, blank lines and lines with fewer than seven
// tab-separated fields are skipped. When a name occurs more than once the
// last occurrence in file order wins. A file without any recognized name
// yields an empty map, not an error.
func (e *Extractor) Extract(path string) (Credentials, error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, &MissingFileError{Path: path}
	}

	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	creds := make(Credentials, len(AllowList))
	var skipped int
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if isCommentOrBlank(line) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			// content stays out of the log, it may carry a value
			e.log.Warning("skipping malformed line %d in %s (%d fields)", i+1, path, len(fields))
			skipped++
			continue
		}
		name := fields[nameField]
		if !IsRecognized(name) {
			continue
		}
		if _, dup := creds[name]; dup {
			e.log.Info("%s redefined on line %d, keeping the later value", name, i+1)
		}
		creds[name] = fields[valueField]
	}

	e.log.Info("extracted %d recognized cookies from %s (%d malformed lines skipped)", len(creds), path, skipped)
	return creds, nil
}

// Select applies the allow-list to cookies imported from a store.
// Later cookies override earlier ones with the same name.
func Select(cookies []Cookie) Credentials {
	creds := make(Credentials, len(AllowList))
	for _, c := range cookies {
		if IsRecognized(c.Name) {
			creds[c.Name] = c.Value
		}
	}
	return creds
}

func isCommentOrBlank(line string) bool {
	return strings.HasPrefix(line, "#") || strings.TrimSpace(line) == ""
}
