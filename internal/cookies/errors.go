package cookies

import (
	"errors"
	"fmt"
)

// MissingFileError is returned when a cookie export or record path does
// not resolve to a readable file.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("cookie file not found: %s", e.Path)
}

// IsMissingFile reports whether err (or anything it wraps) is a MissingFileError.
func IsMissingFile(err error) bool {
	var mf *MissingFileError
	return errors.As(err, &mf)
}
