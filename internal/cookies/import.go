package cookies

import (
	"fmt"

	"github.com/warpdl/cookiesave/pkg/logger"
)

// ImportCookies reads the cookies for domain from any supported store:
// a Netscape export, a Firefox cookies.sqlite or a Chromium Cookies file.
// SQLite stores are copied aside first so a running browser does not block
// the read.
func ImportCookies(sourcePath, domain string, l logger.Logger) ([]Cookie, *CookieSource, error) {
	if l == nil {
		l = logger.NewNopLogger()
	}
	format, err := DetectFormat(sourcePath)
	if err != nil {
		return nil, nil, err
	}
	source := &CookieSource{
		Path:    sourcePath,
		Format:  format,
		Browser: format.String(),
	}

	var imported []Cookie
	switch format {
	case FormatNetscape:
		imported, err = ParseNetscape(sourcePath, domain, l)
	case FormatFirefox:
		imported, err = importSQLite(sourcePath, domain, ParseFirefox)
	case FormatChrome:
		imported, err = importSQLite(sourcePath, domain, ParseChrome)
	default:
		return nil, nil, fmt.Errorf("unsupported cookie store format at %s", sourcePath)
	}
	if err != nil {
		return nil, nil, err
	}
	l.Info("imported %d cookies for %s from %s store %s", len(imported), domain, source.Browser, sourcePath)
	return imported, source, nil
}

func importSQLite(sourcePath, domain string, parse func(string, string) ([]Cookie, error)) ([]Cookie, error) {
	copyPath, cleanup, err := SafeCopy(sourcePath)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return parse(copyPath, domain)
}

// Recognized filters cookies down to the allow-listed names, keeping order.
func Recognized(cookies []Cookie) []Cookie {
	var out []Cookie
	for _, c := range cookies {
		if IsRecognized(c.Name) {
			out = append(out, c)
		}
	}
	return out
}
