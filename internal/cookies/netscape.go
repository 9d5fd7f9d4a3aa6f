package cookies

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/warpdl/cookiesave/pkg/logger"
)

const (
	netscapeHeader    = "# Netscape HTTP Cookie File"
	netscapeAltHeader = "# HTTP Cookie File"
	httpOnlyPrefix    = "#HttpOnly_"
)

// ParseNetscape reads every unexpired cookie for domain from a Netscape
// export. Unlike Extract it keeps the full cookie (domain, path, expiry,
// flags) and honours the #HttpOnly_ prefix, so it is what store import
// uses when the source is already a text export.
func ParseNetscape(filePath, domain string, l logger.Logger) ([]Cookie, error) {
	if l == nil {
		l = logger.NewNopLogger()
	}
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: filePath}
		}
		return nil, fmt.Errorf("open Netscape cookie file: %w", err)
	}
	defer f.Close()

	now := time.Now()
	var (
		out    []Cookie
		lineNo int
	)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		httpOnly := strings.HasPrefix(line, httpOnlyPrefix)
		if httpOnly {
			line = line[len(httpOnlyPrefix):]
		} else if isCommentOrBlank(line) {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			l.Warning("skipping malformed Netscape line %d", lineNo)
			continue
		}
		expiry, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			l.Warning("skipping Netscape line %d: invalid expiry", lineNo)
			continue
		}
		if !matchesDomain(fields[0], domain) {
			continue
		}
		// zero expiry marks a session cookie
		if expiry > 0 && time.Unix(expiry, 0).Before(now) {
			continue
		}
		out = append(out, Cookie{
			Name:     fields[nameField],
			Value:    fields[valueField],
			Domain:   fields[0],
			Path:     fields[2],
			Expiry:   time.Unix(expiry, 0),
			Secure:   strings.EqualFold(fields[3], "TRUE"),
			HttpOnly: httpOnly,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read Netscape cookie file: %w", err)
	}
	return out, nil
}

// WriteNetscape writes cookies as a Netscape export, sorted by name.
// Cookies without an expiry are written as session cookies. HttpOnly
// cookies are written without the #HttpOnly_ prefix so that Extract,
// which treats every '#' line as a comment, can read the output back.
func WriteNetscape(w io.Writer, cookies []Cookie) error {
	sorted := make([]Cookie, len(cookies))
	copy(sorted, cookies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, netscapeHeader)
	fmt.Fprintln(bw, "# This is a generated file! Do not edit.")
	fmt.Fprintln(bw)
	for _, c := range sorted {
		domain := c.Domain
		if domain == "" {
			domain = ".google.com"
		}
		path := c.Path
		if path == "" {
			path = "/"
		}
		var expiry int64
		if !c.Expiry.IsZero() && c.Expiry.Unix() > 0 {
			expiry = c.Expiry.Unix()
		}
		fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain,
			boolField(strings.HasPrefix(domain, ".")),
			path,
			boolField(c.Secure),
			expiry,
			c.Name,
			c.Value,
		)
	}
	return bw.Flush()
}

func boolField(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// matchesDomain accepts an exact host, its dot-prefixed form, or any subdomain.
// An empty domain matches everything.
func matchesDomain(cookieDomain, domain string) bool {
	if domain == "" {
		return true
	}
	dotDomain := "." + domain
	return cookieDomain == domain ||
		cookieDomain == dotDomain ||
		strings.HasSuffix(cookieDomain, dotDomain)
}
