package cmd

import (
	"os"
	"path/filepath"
)

const (
	DefaultInputName  = "gemini.google.com_cookies.txt"
	DefaultOutputName = "cookies.json"
	DefaultDomain     = "google.com"
)

// Environment variables that override the flag defaults.
const (
	EnvInput   = "COOKIESAVE_INPUT"
	EnvOutput  = "COOKIESAVE_OUTPUT"
	EnvDebug   = "COOKIESAVE_DEBUG"
	EnvLogFile = "COOKIESAVE_LOG_FILE"
)

const DESCRIPTION = `
cookiesave reads a Netscape cookies.txt exported from the browser,
picks out the Gemini session cookies and writes them to the record
file the sync server reads its credentials from.
`

const (
	SaveDescription = `The save command reads the exported cookies file, checks
that __Secure-1PSID and __Secure-1PSIDTS are present and writes
them, together with __Secure-1PSIDCC when found, to the record file.
It is also what runs when no command is given.

Example:
        cookiesave
                OR
        cookiesave save -i ~/cookies.txt -o ./cookies.json

`
	ShowDescription = `The show command prints a shortened view of the saved
record and how long ago it was captured.

Example:
        cookiesave show

`
	EnvDescription = `The env command prints the saved record as shell export
lines, ready to be evaluated before starting the server.

Example:
        eval "$(cookiesave env)"

`
	ExportDescription = `The export command reads a Firefox or Chromium cookie store
(or another cookies.txt), keeps the session cookies for a domain
and writes them out as a Netscape cookies.txt that save accepts.

Example:
        cookiesave export --from ~/.mozilla/firefox/x.default/cookies.sqlite
        cookiesave export --from Cookies --to ~/Downloads/gemini.google.com_cookies.txt

`
)

// DefaultInputPath is the browser extension's export location in the
// user's Downloads directory.
func DefaultInputPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "Downloads", DefaultInputName)
}

// DefaultOutputPath places the record next to the running executable.
func DefaultOutputPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultOutputName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultOutputName)
}
