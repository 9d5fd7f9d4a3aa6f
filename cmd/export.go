package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"github.com/warpdl/cookiesave/cmd/common"
	"github.com/warpdl/cookiesave/internal/cookies"
	"github.com/warpdl/cookiesave/pkg/credman"
)

var errNoSource = errors.New("no cookie store given, use --from")

func export(ctx *cli.Context) error {
	if exportFrom == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoSource)
	}
	l := newLogger(ctx)
	defer l.Close()

	imported, source, err := cookies.ImportCookies(exportFrom, exportDomain, l)
	if err != nil {
		l.Info("import failed: %v", err)
		return err
	}
	session := cookies.Recognized(imported)
	// Refuse to write an export that save would reject.
	if _, err := credman.BuildRecord(cookies.Select(session), now()); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := cookies.WriteNetscape(&buf, session); err != nil {
		return fmt.Errorf("encode cookies: %w", err)
	}
	if exportTo == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(exportTo), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := afero.WriteFile(fsys, exportTo, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write %s: %w", exportTo, err)
	}
	l.Info("exported %d cookies from %s", len(session), source.Browser)
	fmt.Fprintf(stdout, "Wrote %d cookies from %s to %s\n", len(session), source.Path, exportTo)
	return nil
}
