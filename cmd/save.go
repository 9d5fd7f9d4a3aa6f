package cmd

import (
	"fmt"

	"github.com/urfave/cli"
	"github.com/warpdl/cookiesave/cmd/common"
	"github.com/warpdl/cookiesave/internal/cookies"
	"github.com/warpdl/cookiesave/pkg/credman"
	"github.com/warpdl/cookiesave/pkg/logger"
)

func save(ctx *cli.Context) error {
	l := newLogger(ctx)
	defer l.Close()
	return runSave(l, ctx.String("input"), ctx.String("output"))
}

// runSave reads input, validates the session cookies and replaces the
// record at output. Nothing is written unless validation passes.
func runSave(l logger.Logger, input, output string) error {
	common.Banner(stdout, "Save Gemini cookies")
	fmt.Fprintf(stdout, "Reading from: %s\n\n", input)

	creds, err := cookies.NewExtractor(fsys, l).Extract(input)
	if err != nil {
		l.Info("extract failed: %v", err)
		return err
	}
	rec, err := credman.BuildRecord(creds, now())
	if err != nil {
		l.Info("validation failed: %v", err)
		return err
	}

	fmt.Fprintln(stdout, "Extracted cookies:")
	common.PrintRecord(stdout, rec)

	store := credman.NewStore(fsys, output)
	if err := store.Save(rec); err != nil {
		l.Info("save failed: %v", err)
		return err
	}
	l.Info("record written to %s", store.Path())

	fmt.Fprintf(stdout, "\nSaved cookies to %s\n", store.Path())
	fmt.Fprintln(stdout, "Next: restart the sync server so it picks up the new credentials.")
	return nil
}
