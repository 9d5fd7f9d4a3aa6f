package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"
	"github.com/warpdl/cookiesave/cmd/common"
	"github.com/warpdl/cookiesave/pkg/credman"
)

func show(ctx *cli.Context) error {
	l := newLogger(ctx)
	defer l.Close()

	store := credman.NewStore(fsys, ctx.String("output"))
	rec, err := store.Load()
	if err != nil {
		l.Info("load failed: %v", err)
		return err
	}
	fmt.Fprintf(stdout, "Record: %s\n", store.Path())
	common.PrintRecord(stdout, rec)
	if rec.CapturedAt.IsZero() {
		fmt.Fprintln(stdout, "   captured: unknown")
		return nil
	}
	fmt.Fprintf(stdout, "   captured: %s (%s)\n",
		rec.CapturedAtString(),
		humanize.RelTime(rec.CapturedAt, now(), "ago", "from now"),
	)
	return nil
}
