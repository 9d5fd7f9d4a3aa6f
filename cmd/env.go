package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
	"github.com/warpdl/cookiesave/pkg/credman"
)

func env(ctx *cli.Context) error {
	l := newLogger(ctx)
	defer l.Close()

	rec, err := credman.NewStore(fsys, ctx.String("output")).Load()
	if err != nil {
		l.Info("load failed: %v", err)
		return err
	}
	for _, kv := range rec.Env() {
		key, value, _ := strings.Cut(kv, "=")
		fmt.Fprintf(stdout, "export %s=%s\n", key, shellQuote(value))
	}
	return nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
