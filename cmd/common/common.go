// Package common holds the help, version and console helpers shared by
// the cookiesave commands.
package common

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
	"github.com/warpdl/cookiesave/pkg/credman"
	"github.com/warpdl/cookiesave/pkg/credman/types"
)

// PreviewLen is how many characters of a secret the console shows.
const PreviewLen = 30

// VersionCmdStr is filled in by Execute with the build information.
var VersionCmdStr string

var (
	showAppHelpAndExit = cli.ShowAppHelpAndExit
	showCommandHelp    = cli.ShowCommandHelp
)

// Help prints application help, or help for the command named by the
// first argument.
func Help(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" || arg == "help" {
		fmt.Fprintf(outWriter(ctx), "%s %s\n", ctx.App.Name, ctx.App.Version)
		showAppHelpAndExit(ctx, 0)
		return nil
	}
	return showCommandHelp(ctx, arg)
}

// GetVersion prints VersionCmdStr.
func GetVersion(ctx *cli.Context) error {
	fmt.Fprintln(outWriter(ctx), VersionCmdStr)
	return nil
}

// PrintErrWithCmdHelp prints err followed by the current command's help.
func PrintErrWithCmdHelp(ctx *cli.Context, err error) error {
	return printErrWithCallback(ctx, err, func() {
		if err := showCommandHelp(ctx, ctx.Command.Name); err != nil {
			fmt.Fprintln(errWriter(ctx), err.Error())
		}
	})
}

// PrintErrWithHelp prints err followed by the application help and exits 1.
func PrintErrWithHelp(ctx *cli.Context, err error) error {
	return printErrWithCallback(ctx, err, func() {
		showAppHelpAndExit(ctx, 1)
	})
}

func printErrWithCallback(ctx *cli.Context, err error, callback func()) error {
	if err == nil {
		return nil
	}
	estr := strings.ToLower(err.Error())
	if estr == "flag: help requested" {
		return Help(ctx)
	}
	if strings.Contains(estr, "-version") {
		return GetVersion(ctx)
	}
	fmt.Fprintf(errWriter(ctx), "%s: %s\n\n", ctx.App.HelpName, err.Error())
	callback()
	return nil
}

func outWriter(ctx *cli.Context) io.Writer {
	if ctx.App.Writer != nil {
		return ctx.App.Writer
	}
	return os.Stdout
}

func errWriter(ctx *cli.Context) io.Writer {
	if ctx.App.ErrWriter != nil {
		return ctx.App.ErrWriter
	}
	return os.Stderr
}

// UsageErrorCallback is the OnUsageError hook for the app and its commands.
func UsageErrorCallback(ctx *cli.Context, err error, _ bool) error {
	if ctx.Command.Name != "" {
		return PrintErrWithCmdHelp(ctx, err)
	}
	return PrintErrWithHelp(ctx, err)
}

// Banner prints title centred between two rules.
func Banner(w io.Writer, title string) {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, strings.TrimRight(Beaut(title, 40), " "))
	fmt.Fprintln(w, rule)
}

// PrintRecord prints a shortened view of each credential slot.
func PrintRecord(w io.Writer, rec types.Record) {
	secondary := credman.Preview(rec.SecondaryID, PreviewLen)
	if secondary == "" {
		secondary = "(not found)"
	}
	fmt.Fprintf(w, "   %s: %s\n", types.KeyPrimaryID, credman.Preview(rec.PrimaryID, PreviewLen))
	fmt.Fprintf(w, "   %s: %s\n", types.KeySecondaryID, secondary)
	fmt.Fprintf(w, "   %s: %s\n", types.KeyTimestampID, credman.Preview(rec.TimestampID, PreviewLen))
}

// Beaut centres s in a field of width n.
func Beaut(s string, n int) string {
	pad := n - len(s)
	if pad <= 0 {
		return s
	}
	w := strings.Repeat(" ", pad/2)
	b := w + s + w
	if pad%2 != 0 {
		b += " "
	}
	return b
}
