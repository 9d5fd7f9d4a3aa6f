package cmd

import (
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"github.com/warpdl/cookiesave/pkg/logger"
)

// Swapped out by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	now              = time.Now
	fsys   afero.Fs  = afero.NewOsFs()
)

// newLogger builds the console logger, fanned out to a rotating file when
// --log-file is set.
func newLogger(ctx *cli.Context) logger.Logger {
	console := logger.NewConsoleLogger(stderr, ctx.Bool("debug"))
	path := ctx.String("log-file")
	if path == "" {
		return console
	}
	return logger.NewMultiLogger(
		console,
		logger.NewFileLogger(logger.DefaultLogRotationConfig(path)),
	)
}
