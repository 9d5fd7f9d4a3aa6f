package cmd

import "github.com/urfave/cli"

func inputFlag() cli.Flag {
	return cli.StringFlag{
		Name:   "input, i",
		Usage:  "exported Netscape cookies file to read",
		EnvVar: EnvInput,
		Value:  DefaultInputPath(),
	}
}

func outputFlag() cli.Flag {
	return cli.StringFlag{
		Name:   "output, o",
		Usage:  "credential record file (.json, .yaml or .yml)",
		EnvVar: EnvOutput,
		Value:  DefaultOutputPath(),
	}
}

var (
	debugFlag = cli.BoolFlag{
		Name:   "debug, d",
		Usage:  "log what is being read and skipped to stderr",
		EnvVar: EnvDebug,
	}
	logFileFlag = cli.StringFlag{
		Name:   "log-file",
		Usage:  "also write logs to this file, rotated at 1MB",
		EnvVar: EnvLogFile,
	}
)

func saveFlags() []cli.Flag {
	return []cli.Flag{inputFlag(), outputFlag(), debugFlag, logFileFlag}
}

func recordFlags() []cli.Flag {
	return []cli.Flag{outputFlag(), debugFlag, logFileFlag}
}

var (
	exportFrom   string
	exportTo     string
	exportDomain string
)

func exportFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:        "from, f",
			Usage:       "cookie store to read: Firefox cookies.sqlite, Chromium Cookies or cookies.txt",
			Destination: &exportFrom,
		},
		cli.StringFlag{
			Name:        "to, t",
			Usage:       "Netscape file to write (default: stdout)",
			Destination: &exportTo,
		},
		cli.StringFlag{
			Name:        "domain",
			Usage:       "cookie domain to keep",
			Value:       DefaultDomain,
			Destination: &exportDomain,
		},
		debugFlag,
		logFileFlag,
	}
}
