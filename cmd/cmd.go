package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"
	"github.com/warpdl/cookiesave/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "cookiesave",
		HelpName:              "cookiesave",
		Usage:                 "Save Gemini session cookies for the sync server.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "cookiesave [command] [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Writer:                stdout,
		ErrWriter:             stderr,
		Commands: []cli.Command{
			{
				Name:                   "save",
				Aliases:                []string{"s"},
				Usage:                  "extract the session cookies and save them",
				Description:            SaveDescription,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Action:                 save,
				UseShortOptionHandling: true,
				Flags:                  saveFlags(),
			},
			{
				Name:               "show",
				Aliases:            []string{"sh"},
				Usage:              "display the saved cookie record",
				Description:        ShowDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             show,
				Flags:              recordFlags(),
			},
			{
				Name:               "env",
				Aliases:            []string{"e"},
				Usage:              "print the saved record as shell exports",
				Description:        EnvDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             env,
				Flags:              recordFlags(),
			},
			{
				Name:                   "export",
				Aliases:                []string{"x"},
				Usage:                  "write a cookies.txt from a browser cookie store",
				Description:            ExportDescription,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Action:                 export,
				UseShortOptionHandling: true,
				Flags:                  exportFlags(),
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of cookiesave",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 save,
		Flags:                  saveFlags(),
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
