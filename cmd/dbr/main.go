package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/redberyltech/db-backup-runner/cli/command"
)

var version string

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "DB Backup Runner"
	app.HelpName = "dbr"
	app.Usage = "Run one logged backup attempt per configured database"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Value:  "application.properties",
			EnvVar: "DBR_CONFIG_PATH",
			Usage:  "Path to the properties config file",
		},
		cli.StringFlag{
			Name:   "working-directory, w",
			Value:  "",
			EnvVar: "DBR_WORKING_DIR",
			Usage:  "Override the configured working directory",
		},
		cli.StringFlag{
			Name:   "dependency-spec",
			Value:  "",
			EnvVar: "DBR_DEPENDENCY_SPEC",
			Usage:  "Override the configured dependency spec path",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
	}

	app.Commands = []cli.Command{
		command.NewRunCommand().Cli(),
		command.NewPreBackupCheckCommand().Cli(),
		{
			Name:  "version",
			Usage: "",
			Action: func(c *cli.Context) error {
				cli.ShowVersion(c)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
