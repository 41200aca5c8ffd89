package command

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/redberyltech/db-backup-runner/factory"
)

type PreBackupCheckCommand struct {
}

func NewPreBackupCheckCommand() PreBackupCheckCommand {
	return PreBackupCheckCommand{}
}

func (p PreBackupCheckCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "pre-backup-check",
		Aliases: []string{"c"},
		Usage:   "Validate configuration and probe connectivity without backing anything up",
		Action:  p.Action,
	}
}

func (p PreBackupCheckCommand) Action(c *cli.Context) error {
	logger := factory.BuildLogger(c.GlobalBool("debug"))

	conf, err := loadConfig(c)
	if err != nil {
		return preFlightError(err)
	}

	result, errs := factory.BuildPreflight(conf, logger).Check()
	if !errs.IsNil() {
		return processError(errs)
	}

	if result.ConnectivityOK {
		fmt.Printf("Pre-flight checks passed, %d database(s) configured.\n", len(conf.Databases))
	} else {
		fmt.Println("Pre-flight checks passed, but the connectivity probe failed; notifications may not be deliverable.")
	}
	return cli.NewExitError("", 0)
}
