package command

import (
	"github.com/mgutz/ansi"
	"github.com/urfave/cli"

	"github.com/redberyltech/db-backup-runner/config"
	"github.com/redberyltech/db-backup-runner/orchestrator"
)

func loadConfig(c *cli.Context) (config.RunConfig, error) {
	return config.Load(c.GlobalString("config"), config.Overrides{
		WorkingDirectory:   c.GlobalString("working-directory"),
		DependencySpecPath: c.GlobalString("dependency-spec"),
	})
}

func processError(errs orchestrator.Error) error {
	exitCode, errorMessage := orchestrator.ProcessError(errs)
	return cli.NewExitError(errorMessage, exitCode)
}

// preFlightError renders configuration failures in red with the reserved
// pre-flight exit code, keeping them distinct from executor failures.
func preFlightError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), orchestrator.ExitCodePreFlightFailure)
}
