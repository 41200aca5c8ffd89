package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/redberyltech/db-backup-runner/executor"
	"github.com/redberyltech/db-backup-runner/factory"
	"github.com/redberyltech/db-backup-runner/orchestrator"
)

type RunCommand struct {
}

func NewRunCommand() RunCommand {
	return RunCommand{}
}

func (r RunCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Execute one backup attempt for every configured database",
		Action:  r.Action,
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "parallel",
				Usage: "Back up databases in parallel",
			},
		},
	}
}

func (r RunCommand) Action(c *cli.Context) error {
	logger := factory.BuildLogger(c.GlobalBool("debug"))

	conf, err := loadConfig(c)
	if err != nil {
		return preFlightError(err)
	}

	runners, err := factory.BuildRunners(conf, logger)
	if err != nil {
		return preFlightError(err)
	}

	outcomes := make([]runOutcome, len(runners))
	executables := make([]executor.Executable, len(runners))
	for i, runner := range runners {
		executables[i] = &runExecutable{runner: runner, outcome: &outcomes[i]}
	}

	var exec executor.Executor = executor.NewSerialExecutor()
	if c.Bool("parallel") {
		exec = executor.NewParallelExecutor()
	}
	exec.Run([][]executor.Executable{executables})

	exitCode := 0
	var messages []string
	for i, outcome := range outcomes {
		code, message := orchestrator.ProcessError(outcome.errs)
		if code == 0 {
			duration := outcome.result.EndTime.Sub(outcome.result.StartTime).Round(time.Second)
			fmt.Printf("Backup of %s completed in %s.\n", conf.Databases[i].Name(), duration)
			continue
		}
		exitCode |= code
		messages = append(messages, message)
	}

	if exitCode == 0 {
		return cli.NewExitError("", 0)
	}

	messages = append(messages, runLogAdvisedNotice)
	return cli.NewExitError(strings.Join(messages, "\n"), exitCode)
}

type runOutcome struct {
	result orchestrator.RunResult
	errs   orchestrator.Error
}

// runExecutable adapts one orchestrator run to the executor contract; each
// instance writes into its own outcome slot, so parallel runs never share
// mutable state.
type runExecutable struct {
	runner  *orchestrator.Runner
	outcome *runOutcome
}

func (e *runExecutable) Execute() error {
	result, errs := e.runner.Run()
	e.outcome.result = result
	e.outcome.errs = errs
	if errs.IsNil() {
		return nil
	}
	return errs
}
