package factory

import (
	"net"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/redberyltech/db-backup-runner/config"
	"github.com/redberyltech/db-backup-runner/executor"
	"github.com/redberyltech/db-backup-runner/notifier"
	"github.com/redberyltech/db-backup-runner/orchestrator"
	"github.com/redberyltech/db-backup-runner/runlog"
)

// BuildRunners wires one orchestrator run per configured database. The
// databases share the notifier and the run log; each run owns its result.
func BuildRunners(conf config.RunConfig, logger boshlog.Logger) ([]*orchestrator.Runner, error) {
	emailNotifier := notifier.NewSMTPNotifier(conf.SMTP, logger)
	runLogger := runlog.NewAppender(conf.LogFilePath)

	var runners []*orchestrator.Runner
	for _, db := range conf.Databases {
		executable, err := executor.NewDatabaseBackup(db, logger, time.Now)
		if err != nil {
			return nil, err
		}

		runners = append(runners, orchestrator.NewRunner(
			runnerConfig(conf, db.Name()),
			executable,
			emailNotifier,
			runLogger,
			logger,
			time.Now,
			net.DialTimeout,
		))
	}

	return runners, nil
}

func BuildPreflight(conf config.RunConfig, logger boshlog.Logger) *orchestrator.Preflight {
	return orchestrator.NewPreflight(runnerConfig(conf, "pre-backup-check"), logger, net.DialTimeout)
}

func runnerConfig(conf config.RunConfig, runName string) orchestrator.Config {
	return orchestrator.Config{
		RunName:             runName,
		WorkingDirectory:    conf.WorkingDirectory,
		DependencySpecPath:  conf.DependencySpecPath,
		ConnectivityTarget:  conf.ConnectivityTarget,
		ConnectivityTimeout: conf.ConnectivityTimeout,
		NotifyOnFailure:     conf.NotifyOnFailure,
		NotifyOnSuccess:     conf.NotifyOnSuccess,
	}
}
