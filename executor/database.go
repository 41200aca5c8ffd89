package executor

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/redberyltech/db-backup-runner/config"
	"github.com/redberyltech/db-backup-runner/orchestrator"
	"github.com/redberyltech/db-backup-runner/storage"
)

type commandBuilder func(db config.DatabaseConfig, dumpPath string) Command
type dumpNamer func(db config.DatabaseConfig, now time.Time) string

// DatabaseBackup is the concrete backup executor for one configured
// database: it dumps the database into the backup directory with the
// engine's native tool and prunes dumps beyond the retain count after a
// successful run.
type DatabaseBackup struct {
	db           config.DatabaseConfig
	store        *storage.BackupDirectory
	buildCommand commandBuilder
	dumpName     dumpNamer
	nowFunc      func() time.Time
	logger       orchestrator.Logger
}

func NewDatabaseBackup(db config.DatabaseConfig, logger orchestrator.Logger, nowFunc func() time.Time) (*DatabaseBackup, error) {
	backup := &DatabaseBackup{
		db:      db,
		store:   storage.NewBackupDirectory(db.BackupPath, db.Database),
		nowFunc: nowFunc,
		logger:  logger,
	}

	switch db.Type {
	case config.Postgres:
		backup.buildCommand = postgresCommand
		backup.dumpName = postgresDumpName
	case config.MSSQL:
		backup.buildCommand = mssqlCommand
		backup.dumpName = mssqlDumpName
	default:
		return nil, errors.Errorf("no backup executor registered for database type %q", db.Type)
	}

	return backup, nil
}

func (b *DatabaseBackup) Execute(env orchestrator.Environment) (orchestrator.Execution, error) {
	if err := b.store.Ensure(); err != nil {
		return orchestrator.Execution{ExitCode: -1}, err
	}

	dumpPath := filepath.Join(b.store.Path(), b.dumpName(b.db, b.nowFunc()))
	command := b.buildCommand(b.db, dumpPath)
	command.Dir = env.WorkingDirectory
	process := NewProcessExecutable(command)

	execution, err := process.Execute()
	if err != nil || execution.ExitCode != 0 {
		return execution, err
	}

	b.logger.Info("dbr", "Backup of %s completed: %s", b.db.Name(), dumpPath)
	if pruneErr := b.store.Prune(b.db.RetainCount, b.logger); pruneErr != nil {
		b.logger.Warn("dbr", "Failed pruning old backups of %s: %s", b.db.Name(), pruneErr)
	}

	return execution, nil
}
