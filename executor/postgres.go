package executor

import (
	"fmt"
	"time"

	"github.com/redberyltech/db-backup-runner/config"
)

func postgresDumpName(db config.DatabaseConfig, now time.Time) string {
	return fmt.Sprintf("%s_%s.dump", db.Database, now.Format("20060102_150405"))
}

// postgresCommand builds the pg_dump invocation for a custom-format dump.
// The password travels via PGPASSWORD rather than the command line.
func postgresCommand(db config.DatabaseConfig, dumpPath string) Command {
	return Command{
		Name: "pg_dump",
		Args: []string{
			"-h", db.Host,
			"-p", fmt.Sprintf("%d", db.Port),
			"-U", db.Username,
			"-F", "c",
			"-b",
			"-f", dumpPath,
			db.Database,
		},
		Env: []string{"PGPASSWORD=" + db.Password},
	}
}
