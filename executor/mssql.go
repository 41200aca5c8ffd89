package executor

import (
	"fmt"
	"time"

	"github.com/redberyltech/db-backup-runner/config"
)

func mssqlDumpName(db config.DatabaseConfig, now time.Time) string {
	return fmt.Sprintf("%s_%s.bak", db.Database, now.Format("20060102_150405"))
}

func mssqlCommand(db config.DatabaseConfig, dumpPath string) Command {
	server := db.Host
	if db.Instance != "" {
		server = server + `\` + db.Instance
	}
	server = fmt.Sprintf("%s,%d", server, db.Port)

	return Command{
		Name: "sqlcmd",
		Args: []string{
			"-S", server,
			"-U", db.Username,
			"-P", db.Password,
			"-b",
			"-Q", fmt.Sprintf("BACKUP DATABASE [%s] TO DISK='%s' WITH INIT", db.Database, dumpPath),
		},
	}
}
