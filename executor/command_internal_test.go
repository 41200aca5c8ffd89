package executor

import (
	"os"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/redberyltech/db-backup-runner/config"
	"github.com/redberyltech/db-backup-runner/orchestrator"
	"github.com/redberyltech/db-backup-runner/orchestrator/fakes"
	"github.com/redberyltech/db-backup-runner/storage"
)

var _ = Describe("database commands", func() {
	now := time.Date(2024, 3, 1, 2, 30, 45, 0, time.UTC)

	Describe("postgres", func() {
		db := config.DatabaseConfig{
			Type:     config.Postgres,
			Host:     "db1.internal",
			Port:     5433,
			Username: "backup",
			Password: "pgpass",
			Database: "orders",
		}

		It("names dumps after the database and timestamp", func() {
			Expect(postgresDumpName(db, now)).To(Equal("orders_20240301_023045.dump"))
		})

		It("builds a pg_dump invocation with the password in the environment", func() {
			command := postgresCommand(db, "/backups/orders_20240301_023045.dump")
			Expect(command.Name).To(Equal("pg_dump"))
			Expect(command.Args).To(Equal([]string{
				"-h", "db1.internal",
				"-p", "5433",
				"-U", "backup",
				"-F", "c",
				"-b",
				"-f", "/backups/orders_20240301_023045.dump",
				"orders",
			}))
			Expect(command.Env).To(ConsistOf("PGPASSWORD=pgpass"))
			Expect(command.Args).NotTo(ContainElement("pgpass"))
		})
	})

	Describe("mssql", func() {
		db := config.DatabaseConfig{
			Type:     config.MSSQL,
			Host:     "db2.internal",
			Port:     1433,
			Username: "sa",
			Password: "mspass",
			Database: "reporting",
			Instance: "REPORTS",
		}

		It("names dumps with the .bak suffix", func() {
			Expect(mssqlDumpName(db, now)).To(Equal("reporting_20240301_023045.bak"))
		})

		It("builds a sqlcmd invocation addressing the named instance", func() {
			command := mssqlCommand(db, "/backups/reporting_20240301_023045.bak")
			Expect(command.Name).To(Equal("sqlcmd"))
			Expect(command.Args).To(ContainElement(`db2.internal\REPORTS,1433`))
			Expect(command.Args).To(ContainElement("BACKUP DATABASE [reporting] TO DISK='/backups/reporting_20240301_023045.bak' WITH INIT"))
		})

		It("omits the instance separator for the default instance", func() {
			plain := db
			plain.Instance = ""
			command := mssqlCommand(plain, "/backups/r.bak")
			Expect(command.Args).To(ContainElement("db2.internal,1433"))
		})
	})

	Describe("NewDatabaseBackup", func() {
		It("rejects unknown database types", func() {
			_, err := NewDatabaseBackup(config.DatabaseConfig{Type: "ORACLE"}, nil, time.Now)
			Expect(err).To(MatchError(ContainSubstring(`no backup executor registered for database type "ORACLE"`)))
		})
	})

	Describe("DatabaseBackup", func() {
		It("runs the dump command in the resolved working directory", func() {
			workDir, err := os.MkdirTemp("", "dbr-backup-workdir")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, workDir)

			backupDir, err := os.MkdirTemp("", "dbr-backup-store")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, backupDir)

			backup := &DatabaseBackup{
				db:    config.DatabaseConfig{Database: "orders", BackupPath: backupDir},
				store: storage.NewBackupDirectory(backupDir, "orders"),
				buildCommand: func(db config.DatabaseConfig, dumpPath string) Command {
					return Command{Name: "sh", Args: []string{"-c", "pwd"}}
				},
				dumpName: postgresDumpName,
				nowFunc:  time.Now,
				logger:   new(fakes.FakeLogger),
			}

			execution, err := backup.Execute(orchestrator.Environment{WorkingDirectory: workDir})
			Expect(err).NotTo(HaveOccurred())
			Expect(execution.ExitCode).To(Equal(0))
			Expect(strings.TrimSpace(execution.Output)).To(Equal(workDir))
		})
	})
})

var _ = Describe("tailExcerpt", func() {
	It("returns short input unchanged", func() {
		Expect(tailExcerpt("one\ntwo\n", 20, 4096)).To(Equal("one\ntwo"))
	})

	It("keeps only the last lines", func() {
		Expect(tailExcerpt("a\nb\nc\nd\n", 2, 4096)).To(Equal("c\nd"))
	})

	It("caps the excerpt size and drops the partial leading line", func() {
		Expect(tailExcerpt("aaaa\nbbbb", 20, 6)).To(Equal("bbbb"))
	})

	It("keeps a capped slice of a single over-long line", func() {
		excerpt := tailExcerpt("xxxxxxxxxx", 20, 6)
		Expect(excerpt).To(Equal("xxxxxx"))
	})

	It("is empty for empty input", func() {
		Expect(tailExcerpt("", 20, 4096)).To(BeEmpty())
	})
})
