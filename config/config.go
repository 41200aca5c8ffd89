package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

type DatabaseType string

const (
	Postgres DatabaseType = "POSTGRES"
	MSSQL    DatabaseType = "MSSQL"
)

// RunConfig is built once at process start from the properties file plus
// optional overrides, and is immutable afterwards.
type RunConfig struct {
	WorkingDirectory    string
	LogFilePath         string
	DependencySpecPath  string
	ConnectivityTarget  string
	ConnectivityTimeout time.Duration
	NotifyOnFailure     bool
	NotifyOnSuccess     bool
	Databases           []DatabaseConfig
	SMTP                SMTPConfig
}

type DatabaseConfig struct {
	Type        DatabaseType
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	Instance    string
	BackupPath  string
	RetainCount int
}

func (db DatabaseConfig) Name() string {
	return fmt.Sprintf("%s (%s)", db.Database, db.Type)
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	AppPassword string
	From        string
	Recipients  []string
}

// Overrides carries the optional command-line/environment overrides; empty
// fields leave the file value in place.
type Overrides struct {
	WorkingDirectory   string
	DependencySpecPath string
}

func Load(path string, overrides Overrides) (RunConfig, error) {
	file, err := ini.Load(path)
	if err != nil {
		return RunConfig{}, errors.Wrapf(err, "failed reading config %s", path)
	}

	run := file.Section("RUN")
	backup := file.Section("BACKUP")
	notification := file.Section("NOTIFICATION")

	smtp := SMTPConfig{
		Host:        notification.Key("smtp_host").MustString("smtp.gmail.com"),
		Port:        notification.Key("smtp_port").MustInt(587),
		Username:    notification.Key("username").String(),
		AppPassword: notification.Key("app_password").String(),
		From:        notification.Key("sender_email").String(),
		Recipients:  splitRecipients(notification.Key("recipient_emails").String()),
	}
	if smtp.From == "" {
		smtp.From = smtp.Username
	}

	conf := RunConfig{
		WorkingDirectory:    run.Key("working_directory").MustString("."),
		LogFilePath:         run.Key("log_file_path").MustString("backup_service.log"),
		DependencySpecPath:  run.Key("dependency_spec_path").MustString("requirements.txt"),
		ConnectivityTarget:  run.Key("connectivity_target").MustString(fmt.Sprintf("%s:%d", smtp.Host, smtp.Port)),
		ConnectivityTimeout: time.Duration(run.Key("connectivity_timeout_seconds").MustInt(10)) * time.Second,
		NotifyOnFailure:     run.Key("notify_on_failure").MustBool(true),
		NotifyOnSuccess:     run.Key("notify_on_success").MustBool(false),
		SMTP:                smtp,
	}

	if overrides.WorkingDirectory != "" {
		conf.WorkingDirectory = overrides.WorkingDirectory
	}
	if overrides.DependencySpecPath != "" {
		conf.DependencySpecPath = overrides.DependencySpecPath
	}

	defaultBackupPath := backup.Key("default_backup_path").MustString("/backups")
	defaultRetainCount := backup.Key("retain_count").MustInt(5)

	for _, section := range file.Sections() {
		if !strings.HasPrefix(section.Name(), "DATABASE") {
			continue
		}

		database, err := readDatabase(section, backup, defaultBackupPath, defaultRetainCount)
		if err != nil {
			return RunConfig{}, err
		}
		conf.Databases = append(conf.Databases, database)
	}

	if len(conf.Databases) == 0 {
		return RunConfig{}, errors.Errorf("config %s has no [DATABASE] sections", path)
	}

	return conf, nil
}

func readDatabase(section, backup *ini.Section, defaultBackupPath string, defaultRetainCount int) (DatabaseConfig, error) {
	sectionKey := strings.ToLower(section.Name())

	databaseType, err := parseDatabaseType(section.Key("type").MustString(string(Postgres)))
	if err != nil {
		return DatabaseConfig{}, errors.Wrapf(err, "config section %s", section.Name())
	}

	database := DatabaseConfig{
		Type:        databaseType,
		Host:        section.Key("host").String(),
		Port:        section.Key("port").MustInt(defaultPort(databaseType)),
		Username:    section.Key("username").String(),
		Password:    section.Key("password").String(),
		Database:    section.Key("database").String(),
		Instance:    section.Key("instance").String(),
		BackupPath:  backup.Key("backup_path_" + sectionKey).MustString(defaultBackupPath),
		RetainCount: backup.Key("retain_count_" + sectionKey).MustInt(defaultRetainCount),
	}

	if database.Host == "" {
		return DatabaseConfig{}, errors.Errorf("config section %s is missing host", section.Name())
	}
	if database.Database == "" {
		return DatabaseConfig{}, errors.Errorf("config section %s is missing database", section.Name())
	}

	return database, nil
}

func parseDatabaseType(value string) (DatabaseType, error) {
	switch DatabaseType(strings.ToUpper(value)) {
	case Postgres:
		return Postgres, nil
	case MSSQL:
		return MSSQL, nil
	default:
		return "", errors.Errorf("unknown database type %q", value)
	}
}

func defaultPort(databaseType DatabaseType) int {
	if databaseType == MSSQL {
		return 1433
	}
	return 5432
}

func splitRecipients(value string) []string {
	var recipients []string
	for _, recipient := range strings.Split(value, ",") {
		recipient = strings.TrimSpace(recipient)
		if recipient != "" {
			recipients = append(recipients, recipient)
		}
	}
	return recipients
}
