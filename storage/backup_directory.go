package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type Logger interface {
	Info(tag, msg string, args ...interface{})
	Warn(tag, msg string, args ...interface{})
}

// BackupDirectory holds the dumps of one database on the local filesystem.
// Dump names embed a sortable timestamp, so lexical order is age order.
type BackupDirectory struct {
	path     string
	database string
}

func NewBackupDirectory(path, database string) *BackupDirectory {
	return &BackupDirectory{path: path, database: database}
}

func (d *BackupDirectory) Path() string {
	return d.path
}

func (d *BackupDirectory) Ensure() error {
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return errors.Wrapf(err, "failed creating backup directory %s", d.path)
	}
	return nil
}

// List returns this database's dumps, oldest first.
func (d *BackupDirectory) List() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading backup directory %s", d.path)
	}

	var dumps []string
	for _, entry := range entries {
		if !entry.IsDir() && d.isDump(entry.Name()) {
			dumps = append(dumps, entry.Name())
		}
	}
	sort.Strings(dumps)

	return dumps, nil
}

func (d *BackupDirectory) Delete(name string) error {
	if err := os.Remove(filepath.Join(d.path, name)); err != nil {
		return errors.Wrapf(err, "failed deleting backup %s", name)
	}
	return nil
}

// Prune deletes the oldest dumps beyond retainCount. Individual deletion
// failures are warnings; a retain count of zero or less keeps everything.
func (d *BackupDirectory) Prune(retainCount int, logger Logger) error {
	if retainCount <= 0 {
		return nil
	}

	dumps, err := d.List()
	if err != nil {
		return err
	}
	if len(dumps) <= retainCount {
		return nil
	}

	for _, name := range dumps[:len(dumps)-retainCount] {
		logger.Info("dbr", "Deleting old backup %s", name)
		if err := d.Delete(name); err != nil {
			logger.Warn("dbr", "Failed to delete old backup %s: %s", name, err)
		}
	}

	return nil
}

func (d *BackupDirectory) isDump(name string) bool {
	if !strings.HasPrefix(name, d.database+"_") {
		return false
	}
	return strings.HasSuffix(name, ".dump") ||
		strings.HasSuffix(name, ".bak") ||
		strings.HasSuffix(name, ".sql")
}
