package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
)

type PrepareStep struct {
	workingDirectory   string
	dependencySpecPath string
	logger             Logger
}

func NewPrepareStep(workingDirectory, dependencySpecPath string, logger Logger) Step {
	return &PrepareStep{
		workingDirectory:   workingDirectory,
		dependencySpecPath: dependencySpecPath,
		logger:             logger,
	}
}

func (s *PrepareStep) Run(session *Session) error {
	s.logger.Debug("dbr", "Resolving working directory %s", s.workingDirectory)

	workingDirectory, err := resolveDirectory(s.workingDirectory)
	if err != nil {
		return s.fail(session, err)
	}

	dependencySpecPath := s.dependencySpecPath
	if !filepath.IsAbs(dependencySpecPath) {
		dependencySpecPath = filepath.Join(workingDirectory, dependencySpecPath)
	}
	if err := checkReadableFile(dependencySpecPath); err != nil {
		return s.fail(session, err)
	}

	session.SetEnvironment(Environment{
		WorkingDirectory:   workingDirectory,
		DependencySpecPath: dependencySpecPath,
	})

	return nil
}

func (s *PrepareStep) fail(session *Session, err error) error {
	configErr := NewConfigError(err.Error())
	session.SetPrepareError(configErr)
	s.logger.Error("dbr", "Pre-flight checks failed: %s", err)
	return configErr
}

func resolveDirectory(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("working directory %s is missing or unreadable: %s", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("working directory %s is not a directory", path)
	}

	handle, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("working directory %s is not readable: %s", path, err)
	}
	handle.Close()

	return filepath.Abs(path)
}

func checkReadableFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("dependency spec %s is missing or unreadable: %s", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("dependency spec %s is a directory", path)
	}

	handle, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dependency spec %s is not readable: %s", path, err)
	}
	handle.Close()

	return nil
}
