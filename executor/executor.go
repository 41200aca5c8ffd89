package executor

// Executable is one unit of work for an Executor; Executor runs batches of
// them, serially or in parallel, collecting every error.
type Executable interface {
	Execute() error
}

type Executor interface {
	Run([][]Executable) []error
}

func NewSerialExecutor() SerialExecutor {
	return SerialExecutor{}
}

type SerialExecutor struct {
}

func (s SerialExecutor) Run(executablesList [][]Executable) []error {
	var errs []error
	for _, executables := range executablesList {
		for _, executable := range executables {
			if err := executable.Execute(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errs
}

func NewParallelExecutor() ParallelExecutor {
	return ParallelExecutor{}
}

type ParallelExecutor struct {
}

func (p ParallelExecutor) Run(executablesList [][]Executable) []error {
	var errs []error
	for _, executables := range executablesList {
		errChan := make(chan error, len(executables))

		for _, executable := range executables {
			go func(executable Executable) {
				errChan <- executable.Execute()
			}(executable)
		}

		for range executables {
			if err := <-errChan; err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errs
}
