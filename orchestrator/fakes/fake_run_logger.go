package fakes

import (
	"sync"

	"github.com/redberyltech/db-backup-runner/orchestrator"
)

type appendArgs struct {
	Result   orchestrator.RunResult
	ExitCode int
}

type FakeRunLogger struct {
	AppendStub func(result orchestrator.RunResult, exitCode int) error

	mutex        sync.Mutex
	argsForCall  []appendArgs
	returnsError error
}

func (fake *FakeRunLogger) Append(result orchestrator.RunResult, exitCode int) error {
	fake.mutex.Lock()
	fake.argsForCall = append(fake.argsForCall, appendArgs{result, exitCode})
	stub := fake.AppendStub
	err := fake.returnsError
	fake.mutex.Unlock()

	if stub != nil {
		return stub(result, exitCode)
	}
	return err
}

func (fake *FakeRunLogger) AppendCallCount() int {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	return len(fake.argsForCall)
}

func (fake *FakeRunLogger) AppendArgsForCall(i int) (orchestrator.RunResult, int) {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	args := fake.argsForCall[i]
	return args.Result, args.ExitCode
}

func (fake *FakeRunLogger) AppendReturns(err error) {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	fake.returnsError = err
}
