package fakes

import (
	"sync"

	"github.com/redberyltech/db-backup-runner/orchestrator"
)

type FakeExecutable struct {
	ExecuteStub func(env orchestrator.Environment) (orchestrator.Execution, error)

	mutex        sync.Mutex
	argsForCall  []orchestrator.Environment
	returnsExec  orchestrator.Execution
	returnsError error
}

func (fake *FakeExecutable) Execute(env orchestrator.Environment) (orchestrator.Execution, error) {
	fake.mutex.Lock()
	fake.argsForCall = append(fake.argsForCall, env)
	stub := fake.ExecuteStub
	execution, err := fake.returnsExec, fake.returnsError
	fake.mutex.Unlock()

	if stub != nil {
		return stub(env)
	}
	return execution, err
}

func (fake *FakeExecutable) ExecuteCallCount() int {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	return len(fake.argsForCall)
}

func (fake *FakeExecutable) ExecuteArgsForCall(i int) orchestrator.Environment {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	return fake.argsForCall[i]
}

func (fake *FakeExecutable) ExecuteReturns(execution orchestrator.Execution, err error) {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	fake.returnsExec = execution
	fake.returnsError = err
}
