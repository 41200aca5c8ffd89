package fakes

import (
	"sync"

	"github.com/redberyltech/db-backup-runner/orchestrator"
)

type notifyArgs struct {
	Subject  string
	Body     string
	Severity orchestrator.Severity
}

type FakeNotifier struct {
	NotifyStub func(subject, body string, severity orchestrator.Severity) error

	mutex        sync.Mutex
	argsForCall  []notifyArgs
	returnsError error
}

func (fake *FakeNotifier) Notify(subject, body string, severity orchestrator.Severity) error {
	fake.mutex.Lock()
	fake.argsForCall = append(fake.argsForCall, notifyArgs{subject, body, severity})
	stub := fake.NotifyStub
	err := fake.returnsError
	fake.mutex.Unlock()

	if stub != nil {
		return stub(subject, body, severity)
	}
	return err
}

func (fake *FakeNotifier) NotifyCallCount() int {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	return len(fake.argsForCall)
}

func (fake *FakeNotifier) NotifyArgsForCall(i int) (string, string, orchestrator.Severity) {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	args := fake.argsForCall[i]
	return args.Subject, args.Body, args.Severity
}

func (fake *FakeNotifier) NotifyReturns(err error) {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	fake.returnsError = err
}
