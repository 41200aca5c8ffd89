package fakes

import (
	"fmt"
	"sync"
)

type logLine struct {
	Level   string
	Tag     string
	Message string
}

type FakeLogger struct {
	mutex sync.Mutex
	lines []logLine
}

func (fake *FakeLogger) Debug(tag, msg string, args ...interface{}) {
	fake.record("debug", tag, msg, args...)
}

func (fake *FakeLogger) Info(tag, msg string, args ...interface{}) {
	fake.record("info", tag, msg, args...)
}

func (fake *FakeLogger) Warn(tag, msg string, args ...interface{}) {
	fake.record("warn", tag, msg, args...)
}

func (fake *FakeLogger) Error(tag, msg string, args ...interface{}) {
	fake.record("error", tag, msg, args...)
}

func (fake *FakeLogger) record(level, tag, msg string, args ...interface{}) {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	fake.lines = append(fake.lines, logLine{level, tag, fmt.Sprintf(msg, args...)})
}

// Messages returns the formatted messages logged at the given level.
func (fake *FakeLogger) Messages(level string) []string {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	var messages []string
	for _, line := range fake.lines {
		if line.Level == level {
			messages = append(messages, line.Message)
		}
	}
	return messages
}
