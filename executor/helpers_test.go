package executor_test

import (
	"sync"

	"github.com/pkg/errors"
)

var errStub = errors.New("executable failed")

type stubExecutable struct {
	name  string
	order *[]string
	err   error
}

func (s stubExecutable) Execute() error {
	*s.order = append(*s.order, s.name)
	return s.err
}

type syncList struct {
	mutex sync.Mutex
	items int
}

func (l *syncList) Add() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.items++
}

func (l *syncList) Len() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.items
}

type parallelStub struct {
	list *syncList
	err  error
}

func (p parallelStub) Execute() error {
	p.list.Add()
	return p.err
}
