package orchestrator

import "time"

// Config is everything one run needs that isn't a collaborator: the
// resolved run name plus the pre-flight and notification settings.
type Config struct {
	RunName             string
	WorkingDirectory    string
	DependencySpecPath  string
	ConnectivityTarget  string
	ConnectivityTimeout time.Duration
	NotifyOnFailure     bool
	NotifyOnSuccess     bool
}

// Runner executes one complete, logged backup attempt: prepare the
// environment, probe connectivity, run the executor once, notify, and
// append to the run log. There is no retry loop; re-invocation on a
// schedule is an external scheduler's responsibility.
type Runner struct {
	workflow *Workflow
	runName  string
}

func NewRunner(
	conf Config,
	executable Executable,
	notifier Notifier,
	runLogger RunLogger,
	logger Logger,
	nowFunc func() time.Time,
	dial DialFunc,
) *Runner {
	prepare := NewPrepareStep(conf.WorkingDirectory, conf.DependencySpecPath, logger)
	connectivity := NewConnectivityStep(conf.ConnectivityTarget, conf.ConnectivityTimeout, dial, logger)
	execute := NewExecuteStep(executable, nowFunc, logger)
	notify := NewNotifyStep(notifier, conf.NotifyOnFailure, conf.NotifyOnSuccess, logger)
	appendLog := NewAppendLogStep(runLogger, nowFunc, logger)

	workflow := NewWorkflow()
	workflow.StartWith(prepare).OnSuccess(connectivity).OnFailure(notify)
	workflow.Add(connectivity).OnSuccess(execute)
	workflow.Add(execute).OnSuccessOrFailure(notify)
	workflow.Add(notify).OnSuccessOrFailure(appendLog)
	workflow.Add(appendLog)

	return &Runner{workflow: workflow, runName: conf.RunName}
}

// Run performs exactly one attempt and produces exactly one RunResult,
// whether the run succeeded or failed at any stage.
func (r *Runner) Run() (RunResult, Error) {
	session := NewSession(r.runName)
	errs := r.workflow.Run(session)
	return *session.Result(), errs
}

// Preflight runs only the prepare and connectivity steps; the executor is
// never invoked.
type Preflight struct {
	workflow *Workflow
	runName  string
}

func NewPreflight(conf Config, logger Logger, dial DialFunc) *Preflight {
	prepare := NewPrepareStep(conf.WorkingDirectory, conf.DependencySpecPath, logger)
	connectivity := NewConnectivityStep(conf.ConnectivityTarget, conf.ConnectivityTimeout, dial, logger)

	workflow := NewWorkflow()
	workflow.StartWith(prepare).OnSuccess(connectivity)
	workflow.Add(connectivity)

	return &Preflight{workflow: workflow, runName: conf.RunName}
}

func (p *Preflight) Check() (RunResult, Error) {
	session := NewSession(p.runName)
	errs := p.workflow.Run(session)
	return *session.Result(), errs
}
