package command

const runLogAdvisedNotice = "The run log is the source of truth for diagnosing this run; inspect it before re-running."
