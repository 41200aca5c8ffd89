package executor_test

import (
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/redberyltech/db-backup-runner/executor"
)

var _ = Describe("ProcessExecutable", func() {
	It("captures output and a zero exit code on success", func() {
		process := executor.NewProcessExecutable(executor.Command{
			Name: "sh",
			Args: []string{"-c", "echo backing up"},
		})

		execution, err := process.Execute()
		Expect(err).NotTo(HaveOccurred())
		Expect(execution.ExitCode).To(Equal(0))
		Expect(execution.Output).To(Equal("backing up\n"))
		Expect(execution.StderrExcerpt).To(BeEmpty())
	})

	It("reports a non-zero exit through the execution, not the error", func() {
		process := executor.NewProcessExecutable(executor.Command{
			Name: "sh",
			Args: []string{"-c", "echo progress; echo boom >&2; exit 3"},
		})

		execution, err := process.Execute()
		Expect(err).NotTo(HaveOccurred())
		Expect(execution.ExitCode).To(Equal(3))
		Expect(execution.Output).To(ContainSubstring("progress"))
		Expect(execution.Output).To(ContainSubstring("boom"))
		Expect(execution.StderrExcerpt).To(Equal("boom"))
	})

	It("keeps only the tail of a long stderr stream", func() {
		process := executor.NewProcessExecutable(executor.Command{
			Name: "sh",
			Args: []string{"-c", "for i in $(seq 1 30); do echo line $i >&2; done; exit 1"},
		})

		execution, err := process.Execute()
		Expect(err).NotTo(HaveOccurred())
		Expect(execution.StderrExcerpt).NotTo(ContainSubstring("line 10\n"))
		Expect(execution.StderrExcerpt).To(ContainSubstring("line 11"))
		Expect(execution.StderrExcerpt).To(ContainSubstring("line 30"))
	})

	It("captures heavy interleaved stdout and stderr without losing writes", func() {
		process := executor.NewProcessExecutable(executor.Command{
			Name: "sh",
			Args: []string{"-c", "for i in $(seq 1 2000); do echo out $i; echo err $i >&2; done"},
		})

		execution, err := process.Execute()
		Expect(err).NotTo(HaveOccurred())
		Expect(execution.ExitCode).To(Equal(0))
		Expect(strings.Count(execution.Output, "out ")).To(Equal(2000))
		Expect(strings.Count(execution.Output, "err ")).To(Equal(2000))
		Expect(execution.Output).To(ContainSubstring("out 2000\n"))
		Expect(execution.Output).To(ContainSubstring("err 2000\n"))
	})

	It("runs the command in the configured directory", func() {
		dir, err := os.MkdirTemp("", "dbr-process-test")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		process := executor.NewProcessExecutable(executor.Command{
			Name: "sh",
			Args: []string{"-c", "pwd"},
			Dir:  dir,
		})

		execution, err := process.Execute()
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.TrimSpace(execution.Output)).To(Equal(dir))
	})

	It("passes extra environment variables to the command", func() {
		process := executor.NewProcessExecutable(executor.Command{
			Name: "sh",
			Args: []string{"-c", "echo $BACKUP_MARKER"},
			Env:  []string{"BACKUP_MARKER=from-test"},
		})

		execution, err := process.Execute()
		Expect(err).NotTo(HaveOccurred())
		Expect(execution.Output).To(Equal("from-test\n"))
	})

	It("returns an error when the command cannot start", func() {
		process := executor.NewProcessExecutable(executor.Command{
			Name: "definitely-not-an-installed-binary",
		})

		execution, err := process.Execute()
		Expect(err).To(HaveOccurred())
		Expect(execution.ExitCode).To(Equal(-1))
	})
})

var _ = Describe("Executors", func() {
	It("runs executables serially, collecting every error", func() {
		var order []string
		ok := stubExecutable{name: "ok", order: &order}
		bad := stubExecutable{name: "bad", order: &order, err: errStub}

		errs := executor.NewSerialExecutor().Run([][]executor.Executable{{ok, bad, ok}})
		Expect(errs).To(HaveLen(1))
		Expect(order).To(Equal([]string{"ok", "bad", "ok"}))
	})

	It("runs a batch in parallel and collects every error", func() {
		var mu syncList
		ok := parallelStub{list: &mu}
		bad := parallelStub{list: &mu, err: errStub}

		errs := executor.NewParallelExecutor().Run([][]executor.Executable{{ok, bad, ok, bad}})
		Expect(errs).To(HaveLen(2))
		Expect(mu.Len()).To(Equal(4))
	})
})
