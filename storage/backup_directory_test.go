package storage_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/redberyltech/db-backup-runner/orchestrator/fakes"
	"github.com/redberyltech/db-backup-runner/storage"
)

var _ = Describe("BackupDirectory", func() {
	var (
		baseDir   string
		directory *storage.BackupDirectory
		logger    *fakes.FakeLogger
	)

	touch := func(name string) {
		Expect(os.WriteFile(filepath.Join(baseDir, name), []byte("dump"), 0644)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		baseDir, err = os.MkdirTemp("", "dbr-storage-test")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, baseDir)

		directory = storage.NewBackupDirectory(baseDir, "orders")
		logger = new(fakes.FakeLogger)
	})

	Describe("Ensure", func() {
		It("creates a missing directory", func() {
			nested := storage.NewBackupDirectory(filepath.Join(baseDir, "a", "b"), "orders")
			Expect(nested.Ensure()).To(Succeed())
			Expect(filepath.Join(baseDir, "a", "b")).To(BeADirectory())
		})
	})

	Describe("List", func() {
		It("returns only this database's dumps, oldest first", func() {
			touch("orders_20240103_000000.dump")
			touch("orders_20240101_000000.dump")
			touch("orders_20240102_000000.bak")
			touch("reporting_20240101_000000.dump")
			touch("orders_20240104_000000.txt")
			touch("unrelated.log")

			Expect(directory.List()).To(Equal([]string{
				"orders_20240101_000000.dump",
				"orders_20240102_000000.bak",
				"orders_20240103_000000.dump",
			}))
		})

		It("fails when the directory is unreadable", func() {
			missing := storage.NewBackupDirectory(filepath.Join(baseDir, "gone"), "orders")
			_, err := missing.List()
			Expect(err).To(MatchError(ContainSubstring("failed reading backup directory")))
		})
	})

	Describe("Prune", func() {
		BeforeEach(func() {
			touch("orders_20240101_000000.dump")
			touch("orders_20240102_000000.dump")
			touch("orders_20240103_000000.dump")
			touch("orders_20240104_000000.dump")
		})

		It("deletes the oldest dumps beyond the retain count", func() {
			Expect(directory.Prune(2, logger)).To(Succeed())
			Expect(directory.List()).To(Equal([]string{
				"orders_20240103_000000.dump",
				"orders_20240104_000000.dump",
			}))
		})

		It("keeps everything when within the retain count", func() {
			Expect(directory.Prune(10, logger)).To(Succeed())
			dumps, err := directory.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(dumps).To(HaveLen(4))
		})

		It("treats a non-positive retain count as unlimited", func() {
			Expect(directory.Prune(0, logger)).To(Succeed())
			dumps, err := directory.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(dumps).To(HaveLen(4))
		})

		It("never touches other databases' dumps", func() {
			touch("reporting_20231201_000000.dump")
			Expect(directory.Prune(1, logger)).To(Succeed())
			Expect(filepath.Join(baseDir, "reporting_20231201_000000.dump")).To(BeAnExistingFile())
		})
	})
})
