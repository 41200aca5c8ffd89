package factory

import (
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

func BuildLogger(debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, os.Stdout)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, os.Stdout)
}
