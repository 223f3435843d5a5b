package magic

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// badgerLogger routes BadgerDB's printf-style logging into logr. Badger's
// info and debug chatter only shows at higher verbosity.
type badgerLogger struct {
	log logr.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(nil, msg(format, args))
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log.Info(msg(format, args), "level", "warning")
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.log.V(1).Info(msg(format, args))
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.log.V(2).Info(msg(format, args))
}

func msg(format string, args []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
