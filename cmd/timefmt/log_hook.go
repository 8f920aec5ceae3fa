package main

import (
	"os"
	"path"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bytom/timefmt/cmd/timefmt/commands"
)

const (
	logrusPackage = "github.com/sirupsen/logrus"
	defaultModule = "cmd"
	maxFrames     = 16
)

// ContextHook tags debug entries with the active rendering engine and the
// first caller outside logrus.
type ContextHook struct {
	engine func() string
}

func newContextHook(engine func() string) ContextHook {
	return ContextHook{engine: engine}
}

func (hook ContextHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook ContextHook) Fire(entry *log.Entry) error {
	if _, ok := entry.Data["module"]; !ok {
		entry.Data["module"] = defaultModule
	}
	if _, ok := entry.Data["engine"]; !ok && hook.engine != nil {
		entry.Data["engine"] = hook.engine()
	}

	pc := make([]uintptr, maxFrames)
	frames := runtime.CallersFrames(pc[:runtime.Callers(2, pc)])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, logrusPackage) {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["func"] = path.Base(frame.Function)
			entry.Data["line"] = frame.Line
			break
		}
		if !more {
			break
		}
	}
	return nil
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// TIMEFMT_DEBUG turns on debug entries with caller context
	if os.Getenv("TIMEFMT_DEBUG") != "" {
		log.AddHook(newContextHook(commands.EngineName))
		log.SetLevel(log.DebugLevel)
	}
}
