package log

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"

	"github.com/bytom/timefmt/config"
)

const (
	rotationTime int64 = 86400
	maxAge       int64 = 604800

	// rotation suffix, expanded with strftime
	rotationPattern = ".%Y%m%d"
)

var defaultFormatter = &logrus.TextFormatter{DisableColors: true}

// InitLogFile sends every log entry to per module files under the
// configured log dir instead of stderr.
func InitLogFile(config *config.Config) error {
	logPath := config.LogDir()
	if err := clearLockFiles(logPath); err != nil {
		return err
	}

	hook := NewFileHook(logPath)
	logrus.AddHook(hook)
	logrus.WithFields(logrus.Fields{"module": "log", "dir": logPath}).Info("all logs are output in the log directory")
	logrus.SetOutput(ioutil.Discard)
	return nil
}

// SetLevel parses and applies a logrus level.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}

// FileHook writes each entry to "<dir>/<module>.YYYYMMDD", where module is
// the entry's "module" field.
type FileHook struct {
	logPath string
	lock    *sync.Mutex
	clock   rotatelogs.Clock
}

func NewFileHook(logPath string) *FileHook {
	return &FileHook{logPath: logPath, lock: new(sync.Mutex), clock: rotatelogs.Local}
}

// SetClock sets the clock that picks the file suffix.
func (hook *FileHook) SetClock(clock rotatelogs.Clock) {
	hook.lock.Lock()
	hook.clock = clock
	hook.lock.Unlock()
}

// Write a log line to an io.Writer.
func (hook *FileHook) ioWrite(entry *logrus.Entry) error {
	module := "general"
	if data, ok := entry.Data["module"]; ok {
		module = fmt.Sprint(data)
	}

	logPath := filepath.Join(hook.logPath, module)
	writer, err := rotatelogs.New(
		logPath+rotationPattern,
		rotatelogs.WithClock(hook.clock),
		rotatelogs.WithMaxAge(time.Duration(maxAge)*time.Second),
		rotatelogs.WithRotationTime(time.Duration(rotationTime)*time.Second),
	)
	if err != nil {
		return err
	}

	msg, err := defaultFormatter.Format(entry)
	if err != nil {
		return err
	}

	if _, err = writer.Write(msg); err != nil {
		return err
	}

	return writer.Close()
}

func clearLockFiles(logPath string) error {
	files, err := ioutil.ReadDir(logPath)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	for _, file := range files {
		if ok := strings.HasSuffix(file.Name(), "_lock"); ok {
			if err := os.Remove(filepath.Join(logPath, file.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

func (hook *FileHook) Fire(entry *logrus.Entry) error {
	hook.lock.Lock()
	defer hook.lock.Unlock()
	return hook.ioWrite(entry)
}

// Levels returns configured log levels.
func (hook *FileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
