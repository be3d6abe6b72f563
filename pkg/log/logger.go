package log

import (
	"io"
	"os"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// The logger format
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// The internal leveled logger backend
var leveledBackend logging.LeveledBackend

// The active level, kept across sink changes
var currentLevel = logging.NOTICE

// The logger interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Override the backend output sink.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(currentLevel, "")
	logging.SetBackend(leveledBackend)
}

// Set logger verbosity.
func SetLevel(level Level) {
	switch level {
	case Debug:
		currentLevel = logging.DEBUG
	case Info:
		currentLevel = logging.INFO
	case Notice:
		currentLevel = logging.NOTICE
	case Warning:
		currentLevel = logging.WARNING
	case Error:
		currentLevel = logging.ERROR
	}

	leveledBackend.SetLevel(currentLevel, "")
}

// coreLogger forwards Printf style progress messages at info level
type coreLogger struct {
	logger Logger
}

func (l coreLogger) Printf(format string, args ...interface{}) {
	l.logger.Infof(strings.TrimRight(format, "\n"), args...)
}

// AsCoreLogger adapts a Logger to the core.Logger seam used by the renderer
func AsCoreLogger(logger Logger) core.Logger {
	return coreLogger{logger: logger}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
