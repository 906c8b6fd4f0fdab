package gologger

import (
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

// RunIDKey carries the id of a single CLI run or recipe execution.
const RunIDKey ctxKey = "runID"

func init() {
	zerolog.SetGlobalLevel(levelFromEnv())
	l := NewLogger()
	zerolog.DefaultContextLogger = &l
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		function := ""
		fun := runtime.FuncForPC(pc)
		if fun != nil {
			funName := fun.Name()
			slash := strings.LastIndex(funName, "/")
			if slash > 0 {
				funName = funName[slash+1:]
			}
			function = " " + funName + "()"
		}
		return file + ":" + strconv.Itoa(line) + function
	}
}

// NewLogger writes to stderr. Stdout is reserved for table output.
func NewLogger() zerolog.Logger {
	return NewLoggerTo(os.Stderr)
}

func NewLoggerTo(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "time"

	logger := zerolog.New(w).With().Timestamp().Logger()

	logger = logger.Hook(CallerHook{})

	if os.Getenv("PRETTY") == "1" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: w})
	}

	return logger
}

// levelFromEnv picks the global level once, at init. Later loggers must not
// undo a level set at runtime (the CLI's --verbose).
func levelFromEnv() zerolog.Level {
	level := zerolog.InfoLevel
	if os.Getenv("DEBUG") == "1" {
		level = zerolog.DebugLevel
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := zerolog.ParseLevel(lvl); err == nil {
			level = parsed
		}
	}
	return level
}

type CallerHook struct{}

func (h CallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Caller(3)
}
