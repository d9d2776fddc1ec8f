package logging

import (
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger atomic.Pointer[zap.SugaredLogger]

func init() {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zapcore.DebugLevel)
	setCore(core)
}

// setCore replaces the sink. Level gating stays with SetLogLevel.
func setCore(core zapcore.Core) {
	baseLogger.Store(zap.New(core).Sugar())
}

// SetLogLevel parses and sets global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
}

func getLevel() LogLevel { return LogLevel(atomic.LoadInt32(&currentLevel)) }

// GetLogLevel returns current global log level.
func GetLogLevel() LogLevel { return getLevel() }

func logf(l LogLevel, format string, args ...interface{}) {
	if getLevel() > l {
		return
	}
	lg := baseLogger.Load()
	// Plain messages go through the non-formatting variants so a literal % survives.
	if len(args) == 0 {
		switch l {
		case LevelDebug:
			lg.Debug(format)
		case LevelWarn:
			lg.Warn(format)
		case LevelError:
			lg.Error(format)
		default:
			lg.Info(format)
		}
		return
	}
	switch l {
	case LevelDebug:
		lg.Debugf(format, args...)
	case LevelWarn:
		lg.Warnf(format, args...)
	case LevelError:
		lg.Errorf(format, args...)
	default:
		lg.Infof(format, args...)
	}
}

// Public helpers
func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// Sync flushes buffered log entries.
func Sync() { _ = baseLogger.Load().Sync() }

// TimeTrack logs the duration of a phase at debug level.
func TimeTrack(start time.Time, label string) {
	dur := time.Since(start)
	Debugf("%s took %s", label, dur)
}
