//go:build !rp2040 && !rp2350

package logx

import (
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfg = zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.InfoLevel),
		Development: false,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stdout"},
	}
	levels = &levelSet{
		byName: make(map[string]zap.AtomicLevel),
		def:    zap.InfoLevel,
	}
)

type levelSet struct {
	mu     sync.Mutex
	byName map[string]zap.AtomicLevel
	def    zapcore.Level
}

// atomicFor returns the shared level for name, creating it at the default.
func (ls *levelSet) atomicFor(name string) zap.AtomicLevel {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if l, ok := ls.byName[name]; ok {
		return l
	}
	l := zap.NewAtomicLevelAt(ls.def)
	ls.byName[name] = l
	return l
}

// SetLevel changes the level of one named logger; an empty name changes every
// existing logger and the default for loggers created later.
func SetLevel(name string, level Level) {
	zl := zapcore.Level(level)
	if name != "" {
		levels.atomicFor(name).SetLevel(zl)
		return
	}
	levels.mu.Lock()
	levels.def = zl
	for _, l := range levels.byName {
		l.SetLevel(zl)
	}
	levels.mu.Unlock()
}

// GetLevel reports the current level of a named logger.
func GetLevel(name string) Level {
	return Level(levels.atomicFor(name).Level())
}

// SetOutput is a no-op on host builds; zap writes to stdout.
func SetOutput(io.Writer) {}

type zapLogger struct {
	s *zap.SugaredLogger
}

// New returns a named logger. Loggers with the same name share one level.
func New(name string) Logger {
	c := cfg
	c.Level = levels.atomicFor(name)
	l := zap.Must(c.Build(zap.AddStacktrace(zapcore.PanicLevel), zap.AddCallerSkip(1)))
	return zapLogger{s: l.Named(name).Sugar()}
}

func (z zapLogger) Debug(msg string, kv ...any) { z.s.Debugw(msg, kv...) }
func (z zapLogger) Info(msg string, kv ...any)  { z.s.Infow(msg, kv...) }
func (z zapLogger) Warn(msg string, kv ...any)  { z.s.Warnw(msg, kv...) }
func (z zapLogger) Error(msg string, kv ...any) { z.s.Errorw(msg, kv...) }
