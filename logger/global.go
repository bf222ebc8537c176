package logger

import (
	"context"
	"sync"
	"sync/atomic"
)

//nolint:gochecknoglobals // the global logger singleton
var (
	global   atomic.Value // stores Logger
	setOnce  sync.Once
	initOnce sync.Once
)

// SetGlobal configures the global logger. It must be called at most once,
// during startup and before the first log call; a second call panics.
func SetGlobal(cfg Config) {
	called := false
	setOnce.Do(func() {
		initOnce.Do(func() {})

		l, err := newLogger(cfg)
		if err != nil {
			panic("[logger]: failed to initialize global logger: " + err.Error())
		}
		global.Store(l)
		called = true
	})
	if !called {
		panic("[logger]: SetGlobal can only be called once")
	}
}

// Global returns the global logger, creating a pretty debug logger on first use
// when SetGlobal was never called.
func Global() Logger {
	if l, ok := global.Load().(Logger); ok {
		return l
	}

	initOnce.Do(func() {
		l, err := newLogger(Config{Level: levelDebug, Encoding: encPretty})
		if err != nil {
			panic("[logger]: failed to initialize default logger: " + err.Error())
		}
		global.Store(l)
	})

	l, ok := global.Load().(Logger)
	if !ok {
		panic("[logger]: global contains invalid type after initialization")
	}
	return l
}

// Info logs a message at info level using the global logger.
func Info(msg any) { Global().Info(msg) }

// Warn logs a message at warn level using the global logger.
func Warn(msg any) { Global().Warn(msg) }

// Error logs a message at error level using the global logger.
func Error(msg any) { Global().Error(msg) }

// Errorx logs an errx.ErrorX instance at error level using the global logger.
func Errorx(err error) { Global().Errorx(err) }

// Fatalx logs an errx.ErrorX instance at fatal level using the global logger and then calls os.Exit(1).
func Fatalx(err error) { Global().Fatalx(err) }

// With creates a child of the global logger carrying the given key-value pairs.
func With(keysAndValues ...any) Logger { return Global().With(keysAndValues...) }

// WithContext creates a child of the global logger enriched with context metadata.
func WithContext(ctx context.Context) Logger { return Global().WithContext(ctx) }

// Named adds a sub-scope to the global logger's name.
func Named(name string) Logger { return Global().Named(name) }

// Sync flushes any buffered log entries from the global logger.
func Sync() error { return Global().Sync() }
