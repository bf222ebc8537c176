package logger

import (
	"os"

	"github.com/code19m/errx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	timeKey    = "time"
	callerKey  = "caller"

	encPretty  = "pretty"
	levelDebug = "debug"
	outStderr  = "stderr"
)

// Config configures a Logger.
type Config struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `yaml:"level" validate:"oneof=debug info warn error" default:"debug"`

	// Encoding is "pretty" for colored console lines with indented fields, handy when
	// watching a device session locally, or "json" for log shippers.
	Encoding string `yaml:"encoding" validate:"oneof=json pretty" default:"pretty"`

	// Output is the stream entries go to. Tools that print results on stdout set stderr.
	Output string `yaml:"output" validate:"oneof=stdout stderr" default:"stdout"`

	// Caller adds the file:line of the log call to every entry.
	Caller bool `yaml:"caller" default:"false"`

	// Disable turns the logger into a no-op.
	Disable bool `yaml:"disable" default:"false"`
}

func (c Config) sink() zapcore.WriteSyncer {
	if c.Output == outStderr {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.Lock(os.Stdout)
}

func (c Config) options() []zap.Option {
	opts := []zap.Option{zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if c.Caller {
		// skip the logger wrapper frame
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	return opts
}

func (c Config) encoderConfig() zapcore.EncoderConfig {
	ec := zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		TimeKey:        timeKey,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if c.Caller {
		ec.CallerKey = callerKey
		ec.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return ec
}

// core builds the zap core for c.
func (c Config) core() (zapcore.Core, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"level": c.Level}))
	}

	var enc zapcore.Encoder
	if c.Encoding == encPretty {
		enc = newPrettyEncoder(c.encoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(c.encoderConfig())
	}

	return zapcore.NewCore(enc, c.sink(), level), nil
}
