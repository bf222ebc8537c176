package logger

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// prettyEncoder renders a console line with a colored level and appends
// structured fields as indented JSON below it.
type prettyEncoder struct {
	zapcore.Encoder
	jsonEncoder zapcore.Encoder
	pool        buffer.Pool
}

func newPrettyEncoder(encoderConfig zapcore.EncoderConfig) zapcore.Encoder {
	return &prettyEncoder{
		Encoder:     zapcore.NewConsoleEncoder(encoderConfig),
		jsonEncoder: zapcore.NewJSONEncoder(encoderConfig),
		pool:        buffer.NewPool(),
	}
}

// Clone keeps derived loggers on the pretty encoder.
func (e *prettyEncoder) Clone() zapcore.Encoder {
	return &prettyEncoder{
		Encoder:     e.Encoder.Clone(),
		jsonEncoder: e.jsonEncoder.Clone(),
		pool:        e.pool,
	}
}

func (e *prettyEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	head, err := e.Encoder.EncodeEntry(entry, nil)
	if err != nil {
		return nil, err
	}
	line := colorizeLevel(strings.TrimRight(head.String(), "\n"), entry.Level)
	head.Free()

	fieldBuf, err := e.jsonEncoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}
	defer fieldBuf.Free()

	var payload map[string]any
	if json.Unmarshal(fieldBuf.Bytes(), &payload) == nil {
		for _, k := range []string{messageKey, levelKey, timeKey, nameKey} {
			delete(payload, k)
		}
		if len(payload) > 0 {
			if pretty, marshalErr := json.MarshalIndent(payload, "", "  "); marshalErr == nil {
				line += "\n" + string(pretty)
			}
		}
	}

	buf := e.pool.Get()
	buf.AppendString(line)
	buf.AppendString("\n")
	return buf, nil
}

func colorizeLevel(line string, level zapcore.Level) string {
	var c *color.Color
	switch level {
	case zapcore.DebugLevel:
		c = color.New(color.FgCyan)
	case zapcore.InfoLevel:
		c = color.New(color.FgGreen)
	case zapcore.WarnLevel:
		c = color.New(color.FgYellow)
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		c = color.New(color.FgRed, color.Bold)
	case zapcore.InvalidLevel:
		c = color.New(color.FgMagenta)
	default:
		return line
	}

	capLevel := level.CapitalString()
	if strings.Contains(line, capLevel) {
		return strings.Replace(line, capLevel, c.Sprint(capLevel), 1)
	}
	return line
}
