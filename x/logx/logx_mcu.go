//go:build rp2040 || rp2350

package logx

import (
	"io"
	"sync"
	"time"

	"pedsignal-go/x/conv"
)

var (
	mu     sync.Mutex
	out    io.Writer // optional mirror, e.g. a diagnostics UART
	def    = LevelInfo
	byName = map[string]Level{}
	line   [192]byte
)

// SetLevel changes one named logger; an empty name changes all of them.
func SetLevel(name string, level Level) {
	mu.Lock()
	defer mu.Unlock()
	if name != "" {
		byName[name] = level
		return
	}
	def = level
	for k := range byName {
		byName[k] = level
	}
}

func GetLevel(name string) Level {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := byName[name]; ok {
		return l
	}
	return def
}

// SetOutput mirrors every line to w in addition to the USB console.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

type mcuLogger struct{ name string }

func New(name string) Logger { return mcuLogger{name: name} }

func (l mcuLogger) Debug(msg string, kv ...any) { l.log(LevelDebug, msg, kv) }
func (l mcuLogger) Info(msg string, kv ...any)  { l.log(LevelInfo, msg, kv) }
func (l mcuLogger) Warn(msg string, kv ...any)  { l.log(LevelWarn, msg, kv) }
func (l mcuLogger) Error(msg string, kv ...any) { l.log(LevelError, msg, kv) }

func (l mcuLogger) log(lvl Level, msg string, kv []any) {
	if lvl < GetLevel(l.name) {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	b := line[:0]
	b = append(b, '[')
	b = append(b, l.name...)
	b = append(b, "] "...)
	if lvl != LevelInfo {
		b = append(b, lvl.String()...)
		b = append(b, ": "...)
	}
	b = append(b, msg...)
	for i := 0; i+1 < len(kv); i += 2 {
		b = append(b, ' ')
		if k, ok := kv[i].(string); ok {
			b = append(b, k...)
		}
		b = append(b, '=')
		b = appendValue(b, kv[i+1])
	}
	println(string(b))
	if out != nil {
		b = append(b, '\r', '\n')
		_, _ = out.Write(b)
	}
}

func appendValue(b []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(b, x...)
	case int:
		return conv.AppendInt(b, int64(x))
	case int64:
		return conv.AppendInt(b, x)
	case int32:
		return conv.AppendInt(b, int64(x))
	case uint8:
		return conv.AppendUint(b, uint64(x))
	case uint16:
		return conv.AppendUint(b, uint64(x))
	case uint32:
		return conv.AppendUint(b, uint64(x))
	case uint64:
		return conv.AppendUint(b, x)
	case bool:
		return conv.AppendBool(b, x)
	case time.Duration:
		return append(conv.AppendInt(b, x.Milliseconds()), "ms"...)
	case error:
		return append(b, x.Error()...)
	case interface{ String() string }:
		return append(b, x.String()...)
	default:
		return append(b, '?')
	}
}
