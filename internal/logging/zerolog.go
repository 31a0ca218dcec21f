package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface. It is the
// backend used by the CLI entrypoint to write the application log file.
type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

// NewZerolog returns a ZerologLogger writing to w, tagged with the service
// name and timestamped.
func NewZerolog(service string, w io.Writer) *ZerologLogger {
	l := zerolog.New(w).With().
		Str("service", service).
		Timestamp().
		Logger()
	return NewZerologLogger(l)
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.l.Debug().Fields(pairsToFields(args)).Msg(msg)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.l.Info().Fields(pairsToFields(args)).Msg(msg)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.l.Warn().Fields(pairsToFields(args)).Msg(msg)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.l.Error().Fields(pairsToFields(args)).Msg(msg)
}

func (z *ZerologLogger) With(args ...any) Logger {
	l := z.l.With().Fields(pairsToFields(args)).Logger()
	return &ZerologLogger{l: l}
}

// pairsToFields converts variadic key–value pairs into a map for zerolog.
// A trailing key without a value is kept with an empty value rather than
// dropped, so mistakes stay visible in the output.
func pairsToFields(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	fields := make(map[string]any, len(args)/2+1)
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		if i+1 < len(args) {
			fields[key] = args[i+1]
		} else {
			fields[key] = ""
		}
	}
	return fields
}
