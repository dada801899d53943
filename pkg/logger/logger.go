package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `envconfig:"LOG_LEVEL"`
	// Sink is a file path, empty means stdout.
	Sink string `envconfig:"LOG_SINK"`
}

var errOutput io.Writer = os.Stderr

// NewLogger returns the logger and a func closing its sink.
// A sink that cannot be opened is reported on stderr and replaced by stdout.
func NewLogger(cfg Log, name string) (*zap.Logger, func()) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	ws := zapcore.Lock(os.Stdout)
	closeSink := func() {}
	if cfg.Sink != "" {
		sink, closeFn, err := zap.Open(cfg.Sink)
		if err != nil {
			fmt.Fprintf(errOutput, "logger: open sink %q: %v, falling back to stdout\n", cfg.Sink, err)
		} else {
			ws, closeSink = sink, closeFn
		}
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zap.NewAtomicLevelAt(cfg.LogLevel))
	log := zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.AddSync(errOutput))).Named(name)
	return log, func() {
		_ = log.Sync()
		closeSink()
	}
}
