// Package diagnostics wires up structured logging (§4.8, component C8):
// every log record is written both to the process's stderr stream and
// appended to the in-viewer log pane, so the same diagnostics a developer
// sees on the terminal are also visible inside the running editor.
package diagnostics

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/inkwell-dev/pdfgrid/logpane"
)

// Style selects the log encoding, mirroring the teacher stack's logging
// styles.
type Style string

const (
	StyleTerminal Style = "terminal"
	StyleJSON     Style = "json"
	StyleNoop     Style = "noop"
)

// Config controls logger construction.
type Config struct {
	Style Style
	Level string
}

func (c Config) resolved() Config {
	if c.Style == "" {
		c.Style = StyleTerminal
	}
	if c.Level == "" {
		c.Level = "info"
	}
	return c
}

// NewLogger builds a zap logger per cfg. When pane is non-nil every record
// is also appended to it, rendered line by line.
func NewLogger(cfg Config, pane *logpane.Pane) *zap.Logger {
	cfg = cfg.resolved()

	logLevel := zapcore.InfoLevel
	if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
		logLevel = lvl
	}

	var encoder zapcore.Encoder
	switch cfg.Style {
	case StyleNoop:
		return zap.NewNop()
	case StyleJSON:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case StyleTerminal:
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		log.Fatalf("diagnostics: invalid logging style %q: must be one of terminal, json, noop", cfg.Style)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), logLevel)}
	if pane != nil {
		paneEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		cores = append(cores, zapcore.NewCore(paneEncoder, paneSync{pane}, logLevel))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

// paneSync adapts a logpane.Pane to zapcore.WriteSyncer, splitting each
// write into whole log-pane lines.
type paneSync struct {
	pane *logpane.Pane
}

func (w paneSync) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.pane.Append(line)
	}
	return len(p), nil
}

func (w paneSync) Sync() error { return nil }
