package diagnostics

import (
	"testing"

	"go.uber.org/zap"

	"github.com/inkwell-dev/pdfgrid/logpane"
)

func TestNewLoggerNoopProducesNoPaneWrites(t *testing.T) {
	pane := logpane.New()
	logger := NewLogger(Config{Style: StyleNoop}, pane)
	logger.Info("hello")
	if pane.Len() != 0 {
		t.Fatalf("pane.Len() = %d, want 0 for noop style", pane.Len())
	}
}

func TestNewLoggerTerminalWritesToPane(t *testing.T) {
	pane := logpane.New()
	logger := NewLogger(Config{Style: StyleTerminal, Level: "info"}, pane)
	logger.Info("opened document", zap.Int("pages", 3))
	if pane.Len() == 0 {
		t.Fatal("pane.Len() = 0, want at least one line written")
	}
}

func TestConfigResolvedDefaults(t *testing.T) {
	c := Config{}.resolved()
	if c.Style != StyleTerminal || c.Level != "info" {
		t.Fatalf("resolved() = %+v, want terminal/info defaults", c)
	}
}
