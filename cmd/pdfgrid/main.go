// Command pdfgrid is the §6 CLI surface: `run` starts the interactive
// viewer, optionally pointed at a PDF path.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/inkwell-dev/pdfgrid/clipboard"
	"github.com/inkwell-dev/pdfgrid/config"
	"github.com/inkwell-dev/pdfgrid/diagnostics"
	"github.com/inkwell-dev/pdfgrid/logpane"
	"github.com/inkwell-dev/pdfgrid/viewer"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var pdfPath string
	if len(args) > 0 {
		pdfPath = args[0]
	}

	logPane := logpane.New()
	logger := diagnostics.NewLogger(diagnostics.Config{Style: diagnostics.StyleTerminal}, logPane)
	defer logger.Sync()

	cfg := config.Config{}.ApplyDefaults()

	textSource, rasterizer, closeEngine, err := newEngine(pdfPath)
	if err != nil {
		logger.Warn("PDF engine unavailable", zap.Error(err))
	}
	if closeEngine != nil {
		defer closeEngine()
	}

	clip := clipboard.New()
	ctrl := viewer.New(cfg, logger, logPane, clip, textSource, rasterizer)

	loop, err := newEventLoop(ctrl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pdfgrid:", err)
		return 1
	}
	defer loop.Close()

	if err := loop.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "pdfgrid:", err)
		return 1
	}
	return 0
}
