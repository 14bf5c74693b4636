package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/phroun/direct-key-handler/keyboard"
	"golang.org/x/term"

	"github.com/inkwell-dev/pdfgrid/theme"
	"github.com/inkwell-dev/pdfgrid/viewer"
)

// eventLoop drives the §4.6 single-threaded cooperative event loop: poll
// input with a short bounded timeout so cursor blink can advance, process
// at most one event, redraw. Grounded on the teacher's cli.Terminal
// Start/Stop and InputHandler.InputLoop, replacing PTY output with the
// viewer's own Screen back-buffer.
type eventLoop struct {
	ctrl *viewer.Controller
	kb   *keyboard.Handler
	keys chan string

	stdinFd  int
	oldState *term.State
}

func newEventLoop(ctrl *viewer.Controller) (*eventLoop, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	loop := &eventLoop{ctrl: ctrl, keys: make(chan string, 64), stdinFd: fd, oldState: oldState}

	manageTerminal := false
	loop.kb = keyboard.New(keyboard.Options{
		InputReader:    os.Stdin,
		ManageTerminal: &manageTerminal,
	})
	loop.kb.OnKey = func(key string) {
		select {
		case loop.keys <- key:
		default:
		}
	}
	if err := loop.kb.Start(); err != nil {
		term.Restore(fd, oldState)
		return nil, fmt.Errorf("start keyboard handler: %w", err)
	}

	fmt.Print("\033[?25l\033[?1049h\033[2J\033[H")
	fmt.Print("\033[?1000h\033[?1002h\033[?1006h")
	return loop, nil
}

// Close restores the host terminal to its original state.
func (l *eventLoop) Close() error {
	l.kb.Stop()
	fmt.Print("\033[?1002l\033[?1000l\033[?1006l")
	fmt.Print("\033[?1049l\033[?25h")
	return term.Restore(l.stdinFd, l.oldState)
}

// Run processes events until Ctrl+Q quits.
func (l *eventLoop) Run() error {
	for {
		w, h, err := term.GetSize(l.stdinFd)
		if err != nil {
			w, h = 80, 24
		}

		select {
		case key := <-l.keys:
			if ev, ok := decodeMouseSGR(key); ok {
				l.ctrl.HandleMouse(ev)
			} else {
				l.ctrl.HandleKey(key)
			}
		case <-time.After(50 * time.Millisecond):
		}

		l.ctrl.Tick()
		if l.ctrl.Quit() {
			return nil
		}

		screen := viewer.NewScreen(w, h)
		l.ctrl.Draw(screen)
		renderScreen(screen)
	}
}

// renderScreen flattens a Screen into ANSI escapes and writes it in one
// shot. No differential rendering: the teacher's cli.Renderer tracks
// lastRender for that, but this viewer's redraw budget (one frame per
// 50ms poll) doesn't need it.
func renderScreen(s *viewer.Screen) {
	var buf bytes.Buffer
	buf.WriteString("\033[H")

	var lastFg, lastBg theme.Color
	first := true
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.At(x, y)
			if first || cell.Fg != lastFg || cell.Bg != lastBg {
				fmt.Fprintf(&buf, "\033[%s;%sm", cell.Fg.ToSGRCode(true), cell.Bg.ToSGRCode(false))
				lastFg, lastBg = cell.Fg, cell.Bg
				first = false
			}
			if cell.Reverse {
				buf.WriteString("\033[7m")
			}
			ch := cell.Char
			if ch == 0 {
				ch = ' '
			}
			buf.WriteRune(ch)
			if cell.Reverse {
				buf.WriteString("\033[27m")
			}
		}
		buf.WriteString("\033[0m\r\n")
	}
	os.Stdout.Write(buf.Bytes())
}
