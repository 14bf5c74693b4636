package main

import (
	"strconv"
	"strings"

	"github.com/inkwell-dev/pdfgrid/viewer"
)

// sgrMouseModMask isolates the modifier/motion bits xterm packs into the
// button field of an SGR mouse report: bit 2 (4) is shift, bit 3 (8) is
// meta, bit 4 (16) is ctrl, bit 5 (32) marks a motion (drag) report rather
// than a press/release. The low two bits carry the button number.
const (
	sgrShiftBit  = 4
	sgrMotionBit = 32
)

// decodeMouseSGR parses an xterm SGR extended mouse report, the format
// enabled by "\033[?1000h\033[?1006h" in newEventLoop: "\033[<Cb;Cx;Cy"
// followed by 'M' on press/motion or 'm' on release. direct-key-handler has
// no named key for a CSI "<" sequence, so it forwards the raw bytes
// unchanged through OnKey; this is the only place those bytes are
// interpreted. Coordinates are 1-based in the wire format and are returned
// 0-based to match viewer.Screen.
func decodeMouseSGR(s string) (viewer.MouseEvent, bool) {
	if !strings.HasPrefix(s, "\x1b[<") || len(s) < 4 {
		return viewer.MouseEvent{}, false
	}
	body := s[3:]
	suffix := body[len(body)-1]
	if suffix != 'M' && suffix != 'm' {
		return viewer.MouseEvent{}, false
	}
	parts := strings.Split(body[:len(body)-1], ";")
	if len(parts) != 3 {
		return viewer.MouseEvent{}, false
	}
	cb, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return viewer.MouseEvent{}, false
	}
	return viewer.MouseEvent{
		X:       x - 1,
		Y:       y - 1,
		Button:  cb &^ (sgrShiftBit | 8 | 16 | sgrMotionBit),
		Pressed: suffix == 'M',
		Shift:   cb&sgrShiftBit != 0,
		Motion:  cb&sgrMotionBit != 0,
	}, true
}
