package viewer

import "errors"

// Sentinel errors for the §7 error kinds raised by the extraction path: no
// text source at all, or a text source that failed or returned nothing.
var (
	ErrInputUnavailable  = errors.New("input unavailable")
	ErrExtractionFailure = errors.New("extraction failure")
)

// describeError converts an extraction-path error into the single-line
// status text shown on the status line (§7); an error it does not recognise
// is shown with its own message. The other handlers (copy, cut, paste,
// export, zoom, file picker) set their status text directly.
func describeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInputUnavailable):
		return "Input unavailable"
	case errors.Is(err, ErrExtractionFailure):
		return "Extraction failed"
	default:
		return "Error: " + err.Error()
	}
}
