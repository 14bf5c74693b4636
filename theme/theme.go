package theme

// Theme defines the colors used by the viewer for both dark and light
// display modes, toggled by a dedicated key (spec §4.6).
type Theme struct {
	Name string

	DarkForeground Color
	DarkBackground Color

	LightForeground Color
	LightBackground Color

	Cursor       Color
	Selection    Color
	LineNumber   Color
	StatusBar    Color
	LogPaneTitle Color
}

// Foreground returns the foreground color for the given mode.
func (t Theme) Foreground(dark bool) Color {
	if dark {
		return t.DarkForeground
	}
	return t.LightForeground
}

// Background returns the background color for the given mode.
func (t Theme) Background(dark bool) Color {
	if dark {
		return t.DarkBackground
	}
	return t.LightBackground
}

// Default returns the built-in dark/light theme pair.
func Default() Theme {
	return Theme{
		Name:            "default",
		DarkForeground:  TrueColor(212, 212, 212),
		DarkBackground:  TrueColor(30, 30, 30),
		LightForeground: TrueColor(30, 30, 30),
		LightBackground: TrueColor(255, 255, 255),
		Cursor:          TrueColor(255, 255, 255),
		Selection:       TrueColor(68, 68, 68),
		LineNumber:      StandardColor(8),
		StatusBar:       StandardColor(4),
		LogPaneTitle:    StandardColor(3),
	}
}
