package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial window client area size.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithFullscreen requests a fullscreen window on the primary monitor.
// The configured size is ignored in fullscreen mode; the monitor's current
// video mode is used instead.
//
// Parameters:
//   - fullscreen: if true, the window covers the primary monitor
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithFullscreen(fullscreen bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.fullscreen = fullscreen
	}
}

// WithVsync requests vertical sync for surface presentation.
//
// Parameters:
//   - vsync: if true, presentation waits for the display's vertical blank
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithVsync(vsync bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.vsync = vsync
	}
}

// WithMinSize sets the minimum window size enforced during interactive resize.
//
// Parameters:
//   - width: minimum width in pixels
//   - height: minimum height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = width
		w.minHeight = height
	}
}
