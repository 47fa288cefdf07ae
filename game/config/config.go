// Package config loads and saves the client's TOML settings. Malformed
// settings fail loudly at startup: the game must not run with corrupt
// configuration. A missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings is the loaded client configuration.
type Settings struct {
	Graphics GraphicsSettings `toml:"graphics"`
	Input    InputSettings    `toml:"input"`
}

// GraphicsSettings configures windowing and rendering. Values are stored as
// human-readable strings (resolution "1280x720", backend "AUTO").
type GraphicsSettings struct {
	// WindowResolution is the window size in the form "<width>x<height>".
	WindowResolution string `toml:"window_resolution"`
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool `toml:"fullscreen"`
	// Vsync enables vertical sync.
	Vsync bool `toml:"vsync"`
	// VideoBackend requests a graphics backend: AUTO, VULKAN, DX12, METAL, GL.
	VideoBackend string `toml:"video_backend"`
}

// InputSettings maps high-level actions to human-readable key labels
// (e.g. "F1", "Space", "A"). Labels are converted to key codes at runtime
// and surfaced verbatim into the debug overlay's hotkey hints.
type InputSettings struct {
	// Inspector toggles the developer inspector overlay.
	Inspector string `toml:"inspector"`
	// SystemInfo toggles the system information overlay.
	SystemInfo string `toml:"system_info"`
	// GizmosBoxen toggles gizmo/bounding-box visualization.
	GizmosBoxen string `toml:"gizmos_boxen"`

	// MovementLeft moves the character left.
	MovementLeft string `toml:"movement_left"`
	// MovementRight moves the character right.
	MovementRight string `toml:"movement_right"`
	// MovementJump triggers a jump.
	MovementJump string `toml:"movement_jump"`

	// Interact is the context-sensitive interaction key.
	Interact string `toml:"interact"`
}

// DefaultSettings returns the settings used when no config file exists.
//
// Returns:
//   - Settings: the default configuration
func DefaultSettings() Settings {
	return Settings{
		Graphics: GraphicsSettings{
			WindowResolution: "1280x720",
			Fullscreen:       false,
			Vsync:            true,
			VideoBackend:     "AUTO",
		},
		Input: InputSettings{
			Inspector:     "F1",
			SystemInfo:    "F3",
			GizmosBoxen:   "F9",
			MovementLeft:  "A",
			MovementRight: "D",
			MovementJump:  "Space",
			Interact:      "E",
		},
	}
}

// Load reads and parses the settings file at path. A missing file yields
// the defaults; an unreadable or malformed file is an error.
//
// Parameters:
//   - path: the settings file path
//
// Returns:
//   - Settings: the loaded (or default) settings
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if _, _, err := ParseResolution(s.Graphics.WindowResolution); err != nil {
		return s, fmt.Errorf("config: %s: %w", path, err)
	}

	return s, nil
}

// MustLoad is Load with the loud startup policy: any error aborts the
// process. Use at startup only.
//
// Parameters:
//   - path: the settings file path
//
// Returns:
//   - Settings: the loaded (or default) settings
func MustLoad(path string) Settings {
	s, err := Load(path)
	if err != nil {
		panic(err)
	}
	return s
}

// Save writes the settings back to path as TOML.
//
// Parameters:
//   - path: the destination file path
//
// Returns:
//   - error: error if encoding or writing fails
func Save(path string, s Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}

// ParseResolution parses a resolution string in the form "<width>x<height>"
// (case-insensitive separator, surrounding whitespace ignored) into pixel
// dimensions. Both dimensions must be positive.
//
// Parameters:
//   - s: the resolution string, e.g. "1280x720" or "1920X1080"
//
// Returns:
//   - int: width in pixels
//   - int: height in pixels
//   - error: error if the string is malformed
func ParseResolution(s string) (int, int, error) {
	trimmed := strings.TrimSpace(s)
	idx := strings.IndexAny(trimmed, "xX")
	if idx < 0 {
		return 0, 0, fmt.Errorf("malformed resolution %q, expected e.g. 1280x720", s)
	}

	w, err := strconv.Atoi(strings.TrimSpace(trimmed[:idx]))
	if err != nil {
		return 0, 0, fmt.Errorf("resolution width is not a number: %q", trimmed[:idx])
	}
	h, err := strconv.Atoi(strings.TrimSpace(trimmed[idx+1:]))
	if err != nil {
		return 0, 0, fmt.Errorf("resolution height is not a number: %q", trimmed[idx+1:])
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("resolution %q must be positive in both dimensions", s)
	}

	return w, h, nil
}
