// Package buildinfo resolves static build identity strings for the debug
// overlay. Absent metadata never fails resolution; placeholder values apply.
package buildinfo

import (
	"runtime/debug"

	"github.com/kestrelworks/roost/common"
	"github.com/kestrelworks/roost/engine"
)

// Placeholder values used when build metadata is absent.
const (
	PlaceholderAppName    = "<app>"
	PlaceholderAppVersion = "?"
)

// Info holds the build identity strings surfaced in the debug overlay.
type Info struct {
	// AppName is the application name.
	AppName string
	// AppVersion is the application version string.
	AppVersion string
	// EngineVersion is the engine glue version string.
	EngineVersion string
}

// Resolve builds an Info from the provided identity strings, filling gaps
// from the module build metadata and finally from placeholders.
//
// Parameters:
//   - appName: the application name ("" to use the placeholder)
//   - appVersion: the application version ("" to use module metadata)
//
// Returns:
//   - Info: the resolved identity, never containing empty fields
func Resolve(appName, appVersion string) Info {
	return Info{
		AppName:       common.Coalesce(appName, PlaceholderAppName),
		AppVersion:    common.Coalesce(appVersion, moduleVersion(), PlaceholderAppVersion),
		EngineVersion: engine.Version,
	}
}

// moduleVersion reads the main module's version from the embedded build
// metadata. Returns "" for development builds.
func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	v := info.Main.Version
	if v == "(devel)" {
		return ""
	}
	return v
}
