// Package debug maintains the developer overlay's telemetry: a rate-limited
// system sampler and an ordered snapshot-builder pipeline that keep a
// display-ready Snapshot current while the overlay is visible. The overlay
// renderer itself lives outside this package; it only reads the Snapshot.
package debug

import "github.com/go-gl/mathgl/mgl32"

// Snapshot is the latest published set of display-ready metrics and labels
// for the debug overlay. Created once at startup with zero values; fields
// are selectively overwritten each tick by the pipeline steps. Never
// destroyed during the process lifetime.
type Snapshot struct {
	// FPS is the smoothed frames-per-second reading.
	FPS float64
	// CPUAllPercent is total CPU usage across all cores (%).
	CPUAllPercent float64
	// AppCPUPercent is this process's CPU usage, normalized by logical core
	// count and clamped to [0, 100].
	AppCPUPercent float64
	// AppMemBytes is this process's resident memory in bytes.
	AppMemBytes uint64
	// VRAMLabel is the formatted V-RAM reading, e.g. "1.5 GB (NVML)", or
	// "n/a" when no backend produced a result.
	VRAMLabel string

	// PlayerPos is the tracked player's world position, for HUD display.
	PlayerPos mgl32.Vec3
	// CharacterName is the active character's display name.
	CharacterName string

	// AppName is the application name ("<app>" when build metadata is absent).
	AppName string
	// AppVersion is the application version ("?" when absent).
	AppVersion string
	// EngineVersion is the engine glue version string.
	EngineVersion string
	// BackendName is the active render backend's identifier string.
	BackendName string
	// BackendLabel is the human-readable backend label, e.g. "Vulkan".
	BackendLabel string
	// CPUBrand is the CPU brand/model string, resolved once and cached.
	CPUBrand string

	// KeyDebugInfo is the configured key label that toggles this overlay.
	KeyDebugInfo string
	// KeyGizmos is the configured key label that toggles gizmos.
	KeyGizmos string
}
