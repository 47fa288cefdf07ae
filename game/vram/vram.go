// Package vram queries actual GPU memory usage through a fixed-priority list
// of platform/vendor backends. Detection is strictly best-effort: a backend
// that is unavailable, not compiled in, or fails at runtime is a miss, never
// an error, and the first backend that produces a reading wins.
package vram

import (
	"fmt"
	"os"
)

// Reading scopes. Callers must not compare readings across scopes: a
// per-process value and a device-wide value measure different things.
const (
	ScopePerProcess  = "per-process"
	ScopeDeviceWide  = "device-wide"
	ScopeAdapterWide = "adapter-wide"
)

// Info is a single V-RAM reading.
type Info struct {
	// Bytes reported by the backend.
	Bytes uint64
	// Source is the backend name, e.g. "NVML", "Linux DRM", "DXGI".
	Source string
	// Scope qualifies the reading: per-process, device-wide, or adapter-wide.
	Scope string
}

// backend is one entry of the priority-ordered probe list. query receives the
// current process id and reports (bytes, true) on success.
type backend struct {
	source string
	scope  string
	query  func(pid uint32) (uint64, bool)
}

// backends returns the probe list in priority order:
//  1. NVML, per-process (most precise when an NVIDIA driver is present)
//  2. amdgpu debugfs, per-process (Linux)
//  3. Linux DRM device-wide counters (amdgpu)
//  4. DXGI adapter-wide (Windows)
//  5. Metal device-wide (macOS)
func backends() []backend {
	return []backend{
		{source: "NVML", scope: ScopePerProcess, query: queryNVMLPerProcess},
		{source: "amdgpu-debugfs", scope: ScopePerProcess, query: queryAMDGPUPerProcess},
		{source: "Linux DRM", scope: ScopeDeviceWide, query: func(uint32) (uint64, bool) { return queryDRMDeviceWide() }},
		{source: "DXGI", scope: ScopeAdapterWide, query: func(uint32) (uint64, bool) { return queryDXGIAdapterUsage() }},
		{source: "Metal", scope: ScopeDeviceWide, query: func(uint32) (uint64, bool) { return queryMetalDeviceAllocated() }},
	}
}

// Detect tries every backend in priority order and returns the first reading.
//
// Returns:
//   - Info: the reading with its source and scope labels
//   - bool: false if no backend produced a result
func Detect() (Info, bool) {
	return detect(backends(), uint32(os.Getpid()))
}

// detect runs the probe over an explicit backend list. Split out so tests can
// exercise ordering and first-success semantics with synthetic backends.
func detect(list []backend, pid uint32) (Info, bool) {
	for _, b := range list {
		if bytes, ok := b.query(pid); ok {
			return Info{Bytes: bytes, Source: b.source, Scope: b.scope}, true
		}
	}
	return Info{}, false
}

// FormatBytes renders a byte count for overlay display: values of at least
// one GiB as "X.X GB", everything below as whole "X MB".
//
// Parameters:
//   - bytes: the byte count to format
//
// Returns:
//   - string: the display label
func FormatBytes(bytes uint64) string {
	const (
		mib = 1024.0 * 1024.0
		gib = 1024.0 * 1024.0 * 1024.0
	)
	b := float64(bytes)
	if b >= gib {
		return fmt.Sprintf("%.1f GB", b/gib)
	}
	return fmt.Sprintf("%.0f MB", b/mib)
}
