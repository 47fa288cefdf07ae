// Package render carries the active render backend's identity. The renderer
// itself is an external collaborator; this package only resolves which
// low-level backend the surface will be driven by, so the client and the
// debug overlay can report it.
package render

import (
	"runtime"
	"strings"
)

// Info identifies the active render backend.
type Info struct {
	// Name is the backend implementation identifier, e.g. "wgpu".
	Name string
	// Backend is the low-level backend token: vulkan, gl, metal, dx12, dx11.
	Backend string
}

// Resolve maps a requested backend string from configuration to backend
// identity. "AUTO" (or empty) picks the platform default: dx12 on Windows,
// metal on macOS, vulkan elsewhere. Unrecognized requests fall back to the
// platform default as well.
//
// Parameters:
//   - requested: the configured backend, e.g. "AUTO", "VULKAN", "DX12"
//
// Returns:
//   - Info: the resolved backend identity
func Resolve(requested string) Info {
	token := strings.ToLower(strings.TrimSpace(requested))
	switch token {
	case "vulkan", "gl", "metal", "dx12", "dx11":
		// explicit request honored as-is
	case "opengl":
		token = "gl"
	case "directx12":
		token = "dx12"
	case "directx11":
		token = "dx11"
	default:
		token = platformDefault()
	}
	return Info{Name: "wgpu", Backend: token}
}

func platformDefault() string {
	switch runtime.GOOS {
	case "windows":
		return "dx12"
	case "darwin":
		return "metal"
	default:
		return "vulkan"
	}
}
