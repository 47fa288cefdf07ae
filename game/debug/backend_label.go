package debug

// BackendLabel maps a low-level render backend token to its human-readable
// overlay label. The mapping is total: unrecognized tokens map to "Unknown".
//
// Parameters:
//   - token: the backend identifier, e.g. "vulkan", "dx12"
//
// Returns:
//   - string: one of Vulkan, OpenGL, Metal, DirectX12, DirectX11, Unknown
func BackendLabel(token string) string {
	switch token {
	case "vulkan":
		return "Vulkan"
	case "gl":
		return "OpenGL"
	case "metal":
		return "Metal"
	case "dx12", "DX12":
		return "DirectX12"
	case "dx11", "DX11":
		return "DirectX11"
	default:
		return "Unknown"
	}
}
