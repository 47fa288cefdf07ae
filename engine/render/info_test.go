package render

import (
	"runtime"
	"testing"
)

func TestResolveExplicitBackends(t *testing.T) {
	tests := []struct {
		requested string
		want      string
	}{
		{"VULKAN", "vulkan"},
		{"vulkan", "vulkan"},
		{" Metal ", "metal"},
		{"GL", "gl"},
		{"OpenGL", "gl"},
		{"DX12", "dx12"},
		{"DirectX12", "dx12"},
		{"DX11", "dx11"},
		{"DirectX11", "dx11"},
	}

	for _, tt := range tests {
		got := Resolve(tt.requested)
		if got.Backend != tt.want {
			t.Errorf("Resolve(%q).Backend = %q, want %q", tt.requested, got.Backend, tt.want)
		}
		if got.Name != "wgpu" {
			t.Errorf("Resolve(%q).Name = %q, want wgpu", tt.requested, got.Name)
		}
	}
}

func TestResolveAutoUsesPlatformDefault(t *testing.T) {
	want := "vulkan"
	switch runtime.GOOS {
	case "windows":
		want = "dx12"
	case "darwin":
		want = "metal"
	}

	for _, requested := range []string{"AUTO", "", "warp9"} {
		if got := Resolve(requested).Backend; got != want {
			t.Errorf("Resolve(%q).Backend = %q, want %q", requested, got, want)
		}
	}
}
