package debug

import (
	"testing"

	"github.com/kestrelworks/roost/engine/diagnostics"
	"github.com/kestrelworks/roost/engine/render"
	"github.com/kestrelworks/roost/game/buildinfo"
	"github.com/kestrelworks/roost/game/vram"
)

// recordingSampler tracks which pipeline steps touch it, for order checks.
type recordingSampler struct {
	calls *[]string
	brand string
}

func (r *recordingSampler) Poll(float32, bool) bool { return false }
func (r *recordingSampler) CPUAllPercent() float64 {
	*r.calls = append(*r.calls, "perf")
	return 12.5
}
func (r *recordingSampler) AppCPUPercent() float64 { return 3.25 }
func (r *recordingSampler) AppMemBytes() uint64    { return 2048 }
func (r *recordingSampler) ResolveCPUBrand() string {
	*r.calls = append(*r.calls, "brand")
	return r.brand
}

func TestBackendLabelIsTotal(t *testing.T) {
	cases := map[string]string{
		"vulkan":  "Vulkan",
		"gl":      "OpenGL",
		"metal":   "Metal",
		"dx12":    "DirectX12",
		"DX12":    "DirectX12",
		"dx11":    "DirectX11",
		"DX11":    "DirectX11",
		"":        "Unknown",
		"webgpu":  "Unknown",
		"Vulkan":  "Unknown",
		"opengl2": "Unknown",
	}
	for token, want := range cases {
		if got := BackendLabel(token); got != want {
			t.Errorf("BackendLabel(%q) = %q, want %q", token, got, want)
		}
	}
}

func TestPipelineHiddenDoesNothing(t *testing.T) {
	var calls []string
	snap := &Snapshot{}
	probeCalled := false

	p := NewPipeline(snap, &recordingSampler{calls: &calls},
		WithVRAMProbe(func() (vram.Info, bool) {
			probeCalled = true
			return vram.Info{}, false
		}),
	)

	p.Run(false)

	if len(calls) != 0 || probeCalled {
		t.Errorf("hidden Run touched the backends: calls=%v probe=%v", calls, probeCalled)
	}
	if *snap != (Snapshot{}) {
		t.Errorf("hidden Run mutated the snapshot: %+v", snap)
	}
}

func TestPipelineRunsStepsInOrder(t *testing.T) {
	var calls []string
	snap := &Snapshot{}

	p := NewPipeline(snap, &recordingSampler{calls: &calls, brand: "Test CPU"},
		WithVRAMProbe(func() (vram.Info, bool) {
			calls = append(calls, "vram")
			return vram.Info{Bytes: 1610612736, Source: "NVML", Scope: vram.ScopePerProcess}, true
		}),
	)

	p.Run(true)

	want := []string{"perf", "vram", "brand"}
	if len(calls) != len(want) {
		t.Fatalf("step calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("step calls = %v, want %v", calls, want)
		}
	}

	if snap.CPUAllPercent != 12.5 || snap.AppCPUPercent != 3.25 || snap.AppMemBytes != 2048 {
		t.Errorf("perf fields = %v/%v/%v, want 12.5/3.25/2048",
			snap.CPUAllPercent, snap.AppCPUPercent, snap.AppMemBytes)
	}
	if snap.VRAMLabel != "1.5 GB (NVML)" {
		t.Errorf("VRAMLabel = %q, want %q", snap.VRAMLabel, "1.5 GB (NVML)")
	}
	if snap.CPUBrand != "Test CPU" {
		t.Errorf("CPUBrand = %q, want %q", snap.CPUBrand, "Test CPU")
	}
}

func TestPipelineBuildFields(t *testing.T) {
	var calls []string
	snap := &Snapshot{}

	p := NewPipeline(snap, &recordingSampler{calls: &calls},
		WithBuildInfo(buildinfo.Info{AppName: "Roost", AppVersion: "0.1.0", EngineVersion: "0.6.2"}),
		WithBackendInfo(render.Info{Name: "wgpu", Backend: "vulkan"}),
		WithHotkeys(Hotkeys{DebugInfo: "F3", Gizmos: "F9"}),
		WithVRAMProbe(func() (vram.Info, bool) { return vram.Info{}, false }),
	)

	p.Run(true)

	if snap.AppName != "Roost" || snap.AppVersion != "0.1.0" || snap.EngineVersion != "0.6.2" {
		t.Errorf("build fields = %q/%q/%q", snap.AppName, snap.AppVersion, snap.EngineVersion)
	}
	if snap.BackendName != "wgpu" || snap.BackendLabel != "Vulkan" {
		t.Errorf("backend fields = %q/%q, want wgpu/Vulkan", snap.BackendName, snap.BackendLabel)
	}
	if snap.KeyDebugInfo != "F3" || snap.KeyGizmos != "F9" {
		t.Errorf("hotkey fields = %q/%q, want F3/F9", snap.KeyDebugInfo, snap.KeyGizmos)
	}
	if snap.VRAMLabel != "n/a" {
		t.Errorf("VRAMLabel = %q with no probe result, want n/a", snap.VRAMLabel)
	}
}

func TestPipelineCPUBrandMemoized(t *testing.T) {
	var calls []string
	sampler := &recordingSampler{calls: &calls, brand: "First CPU"}
	snap := &Snapshot{}

	p := NewPipeline(snap, sampler,
		WithVRAMProbe(func() (vram.Info, bool) { return vram.Info{}, false }),
	)

	p.Run(true)
	if snap.CPUBrand != "First CPU" {
		t.Fatalf("CPUBrand = %q after first run, want %q", snap.CPUBrand, "First CPU")
	}

	// A later run with different backend data must not change the brand.
	sampler.brand = "Second CPU"
	p.Run(true)
	if snap.CPUBrand != "First CPU" {
		t.Errorf("CPUBrand = %q after second run, want memoized %q", snap.CPUBrand, "First CPU")
	}
}

func TestPipelineFPSFromDiagnostics(t *testing.T) {
	var calls []string
	snap := &Snapshot{}

	// No store wired: FPS defaults to 0.
	p := NewPipeline(snap, &recordingSampler{calls: &calls},
		WithVRAMProbe(func() (vram.Info, bool) { return vram.Info{}, false }),
	)
	p.Run(true)
	if snap.FPS != 0 {
		t.Errorf("FPS = %v with no diagnostics store, want 0", snap.FPS)
	}

	store := diagnostics.NewStore()
	store.Set(diagnostics.KeyFPS, 144.5)

	p = NewPipeline(snap, &recordingSampler{calls: &calls},
		WithDiagnostics(store),
		WithVRAMProbe(func() (vram.Info, bool) { return vram.Info{}, false }),
	)
	p.Run(true)
	if snap.FPS != 144.5 {
		t.Errorf("FPS = %v, want 144.5 from the diagnostics store", snap.FPS)
	}
}
