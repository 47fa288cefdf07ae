package debug

import (
	"fmt"

	"github.com/kestrelworks/roost/engine/diagnostics"
	"github.com/kestrelworks/roost/engine/render"
	"github.com/kestrelworks/roost/game/buildinfo"
	"github.com/kestrelworks/roost/game/vram"
)

// Hotkeys holds the configured key-binding labels mirrored into the
// snapshot for on-screen hints. Labels are surfaced verbatim; no key-code
// resolution happens here.
type Hotkeys struct {
	// DebugInfo is the label of the key that toggles the debug overlay.
	DebugInfo string
	// Gizmos is the label of the key that toggles gizmos.
	Gizmos string
}

// pipelineImpl is the single implementation of Pipeline.
type pipelineImpl struct {
	snapshot *Snapshot
	sampler  Sampler

	store     *diagnostics.Store
	build     buildinfo.Info
	backend   render.Info
	hotkeys   Hotkeys
	vramProbe func() (vram.Info, bool)

	// steps run in declared order: perf, build, vram, cpu-brand. Later
	// steps may depend on state written by earlier ones within the same
	// tick, so the order is part of the contract.
	steps []func()
}

// Pipeline keeps a Snapshot current by running its builder steps once per
// tick. All work is gated on overlay visibility, evaluated once per Run:
// while the overlay is hidden no telemetry CPU/GPU query work happens.
type Pipeline interface {
	// Run executes every builder step in order, or nothing when the overlay
	// is hidden.
	//
	// Parameters:
	//   - visible: whether the debug overlay is currently shown
	Run(visible bool)

	// Snapshot returns the published snapshot the pipeline writes into.
	//
	// Returns:
	//   - *Snapshot: the snapshot instance (shared with the overlay reader)
	Snapshot() *Snapshot
}

// Compile-time interface compliance check
var _ Pipeline = &pipelineImpl{}

// NewPipeline creates the snapshot-builder pipeline. The step order is
// fixed: performance, build/backend info, V-RAM probe, CPU brand.
//
// Parameters:
//   - snapshot: the snapshot to keep current (must not be nil)
//   - sampler: the telemetry sampler feeding the performance step
//   - options: functional options wiring the remaining inputs
//
// Returns:
//   - Pipeline: the newly created pipeline
func NewPipeline(snapshot *Snapshot, sampler Sampler, options ...PipelineOption) Pipeline {
	if snapshot == nil {
		panic("debug: NewPipeline requires a non-nil Snapshot")
	}

	p := &pipelineImpl{
		snapshot:  snapshot,
		sampler:   sampler,
		build:     buildinfo.Resolve("", ""),
		vramProbe: func() (vram.Info, bool) { return vram.Detect() },
	}

	for _, option := range options {
		option(p)
	}

	p.steps = []func(){
		p.snapPerf,
		p.snapBuild,
		p.snapVRAM,
		p.snapCPUBrand,
	}

	return p
}

func (p *pipelineImpl) Run(visible bool) {
	if !visible {
		return
	}
	for _, step := range p.steps {
		step()
	}
}

func (p *pipelineImpl) Snapshot() *Snapshot {
	return p.snapshot
}

// snapPerf copies the smoothed FPS from the diagnostics store (0.0 when
// absent) and the latest sampler readings into the snapshot.
func (p *pipelineImpl) snapPerf() {
	p.snapshot.FPS = 0
	if p.store != nil {
		if fps, ok := p.store.Value(diagnostics.KeyFPS); ok {
			p.snapshot.FPS = fps
		}
	}
	if p.sampler != nil {
		p.snapshot.CPUAllPercent = p.sampler.CPUAllPercent()
		p.snapshot.AppCPUPercent = p.sampler.AppCPUPercent()
		p.snapshot.AppMemBytes = p.sampler.AppMemBytes()
	}
}

// snapBuild copies build identity strings, backend identity, and hotkey
// labels into the snapshot.
func (p *pipelineImpl) snapBuild() {
	p.snapshot.AppName = p.build.AppName
	p.snapshot.AppVersion = p.build.AppVersion
	p.snapshot.EngineVersion = p.build.EngineVersion
	p.snapshot.BackendName = p.backend.Name
	p.snapshot.BackendLabel = BackendLabel(p.backend.Backend)
	p.snapshot.KeyDebugInfo = p.hotkeys.DebugInfo
	p.snapshot.KeyGizmos = p.hotkeys.Gizmos
}

// snapVRAM runs the best-effort V-RAM probe and formats the result, or
// "n/a" when no backend produced a reading.
func (p *pipelineImpl) snapVRAM() {
	if info, ok := p.vramProbe(); ok {
		p.snapshot.VRAMLabel = fmt.Sprintf("%s (%s)", vram.FormatBytes(info.Bytes), info.Source)
	} else {
		p.snapshot.VRAMLabel = "n/a"
	}
}

// snapCPUBrand resolves the CPU brand exactly once; a non-empty brand is
// never recomputed.
func (p *pipelineImpl) snapCPUBrand() {
	if p.snapshot.CPUBrand != "" {
		return
	}
	if p.sampler == nil {
		return
	}
	p.snapshot.CPUBrand = p.sampler.ResolveCPUBrand()
}
