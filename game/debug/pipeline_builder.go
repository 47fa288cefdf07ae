package debug

import (
	"github.com/kestrelworks/roost/engine/diagnostics"
	"github.com/kestrelworks/roost/engine/render"
	"github.com/kestrelworks/roost/game/buildinfo"
	"github.com/kestrelworks/roost/game/vram"
)

// PipelineOption is a functional option for configuring a Pipeline.
type PipelineOption func(*pipelineImpl)

// WithDiagnostics wires the engine diagnostics store the performance step
// reads the smoothed FPS from.
//
// Parameters:
//   - store: the engine's diagnostics store
//
// Returns:
//   - PipelineOption: functional option to set the store
func WithDiagnostics(store *diagnostics.Store) PipelineOption {
	return func(p *pipelineImpl) {
		p.store = store
	}
}

// WithBuildInfo sets the build identity strings copied by the build step.
//
// Parameters:
//   - info: the resolved build identity
//
// Returns:
//   - PipelineOption: functional option to set the build info
func WithBuildInfo(info buildinfo.Info) PipelineOption {
	return func(p *pipelineImpl) {
		p.build = info
	}
}

// WithBackendInfo sets the active render backend identity.
//
// Parameters:
//   - info: the resolved backend identity
//
// Returns:
//   - PipelineOption: functional option to set the backend info
func WithBackendInfo(info render.Info) PipelineOption {
	return func(p *pipelineImpl) {
		p.backend = info
	}
}

// WithHotkeys sets the key-binding labels mirrored into the snapshot.
//
// Parameters:
//   - hotkeys: the configured hotkey labels
//
// Returns:
//   - PipelineOption: functional option to set the hotkey labels
func WithHotkeys(hotkeys Hotkeys) PipelineOption {
	return func(p *pipelineImpl) {
		p.hotkeys = hotkeys
	}
}

// WithVRAMProbe replaces the V-RAM probe function. Used by tests and by
// hosts that want to cache probe results across ticks.
//
// Parameters:
//   - probe: the probe function returning a reading and a success flag
//
// Returns:
//   - PipelineOption: functional option to set the probe
func WithVRAMProbe(probe func() (vram.Info, bool)) PipelineOption {
	return func(p *pipelineImpl) {
		p.vramProbe = probe
	}
}
