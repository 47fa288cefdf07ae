// Roost game client. Wires the window, engine, scene, orbit camera, and the
// debug overlay pipeline together and runs the main loop.
package main

import (
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kestrelworks/roost/common"
	"github.com/kestrelworks/roost/engine"
	"github.com/kestrelworks/roost/engine/camera"
	"github.com/kestrelworks/roost/engine/render"
	"github.com/kestrelworks/roost/engine/scene"
	"github.com/kestrelworks/roost/engine/window"
	"github.com/kestrelworks/roost/game/buildinfo"
	"github.com/kestrelworks/roost/game/character"
	"github.com/kestrelworks/roost/game/config"
	"github.com/kestrelworks/roost/game/debug"
	orbitcamera "github.com/kestrelworks/roost/game/orbit_camera"
)

const (
	settingsPath  = "config/settings.toml"
	charactersDir = "assets/characters"

	appName    = "Roost"
	appVersion = "0.1.0"
)

// frameInputState accumulates raw window events between engine ticks.
// Window callbacks run on the message loop thread while the tick loop
// drains the state, so access is mutex-guarded.
type frameInputState struct {
	mu sync.Mutex

	orbiting       bool
	lastX, lastY   int32
	motionX        float32
	motionY        float32
	scroll         float32
	overlayVisible bool
}

// drain returns the accumulated motion and scroll deltas and resets them.
func (f *frameInputState) drain() (motionX, motionY, scroll float32, orbiting, visible bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	motionX, motionY, scroll = f.motionX, f.motionY, f.scroll
	orbiting, visible = f.orbiting, f.overlayVisible
	f.motionX, f.motionY, f.scroll = 0, 0, 0
	return
}

func main() {
	cfg := config.MustLoad(settingsPath)

	width, height, err := config.ParseResolution(cfg.Graphics.WindowResolution)
	if err != nil {
		log.Fatalf("[Client] bad resolution: %v", err)
	}

	backend := render.Resolve(cfg.Graphics.VideoBackend)
	log.Printf("[Client] starting %s %s (%s)", appName, appVersion, backend.Backend)

	win := window.NewWindow(
		window.WithTitle(appName),
		window.WithSize(width, height),
		window.WithFullscreen(cfg.Graphics.Fullscreen),
		window.WithVsync(cfg.Graphics.Vsync),
	)

	cam := camera.NewCamera(
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithPose(mgl32.Vec3{0, 3, 8}, mgl32.Vec3{0, 1.2, 0}),
	)

	player := scene.NewEntity(
		scene.WithName("player"),
		scene.WithPosition(mgl32.Vec3{0, 0.5, 0}),
		scene.WithFollowTarget(true),
	)
	world := scene.NewScene(
		scene.WithSceneName("world"),
		scene.WithCamera(cam),
		scene.WithEntities(player),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(0, world),
	)

	library := character.NewLibrary()
	if n, err := library.LoadDir(charactersDir); err != nil {
		log.Printf("[Client] character library unavailable: %v", err)
	} else {
		log.Printf("[Client] loaded %d characters", n)
	}
	characterName := ""
	if names := library.Names(); len(names) > 0 {
		characterName = names[0]
	}

	rig := orbitcamera.NewOrbitRig()
	input := &frameInputState{}
	wireInput(win, cfg.Input, input)

	snapshot := &debug.Snapshot{}
	sampler := debug.NewSampler()
	pipeline := debug.NewPipeline(snapshot, sampler,
		debug.WithDiagnostics(eng.Diagnostics()),
		debug.WithBuildInfo(buildinfo.Resolve(appName, appVersion)),
		debug.WithBackendInfo(backend),
		debug.WithHotkeys(debug.Hotkeys{
			DebugInfo: cfg.Input.SystemInfo,
			Gizmos:    cfg.Input.GizmosBoxen,
		}),
	)

	eng.SetTickCallback(func(dt float32) {
		motionX, motionY, scroll, orbiting, visible := input.drain()

		rig.Update(orbitcamera.FrameInput{
			MotionX:  motionX,
			MotionY:  motionY,
			Scroll:   scroll,
			Orbiting: orbiting,
			DT:       dt,
		}, world.FollowTargets())

		position, focus := rig.Pose()
		cam.SetPose(position, focus)

		sampler.Poll(dt, visible)
		pipeline.Run(visible)

		snap := pipeline.Snapshot()
		snap.PlayerPos = player.Position()
		snap.CharacterName = characterName
	})

	eng.Run()

	if err := win.Close(); err != nil {
		log.Printf("[Client] window close: %v", err)
	}
}

// wireInput registers window callbacks that feed the frame input state.
// The left mouse button drives orbiting, the scroll wheel zooms, and the
// configured system info key toggles the overlay.
func wireInput(win window.Window, keys config.InputSettings, input *frameInputState) {
	toggleKey, ok := common.ConvertKeyLabel(keys.SystemInfo)
	if !ok {
		log.Printf("[Client] unknown system info key %q, overlay toggle disabled", keys.SystemInfo)
	}

	win.SetLeftMouseDownCallback(func(x, y int32) {
		input.mu.Lock()
		defer input.mu.Unlock()
		input.orbiting = true
		input.lastX, input.lastY = x, y
	})

	win.SetLeftMouseUpCallback(func(x, y int32) {
		input.mu.Lock()
		defer input.mu.Unlock()
		input.orbiting = false
	})

	win.SetMouseMoveCallback(func(x, y int32) {
		input.mu.Lock()
		defer input.mu.Unlock()
		if input.orbiting {
			input.motionX += float32(x - input.lastX)
			input.motionY += float32(y - input.lastY)
		}
		input.lastX, input.lastY = x, y
	})

	win.SetScrollCallback(func(delta float32) {
		input.mu.Lock()
		defer input.mu.Unlock()
		input.scroll += delta
	})

	win.SetKeyDownCallback(func(keyCode uint32) {
		if !ok || keyCode != toggleKey {
			return
		}
		input.mu.Lock()
		defer input.mu.Unlock()
		input.overlayVisible = !input.overlayVisible
	})
}
