package orbit_camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDampFactorRange(t *testing.T) {
	smoothness := []float32{0.1, 1, 10, 14, 100}
	dts := []float32{0.001, 0.016, 0.1, 1, 10}

	for _, s := range smoothness {
		for _, dt := range dts {
			got := DampFactor(s, dt)
			if got <= 0 || got >= 1 {
				t.Errorf("DampFactor(%v, %v) = %v, want in (0,1)", s, dt, got)
			}
		}
	}
}

func TestDampFactorMonotonic(t *testing.T) {
	// Increasing dt at fixed smoothness must increase the factor.
	prev := float32(0)
	for _, dt := range []float32{0.001, 0.01, 0.1, 0.5, 1, 5} {
		got := DampFactor(12, dt)
		if got <= prev {
			t.Errorf("DampFactor(12, %v) = %v, want > %v", dt, got, prev)
		}
		prev = got
	}

	// Increasing smoothness at fixed dt must increase the factor.
	prev = 0
	for _, s := range []float32{0.5, 2, 8, 12, 50} {
		got := DampFactor(s, 0.016)
		if got <= prev {
			t.Errorf("DampFactor(%v, 0.016) = %v, want > %v", s, got, prev)
		}
		prev = got
	}
}

func TestDampFactorLimits(t *testing.T) {
	if got := DampFactor(12, 1000); got < 0.9999 {
		t.Errorf("DampFactor(12, 1000) = %v, want ~1", got)
	}
	if got := DampFactor(0, 0.016); got != 1 {
		t.Errorf("DampFactor(0, dt) = %v, want 1 (direct mode)", got)
	}
	if got := DampFactor(float32(math.Inf(1)), 0.016); got != 1 {
		t.Errorf("DampFactor(+Inf, dt) = %v, want 1 (instant)", got)
	}
	if got := DampFactor(12, 0); got != 0 {
		t.Errorf("DampFactor(12, 0) = %v, want 0", got)
	}
}

func TestUpdateConvergesWithoutOvershoot(t *testing.T) {
	rig := NewOrbitRig()
	targets := []mgl32.Vec3{{0, 0.5, 0}}

	// One drag frame to move the yaw target.
	rig.Update(FrameInput{MotionX: 100, Orbiting: true, DT: 1.0 / 60.0}, targets)

	want := rig.TargetYaw()
	if want >= 0 {
		t.Fatalf("TargetYaw() = %v after left drag, want negative", want)
	}

	// Zero-input frames: yaw must approach the target monotonically and
	// never cross it (exponential decay toward a stationary target).
	prevGap := float64(math.MaxFloat32)
	for i := 0; i < 300; i++ {
		rig.Update(FrameInput{DT: 1.0 / 60.0}, targets)
		gap := math.Abs(float64(rig.Yaw() - want))
		if gap > prevGap {
			t.Fatalf("frame %d: |yaw-target| grew from %v to %v", i, prevGap, gap)
		}
		if rig.Yaw() < want-1e-6 {
			t.Fatalf("frame %d: yaw %v overshot target %v", i, rig.Yaw(), want)
		}
		prevGap = gap
	}

	if gap := math.Abs(float64(rig.Yaw() - want)); gap > 1e-4 {
		t.Errorf("yaw did not converge: |yaw-target| = %v", gap)
	}
}

func TestTargetPitchAlwaysClamped(t *testing.T) {
	rig := NewOrbitRig(WithPitchBounds(-1.2, 1.2))
	targets := []mgl32.Vec3{{}}

	for i := 0; i < 50; i++ {
		rig.Update(FrameInput{MotionY: 5000, Orbiting: true, DT: 0.016}, targets)
	}
	if got := rig.TargetPitch(); got < -1.2 || got > 1.2 {
		t.Errorf("TargetPitch() = %v after downward drags, want within [-1.2, 1.2]", got)
	}

	for i := 0; i < 50; i++ {
		rig.Update(FrameInput{MotionY: -5000, Orbiting: true, DT: 0.016}, targets)
	}
	if got := rig.TargetPitch(); got < -1.2 || got > 1.2 {
		t.Errorf("TargetPitch() = %v after upward drags, want within [-1.2, 1.2]", got)
	}
}

func TestTargetRadiusAlwaysClamped(t *testing.T) {
	rig := NewOrbitRig(WithRadiusBounds(3, 18))
	targets := []mgl32.Vec3{{}}

	for i := 0; i < 100; i++ {
		rig.Update(FrameInput{Scroll: 50, DT: 0.016}, targets)
	}
	if got := rig.TargetRadius(); got != 3 {
		t.Errorf("TargetRadius() = %v after zooming in, want 3", got)
	}

	for i := 0; i < 100; i++ {
		rig.Update(FrameInput{Scroll: -50, DT: 0.016}, targets)
	}
	if got := rig.TargetRadius(); got != 18 {
		t.Errorf("TargetRadius() = %v after zooming out, want 18", got)
	}
}

func TestUpdateNoOpWithoutSingleTarget(t *testing.T) {
	for _, targets := range [][]mgl32.Vec3{nil, {{1, 0, 0}, {0, 0, 1}}} {
		rig := NewOrbitRig()
		wantPos, wantFocus := rig.Pose()
		wantYaw, wantRadius := rig.Yaw(), rig.Radius()

		rig.Update(FrameInput{MotionX: 100, MotionY: 50, Scroll: 3, Orbiting: true, DT: 0.016}, targets)

		pos, focus := rig.Pose()
		if pos != wantPos || focus != wantFocus {
			t.Errorf("%d targets: pose changed from (%v, %v) to (%v, %v)", len(targets), wantPos, wantFocus, pos, focus)
		}
		if rig.Yaw() != wantYaw || rig.Radius() != wantRadius {
			t.Errorf("%d targets: state changed: yaw %v radius %v", len(targets), rig.Yaw(), rig.Radius())
		}
	}
}

func TestDragScenario(t *testing.T) {
	// Instant smoothing, target at origin, default radius 8 and pitch -0.3.
	rig := NewOrbitRig(WithSmoothing(0, 0, 0))
	targets := []mgl32.Vec3{{0, 0, 0}}

	rig.Update(FrameInput{MotionX: 100, Orbiting: true, DT: 0.016}, targets)

	if got := rig.TargetYaw(); math.Abs(float64(got+0.5)) > 1e-6 {
		t.Fatalf("TargetYaw() = %v after dx=100 drag, want -0.5", got)
	}
	// Instant channels snap the smoothed yaw the same frame.
	if got := rig.Yaw(); math.Abs(float64(got+0.5)) > 1e-6 {
		t.Errorf("Yaw() = %v, want -0.5 with instant smoothing", got)
	}

	// Damped variant converges to the same angle after enough quiet frames.
	damped := NewOrbitRig()
	damped.Update(FrameInput{MotionX: 100, Orbiting: true, DT: 0.016}, targets)
	for i := 0; i < 600; i++ {
		damped.Update(FrameInput{DT: 0.016}, targets)
	}
	if got := damped.Yaw(); math.Abs(float64(got+0.5)) > 1e-3 {
		t.Errorf("damped Yaw() = %v after settling, want -0.5", got)
	}
}

func TestPoseGeometry(t *testing.T) {
	// Level pitch, zero yaw, no follow offset: the camera sits radius units
	// down +Z from the focus point.
	rig := NewOrbitRig(
		WithSmoothing(0, 0, 0),
		WithPitch(0),
		WithFollowOffset(0, 0, 0),
	)
	targets := []mgl32.Vec3{{0, 0, 0}}

	rig.Update(FrameInput{DT: 0.016}, targets)

	pos, focus := rig.Pose()
	if focus != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("focus = %v, want origin", focus)
	}
	want := mgl32.Vec3{0, 0, 8}
	if pos.Sub(want).Len() > 1e-5 {
		t.Errorf("position = %v, want %v", pos, want)
	}

	// Follow offset shifts the focus point, not the spherical offset.
	offset := NewOrbitRig(WithSmoothing(0, 0, 0), WithPitch(0))
	offset.Update(FrameInput{DT: 0.016}, []mgl32.Vec3{{0, 0.5, 0}})
	_, focus = offset.Pose()
	want = mgl32.Vec3{0, 1.7, 0}
	if focus.Sub(want).Len() > 1e-5 {
		t.Errorf("focus with offset = %v, want %v", focus, want)
	}
}
