// Package orbit_camera implements the smoothed third-person orbit rig that
// follows a single tracked entity. The rig owns spherical-coordinate state
// (radius, yaw, pitch) plus input-driven target values the current values
// chase with exponential damping, and publishes a world-space pose
// (position + focus point) each tick for the camera to look through.
package orbit_camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// scrollEpsilon is the minimum absolute scroll delta that registers as zoom
// input. Matches float32 machine epsilon.
const scrollEpsilon = 1.1920929e-7

// FrameInput carries one frame's worth of drained input for the rig.
// Motion and scroll deltas are accumulated over all events received during
// the frame; DT is the elapsed frame time in seconds.
type FrameInput struct {
	// MotionX and MotionY are the accumulated pointer-motion deltas in pixels.
	MotionX, MotionY float32

	// Scroll is the accumulated scroll-wheel delta (positive = zoom in).
	Scroll float32

	// Orbiting reports whether the orbit button was held this frame.
	Orbiting bool

	// DT is the frame duration in seconds.
	DT float32
}

// orbitRigImpl is the single implementation of OrbitRig.
type orbitRigImpl struct {
	mu *sync.Mutex

	// Current smoothed spherical offset from the focus point.
	radius float32
	yaw    float32
	pitch  float32

	// Input-driven goal values the current values exponentially approach.
	targetRadius float32
	targetYaw    float32
	targetPitch  float32

	// Exponential-decay rates (1/seconds) per channel. Values <= 0 snap.
	rotationSmoothness float32
	zoomSmoothness     float32
	positionSmoothness float32

	// Constraints.
	minRadius, maxRadius float32
	minPitch, maxPitch   float32

	// Input scaling.
	mouseSensitivity float32
	zoomSensitivity  float32

	// World-space offset added to the followed target's position to compute
	// the look-at focus point.
	followOffset mgl32.Vec3

	// Smoothed world-space pose.
	position mgl32.Vec3
	focus    mgl32.Vec3
}

// OrbitRig is a third-person orbit camera controller. Update consumes one
// frame of input plus the follow target positions visible this frame and
// advances the smoothed state; Pose exposes the resulting transform.
type OrbitRig interface {
	// Update advances the rig by one frame.
	//
	// The rig requires exactly one follow target: with zero or more than one
	// target present the call is a silent no-op, leaving all state unchanged.
	// This is a wait-for-scene-to-be-ready policy, not an error.
	//
	// Parameters:
	//   - input: the frame's drained input deltas and duration
	//   - targets: world positions of all follow-target entities this frame
	Update(input FrameInput, targets []mgl32.Vec3)

	// Pose returns the rig's current world-space pose. The camera should be
	// placed at position and oriented to look at focus with a (0,1,0) up
	// vector.
	//
	// Returns:
	//   - position: smoothed camera position
	//   - focus: the look-at focus point (target position + follow offset)
	Pose() (position, focus mgl32.Vec3)

	// Radius returns the current smoothed orbit radius.
	Radius() float32

	// Yaw returns the current smoothed yaw angle in radians.
	Yaw() float32

	// Pitch returns the current smoothed pitch angle in radians.
	Pitch() float32

	// TargetRadius returns the input-driven goal radius.
	TargetRadius() float32

	// TargetYaw returns the input-driven goal yaw in radians.
	TargetYaw() float32

	// TargetPitch returns the input-driven goal pitch in radians.
	TargetPitch() float32

	// FollowOffset returns the world-space offset applied to the followed
	// target's position when computing the focus point.
	FollowOffset() mgl32.Vec3
}

// Compile-time interface compliance check
var _ OrbitRig = &orbitRigImpl{}

// NewOrbitRig creates a new orbit rig with the reference scene defaults:
// radius 8 within [3, 18], yaw 0, pitch -0.3 within [-1.2, 1.2], damped
// smoothing (rotation 12, zoom 10, position 14), follow offset (0, 1.2, 0),
// and an initial position of (0, 3, 8).
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - OrbitRig: the newly created rig
func NewOrbitRig(options ...OrbitRigOption) OrbitRig {
	r := &orbitRigImpl{
		mu: &sync.Mutex{},

		radius: 8.0,
		yaw:    0.0,
		pitch:  -0.3,

		targetRadius: 8.0,
		targetYaw:    0.0,
		targetPitch:  -0.3,

		rotationSmoothness: 12.0,
		zoomSmoothness:     10.0,
		positionSmoothness: 14.0,

		minRadius: 3.0,
		maxRadius: 18.0,
		minPitch:  -1.2,
		maxPitch:  1.2,

		mouseSensitivity: 0.005,
		zoomSensitivity:  0.6,

		followOffset: mgl32.Vec3{0, 1.2, 0},
		position:     mgl32.Vec3{0, 3, 8},
	}

	for _, option := range options {
		option(r)
	}

	// Targets start equal to current values so a freshly built rig is at rest.
	r.targetRadius = mgl32.Clamp(r.targetRadius, r.minRadius, r.maxRadius)
	r.targetPitch = mgl32.Clamp(r.targetPitch, r.minPitch, r.maxPitch)
	r.radius = r.targetRadius
	r.pitch = r.targetPitch

	return r
}

// DampFactor computes the per-frame interpolation factor for exponential
// smoothing: t = 1 - exp(-smoothness * dt). A smoothness <= 0 means the
// channel is undamped and snaps to its target (factor 1), which gives the
// "direct" rig variant. For smoothness > 0 and dt > 0 the factor is in
// (0, 1) and a value interpolated by it can never overshoot a stationary
// target.
//
// Parameters:
//   - smoothness: exponential-decay rate in 1/seconds (<= 0 or +Inf snaps)
//   - dt: elapsed frame time in seconds
//
// Returns:
//   - float32: interpolation factor in [0, 1]
func DampFactor(smoothness, dt float32) float32 {
	if smoothness <= 0 || math.IsInf(float64(smoothness), 1) {
		return 1
	}
	if dt <= 0 {
		return 0
	}
	return 1 - float32(math.Exp(float64(-smoothness*dt)))
}

func (r *orbitRigImpl) Update(input FrameInput, targets []mgl32.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Exactly one follow target is required; otherwise wait for the scene.
	if len(targets) != 1 {
		return
	}

	if input.Orbiting {
		r.targetYaw -= input.MotionX * r.mouseSensitivity
		r.targetPitch = mgl32.Clamp(r.targetPitch-input.MotionY*r.mouseSensitivity, r.minPitch, r.maxPitch)
	}

	if abs32(input.Scroll) > scrollEpsilon {
		r.targetRadius = mgl32.Clamp(r.targetRadius-input.Scroll*r.zoomSensitivity, r.minRadius, r.maxRadius)
	}

	rotationT := DampFactor(r.rotationSmoothness, input.DT)
	zoomT := DampFactor(r.zoomSmoothness, input.DT)
	positionT := DampFactor(r.positionSmoothness, input.DT)

	r.yaw += (r.targetYaw - r.yaw) * rotationT
	r.pitch += (r.targetPitch - r.pitch) * rotationT
	r.radius += (r.targetRadius - r.radius) * zoomT

	// Orientation from smoothed angles, then the spherical offset from the
	// focus point. The final position is damped separately, so the camera
	// trails the angle/radius solution (double smoothing).
	rotation := mgl32.QuatRotate(r.yaw, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(r.pitch, mgl32.Vec3{1, 0, 0}))
	offset := rotation.Rotate(mgl32.Vec3{0, 0, r.radius})

	focus := targets[0].Add(r.followOffset)
	desired := focus.Add(offset)

	r.position = r.position.Add(desired.Sub(r.position).Mul(positionT))
	r.focus = focus
}

func (r *orbitRigImpl) Pose() (position, focus mgl32.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position, r.focus
}

func (r *orbitRigImpl) Radius() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.radius
}

func (r *orbitRigImpl) Yaw() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.yaw
}

func (r *orbitRigImpl) Pitch() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pitch
}

func (r *orbitRigImpl) TargetRadius() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.targetRadius
}

func (r *orbitRigImpl) TargetYaw() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.targetYaw
}

func (r *orbitRigImpl) TargetPitch() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.targetPitch
}

func (r *orbitRigImpl) FollowOffset() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.followOffset
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
