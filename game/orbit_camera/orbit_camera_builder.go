package orbit_camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitRigOption is a functional option for configuring an OrbitRig.
type OrbitRigOption func(*orbitRigImpl)

// WithRadius sets the initial orbit radius (distance from the focus point).
// The target radius starts at the same value.
//
// Parameters:
//   - radius: distance from the focus point
//
// Returns:
//   - OrbitRigOption: functional option to set the radius
func WithRadius(radius float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.targetRadius = radius
	}
}

// WithYaw sets the initial yaw angle. The target yaw starts at the same value.
//
// Parameters:
//   - yaw: horizontal angle in radians (0 = +Z axis)
//
// Returns:
//   - OrbitRigOption: functional option to set the yaw
func WithYaw(yaw float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.yaw = yaw
		r.targetYaw = yaw
	}
}

// WithPitch sets the initial pitch angle. The target pitch starts at the same
// value.
//
// Parameters:
//   - pitch: vertical angle in radians (negative looks down at the target)
//
// Returns:
//   - OrbitRigOption: functional option to set the pitch
func WithPitch(pitch float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.targetPitch = pitch
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - OrbitRigOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.minRadius = min
		r.maxRadius = max
	}
}

// WithPitchBounds sets the minimum and maximum pitch angle. Pitch clamping
// prevents gimbal flip at the poles.
//
// Parameters:
//   - min: minimum vertical angle in radians
//   - max: maximum vertical angle in radians
//
// Returns:
//   - OrbitRigOption: functional option to set pitch bounds
func WithPitchBounds(min, max float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.minPitch = min
		r.maxPitch = max
	}
}

// WithSmoothing sets the per-channel exponential-decay rates. A rate <= 0
// makes that channel snap directly to its target every frame (the "direct"
// rig variant).
//
// Parameters:
//   - rotation: yaw/pitch decay rate in 1/seconds
//   - zoom: radius decay rate in 1/seconds
//   - position: final camera position decay rate in 1/seconds
//
// Returns:
//   - OrbitRigOption: functional option to set smoothing rates
func WithSmoothing(rotation, zoom, position float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.rotationSmoothness = rotation
		r.zoomSmoothness = zoom
		r.positionSmoothness = position
	}
}

// WithMouseSensitivity sets the yaw/pitch input scaling applied to
// pointer-motion deltas.
//
// Parameters:
//   - sensitivity: radians per pixel of pointer motion
//
// Returns:
//   - OrbitRigOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.mouseSensitivity = sensitivity
	}
}

// WithZoomSensitivity sets the radius input scaling applied to scroll deltas.
//
// Parameters:
//   - sensitivity: world units per scroll step
//
// Returns:
//   - OrbitRigOption: functional option to set zoom sensitivity
func WithZoomSensitivity(sensitivity float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.zoomSensitivity = sensitivity
	}
}

// WithFollowOffset sets the world-space offset added to the followed target's
// position when computing the focus point.
//
// Parameters:
//   - x, y, z: offset components in world units
//
// Returns:
//   - OrbitRigOption: functional option to set the follow offset
func WithFollowOffset(x, y, z float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.followOffset = mgl32.Vec3{x, y, z}
	}
}

// WithPosition sets the initial world-space camera position.
//
// Parameters:
//   - x, y, z: position components in world units
//
// Returns:
//   - OrbitRigOption: functional option to set the position
func WithPosition(x, y, z float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.position = mgl32.Vec3{x, y, z}
	}
}
