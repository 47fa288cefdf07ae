package scene

import "github.com/go-gl/mathgl/mgl32"

// EntityBuilderOption is a functional option for configuring an Entity.
// Use the With* functions to create options.
type EntityBuilderOption func(*entityImpl)

// WithName sets the entity's display name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithName(name string) EntityBuilderOption {
	return func(e *entityImpl) {
		e.name = name
	}
}

// WithPosition sets the entity's initial world position.
//
// Parameters:
//   - position: the initial world position
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithPosition(position mgl32.Vec3) EntityBuilderOption {
	return func(e *entityImpl) {
		e.position = position
	}
}

// WithFollowTarget marks the entity as a camera follow target at creation.
//
// Parameters:
//   - follow: true to mark the entity as the camera's follow target
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithFollowTarget(follow bool) EntityBuilderOption {
	return func(e *entityImpl) {
		e.followTarget = follow
	}
}
