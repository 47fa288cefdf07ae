package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// entityImpl implements the Entity interface.
type entityImpl struct {
	mu *sync.RWMutex

	id           uint64
	name         string
	position     mgl32.Vec3
	followTarget bool
}

// Entity is a named object placed in a scene.
// Entities carry a world position and may be flagged as the camera's
// follow target.
type Entity interface {
	// ID returns the scene-assigned identifier of the entity.
	//
	// Returns:
	//   - uint64: the entity identifier (0 until added to a scene)
	ID() uint64

	// Name returns the display name of the entity.
	//
	// Returns:
	//   - string: the entity name
	Name() string

	// Position returns the entity's current world position.
	//
	// Returns:
	//   - mgl32.Vec3: the world position
	Position() mgl32.Vec3

	// SetPosition moves the entity to a new world position.
	//
	// Parameters:
	//   - position: the new world position
	SetPosition(position mgl32.Vec3)

	// IsFollowTarget reports whether the camera should track this entity.
	//
	// Returns:
	//   - bool: true if this entity is a camera follow target
	IsFollowTarget() bool

	// SetFollowTarget marks or unmarks the entity as a camera follow target.
	//
	// Parameters:
	//   - follow: true to mark the entity as the camera's follow target
	SetFollowTarget(follow bool)
}

var _ Entity = &entityImpl{}

// NewEntity creates a new Entity with the provided options.
//
// Parameters:
//   - options: functional options for entity configuration
//
// Returns:
//   - Entity: the newly created entity
func NewEntity(options ...EntityBuilderOption) Entity {
	e := &entityImpl{
		mu:   &sync.RWMutex{},
		name: "entity",
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *entityImpl) ID() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.id
}

func (e *entityImpl) Name() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.name
}

func (e *entityImpl) Position() mgl32.Vec3 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.position
}

func (e *entityImpl) SetPosition(position mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position = position
}

func (e *entityImpl) IsFollowTarget() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.followTarget
}

func (e *entityImpl) SetFollowTarget(follow bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.followTarget = follow
}

// setID is called by the owning scene when the entity is registered.
func (e *entityImpl) setID(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = id
}
