package scene

import (
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kestrelworks/roost/engine/camera"
)

// Scene manages a registry of Entities together with a Camera.
// Scenes can be hot-swapped via the Active flag to switch between different
// views or levels. Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active.
	Active() bool

	// SetActive sets whether this scene is active.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Add registers an entity in the scene and assigns it a unique ID.
	//
	// Parameters:
	//   - e: the entity to register
	//
	// Returns:
	//   - uint64: the assigned entity ID
	Add(e Entity) uint64

	// Remove removes the entity with the given ID from the scene.
	// Removing an unknown ID is a no-op.
	//
	// Parameters:
	//   - id: the entity ID to remove
	Remove(id uint64)

	// Entity retrieves the entity with the given ID.
	//
	// Parameters:
	//   - id: the entity ID to look up
	//
	// Returns:
	//   - Entity: the entity, or nil if not found
	Entity(id uint64) Entity

	// Entities returns a snapshot of all registered entities.
	//
	// Returns:
	//   - []Entity: the registered entities in unspecified order
	Entities() []Entity

	// Count returns the number of registered entities.
	//
	// Returns:
	//   - int: the entity count
	Count() int

	// FollowTargets returns the positions of all entities flagged as camera
	// follow targets.
	//
	// Returns:
	//   - []mgl32.Vec3: the follow target positions in unspecified order
	FollowTargets() []mgl32.Vec3

	// FollowTarget returns the position of the single follow target entity.
	// The camera only tracks an unambiguous target: when zero or more than
	// one entity is flagged, no position is returned.
	//
	// Returns:
	//   - mgl32.Vec3: the follow target position
	//   - bool: true if exactly one follow target exists
	FollowTarget() (mgl32.Vec3, bool)
}

// sceneImpl implements the Scene interface.
type sceneImpl struct {
	mu *sync.RWMutex

	name     string
	active   bool
	camera   camera.Camera
	entities map[uint64]Entity

	nextID atomic.Uint64
}

var _ Scene = &sceneImpl{}

// NewScene creates a new Scene with the provided options.
//
// Parameters:
//   - options: functional options for scene configuration
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		mu:       &sync.RWMutex{},
		name:     "scene",
		active:   true,
		entities: make(map[uint64]Entity),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *sceneImpl) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *sceneImpl) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *sceneImpl) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *sceneImpl) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *sceneImpl) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.camera
}

func (s *sceneImpl) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = cam
}

func (s *sceneImpl) Add(e Entity) uint64 {
	id := s.nextID.Add(1)
	if impl, ok := e.(*entityImpl); ok {
		impl.setID(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[id] = e
	return id
}

func (s *sceneImpl) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities, id)
}

func (s *sceneImpl) Entity(id uint64) Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entities[id]
}

func (s *sceneImpl) Entities() []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entity, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, e)
	}
	return out
}

func (s *sceneImpl) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

func (s *sceneImpl) FollowTargets() []mgl32.Vec3 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var targets []mgl32.Vec3
	for _, e := range s.entities {
		if e.IsFollowTarget() {
			targets = append(targets, e.Position())
		}
	}
	return targets
}

func (s *sceneImpl) FollowTarget() (mgl32.Vec3, bool) {
	targets := s.FollowTargets()
	if len(targets) != 1 {
		return mgl32.Vec3{}, false
	}
	return targets[0], true
}
