package scene

import (
	"github.com/kestrelworks/roost/engine/camera"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *sceneImpl)

// WithSceneName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSceneName(name string) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.name = name
	}
}

// WithActive sets whether the scene starts active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.active = active
	}
}

// WithCamera sets the scene's camera.
//
// Parameters:
//   - cam: the camera to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.camera = cam
	}
}

// WithEntities registers initial entities in the scene.
// Each entity is assigned a unique ID.
//
// Parameters:
//   - entities: the entities to register
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithEntities(entities ...Entity) SceneBuilderOption {
	return func(s *sceneImpl) {
		for _, e := range entities {
			id := s.nextID.Add(1)
			if impl, ok := e.(*entityImpl); ok {
				impl.setID(id)
			}
			s.entities[id] = e
		}
	}
}
