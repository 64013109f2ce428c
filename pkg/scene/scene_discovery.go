package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func() *Scene
}

var builtinScenes = map[string]SceneInfo{
	"default": {
		Name:        "default",
		Description: "Diffuse, hollow glass and metal spheres on a ground sphere",
		build:       NewDefaultScene,
	},
	"defocus": {
		Name:        "defocus",
		Description: "Default scene through a wide aperture lens",
		build:       NewDefocusScene,
	},
	"normals": {
		Name:        "normals",
		Description: "Sphere and ground shaded by surface normal",
		build:       NewNormalsScene,
	},
	"spheregrid": {
		Name:        "spheregrid",
		Description: "Field of random small spheres around three large ones",
		build:       NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Names returns the sorted names of the built-in scenes
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.Name
	}
	return names
}

// New builds the named scene
func New(name string) (*Scene, error) {
	info, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return info.build(), nil
}
