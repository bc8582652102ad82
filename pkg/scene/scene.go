package scene

import (
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"golang.org/x/xerrors"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	World      geometry.Hittable // BVH over every object in the scene
	Camera     *renderer.Camera
	Background integrator.Background

	// Recommended image settings
	AspectRatio     float64
	Width           int
	SamplesPerPixel int
	MaxDepth        int
}

// Height returns the image height implied by Width and AspectRatio
func (s *Scene) Height() int {
	return int(float64(s.Width) / s.AspectRatio)
}

// SamplingConfig returns the scene's recommended sampling settings
func (s *Scene) SamplingConfig() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: s.SamplesPerPixel,
		MaxDepth:        s.MaxDepth,
	}
}

// SceneInfo describes a catalogue entry
type SceneInfo struct {
	Name        string `json:"name"`        // Identifier accepted by Lookup
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

// ErrUnknownScene is returned by Lookup for names not in the catalogue
var ErrUnknownScene = xerrors.New("unknown scene")

type entry struct {
	info  SceneInfo
	build func(random *rand.Rand) *Scene
}

var catalogue = map[string]entry{}

func register(info SceneInfo, build func(random *rand.Rand) *Scene) {
	if _, ok := catalogue[info.Name]; ok {
		panic("scene: duplicate scene " + info.Name)
	}
	catalogue[info.Name] = entry{info: info, build: build}
}

// Names returns the sorted names of all catalogue scenes
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the catalogue sorted by name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(catalogue))
	for _, name := range Names() {
		infos = append(infos, catalogue[name].info)
	}
	return infos
}

// Lookup builds the named scene, drawing every random choice from random
func Lookup(name string, random *rand.Rand) (*Scene, error) {
	e, ok := catalogue[name]
	if !ok {
		return nil, xerrors.Errorf("while looking up %q: %w", name, ErrUnknownScene)
	}
	s := e.build(random)
	s.Name = name
	return s, nil
}

// view holds the camera placement shared by the builders
type view struct {
	lookFrom    core.Point3
	lookAt      core.Point3
	vfov        float64
	aperture    float64
	aspectRatio float64
}

const (
	focusDistance = 10.0
	shutterOpen   = 0.0
	shutterClose  = 1.0
)

var (
	skyBlue = core.NewColor(0.70, 0.80, 1.00)
	black   = core.Color{}
)

// newScene wraps the objects in a BVH and sets up the camera
func newScene(objects *geometry.HittableList, v view, background core.Color, width, samples int, random *rand.Rand) *Scene {
	camera := renderer.NewCameraWithTime(
		v.lookFrom, v.lookAt, core.NewVec3(0, 1, 0),
		v.vfov, v.aspectRatio, v.aperture, focusDistance,
		shutterOpen, shutterClose)

	return &Scene{
		World:           geometry.NewBVHFromList(objects, shutterOpen, shutterClose, random),
		Camera:          camera,
		Background:      integrator.NewFlat(background),
		AspectRatio:     v.aspectRatio,
		Width:           width,
		SamplesPerPixel: samples,
		MaxDepth:        50,
	}
}
