package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/texture"
)

func init() {
	register(SceneInfo{
		Name:        "random",
		DisplayName: "Random Spheres",
		Description: "Hundreds of small diffuse, metal and glass spheres around three large ones",
	}, func(random *rand.Rand) *Scene {
		return newScene(randomSpheres(random, false), coverView(0.1, 3.0/2.0), skyBlue, 1200, 500, random)
	})

	register(SceneInfo{
		Name:        "random-moving",
		DisplayName: "Random Spheres (motion blur)",
		Description: "The random sphere field on a checker ground with bouncing diffuse spheres",
	}, func(random *rand.Rand) *Scene {
		return newScene(randomSpheres(random, true), coverView(0.1, 16.0/9.0), skyBlue, 600, 200, random)
	})

	register(SceneInfo{
		Name:        "two-spheres",
		DisplayName: "Two Checkered Spheres",
		Description: "Two large spheres sharing a checker texture",
	}, func(random *rand.Rand) *Scene {
		checker := texture.NewCheckerColors(core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9))
		mat := material.NewTexturedLambertian(checker)
		objects := geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, -10, 0), 10, mat),
			geometry.NewSphere(core.NewVec3(0, 10, 0), 10, mat),
		)
		return newScene(objects, coverView(0, 16.0/9.0), skyBlue, 400, 100, random)
	})

	register(SceneInfo{
		Name:        "two-perlin-spheres",
		DisplayName: "Marble Spheres",
		Description: "A ground sphere and a small sphere with Perlin marble texture",
	}, func(random *rand.Rand) *Scene {
		return newScene(perlinSpheres(random), coverView(0, 16.0/9.0), skyBlue, 400, 100, random)
	})

	register(SceneInfo{
		Name:        "earth",
		DisplayName: "Earth",
		Description: "A globe with an image texture placeholder",
	}, func(random *rand.Rand) *Scene {
		surface := material.NewTexturedLambertian(texture.NewImage("resources/earthmap.jpg"))
		objects := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, surface))
		return newScene(objects, coverView(0, 16.0/9.0), skyBlue, 400, 100, random)
	})

	register(SceneInfo{
		Name:        "simple-light",
		DisplayName: "Simple Light",
		Description: "Marble spheres lit by a rectangular area light",
	}, func(random *rand.Rand) *Scene {
		objects := perlinSpheres(random)
		objects.Add(geometry.NewXYRect(3, 5, 1, 3, -2, material.NewDiffuseLight(core.NewColor(4, 4, 4))))
		v := view{
			lookFrom:    core.NewVec3(26, 3, 6),
			lookAt:      core.NewVec3(0, 2, 0),
			vfov:        20,
			aspectRatio: 16.0 / 9.0,
		}
		return newScene(objects, v, black, 400, 400, random)
	})
}

// coverView is the camera used by the first book's scenes
func coverView(aperture, aspectRatio float64) view {
	return view{
		lookFrom:    core.NewVec3(13, 2, 3),
		lookAt:      core.NewVec3(0, 0, 0),
		vfov:        20,
		aperture:    aperture,
		aspectRatio: aspectRatio,
	}
}

// randomSpheres builds the sphere field. With moving set, the ground is
// checkered and diffuse spheres bounce during the shutter interval.
func randomSpheres(random *rand.Rand, moving bool) *geometry.HittableList {
	var groundMaterial material.Material = material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	if moving {
		groundMaterial = material.NewTexturedLambertian(
			texture.NewCheckerColors(core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9)))
	}
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				mat := material.NewLambertian(albedo)
				if moving {
					center2 := center.Add(core.NewVec3(0, core.RandomFloat(random, 0, 0.5), 0))
					world.Add(geometry.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
				} else {
					world.Add(geometry.NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := core.RandomFloat(random, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// glass
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)))

	return world
}

func perlinSpheres(random *rand.Rand) *geometry.HittableList {
	marble := material.NewTexturedLambertian(texture.NewNoise(4, 2, random))
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
}
