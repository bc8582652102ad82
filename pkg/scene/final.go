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
		Name:        "final",
		DisplayName: "The Next Week",
		Description: "Box field, motion blur, glass, fog, marble and an instanced sphere cluster",
	}, func(random *rand.Rand) *Scene {
		v := view{
			lookFrom:    core.NewVec3(478, 278, -600),
			lookAt:      core.NewVec3(278, 278, 0),
			vfov:        40,
			aspectRatio: 1,
		}
		return newScene(finalObjects(random), v, black, 800, 10000, random)
	})
}

func finalObjects(random *rand.Rand) *geometry.HittableList {
	// Ground of boxes with random heights
	ground := material.NewLambertian(core.NewColor(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	boxes := geometry.NewHittableList()
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomFloat(random, 1, 101)
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	// Cluster of small spheres
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for i := 0; i < 1000; i++ {
		cluster.Add(geometry.NewSphere(core.RandomVec3(random, 0, 165), 10, white))
	}

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	fogBoundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	haze := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))

	return geometry.NewHittableList(
		geometry.NewBVHFromList(boxes, shutterOpen, shutterClose, random),
		geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewColor(7, 7, 7))),
		geometry.NewMovingSphere(center1, center2, 0, 1, 50, material.NewLambertian(core.NewColor(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewColor(0.8, 0.8, 0.9), 1.0)),
		fogBoundary,
		geometry.NewConstantMediumColor(fogBoundary, 0.2, core.NewColor(0.2, 0.4, 0.9)),
		geometry.NewConstantMediumColor(haze, 0.0001, core.NewColor(1, 1, 1)),
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100,
			material.NewTexturedLambertian(texture.NewImage("resources/earthmap.jpg"))),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(texture.NewNoise(0.1, 0, random))),
		geometry.NewTranslate(
			geometry.NewRotateY(geometry.NewBVHFromList(cluster, shutterOpen, shutterClose, random), 15),
			core.NewVec3(-100, 270, 395)),
	)
}
