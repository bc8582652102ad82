package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func init() {
	register(SceneInfo{
		Name:        "cornell-box",
		DisplayName: "Cornell Box",
		Description: "Red and green walls, a ceiling light and two rotated boxes",
	}, func(random *rand.Rand) *Scene {
		objects := cornellWalls(
			geometry.NewXZRect(213, 343, 227, 332, boxSize-1, material.NewDiffuseLight(core.NewColor(15, 15, 15))))
		tall, short := cornellBoxes()
		objects.Add(tall)
		objects.Add(short)
		return newScene(objects, cornellView(), black, 600, 400, random)
	})

	register(SceneInfo{
		Name:        "cornell-smoke",
		DisplayName: "Cornell Smoke",
		Description: "The Cornell box with its boxes replaced by black and white smoke",
	}, func(random *rand.Rand) *Scene {
		objects := cornellWalls(
			geometry.NewXZRect(113, 443, 127, 432, boxSize-1, material.NewDiffuseLight(core.NewColor(7, 7, 7))))
		tall, short := cornellBoxes()
		objects.Add(geometry.NewConstantMediumColor(tall, 0.01, core.NewColor(0, 0, 0)))
		objects.Add(geometry.NewConstantMediumColor(short, 0.01, core.NewColor(1, 1, 1)))
		return newScene(objects, cornellView(), black, 600, 200, random)
	})
}

func cornellView() view {
	return view{
		lookFrom:    core.NewVec3(278, 278, -800), // Outside the box looking in
		lookAt:      core.NewVec3(278, 278, 0),
		vfov:        40,
		aspectRatio: 1,
	}
}

// cornellWalls returns the five walls of the box plus the given light
func cornellWalls(light geometry.Hittable) *geometry.HittableList {
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewColor(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewColor(0.12, 0.45, 0.15))

	return geometry.NewHittableList(
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // left
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // right
		light,
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // back
	)
}

// cornellBoxes returns the tall and short white boxes
func cornellBoxes() (tall, short geometry.Hittable) {
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))

	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65))

	return tall, short
}
