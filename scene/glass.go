// Package scene provides analytic scenes that can be handed to a renderer as
// shaders.
package scene

import (
	"math"

	"github.com/achilleasa/sampletrace/optics"
	"github.com/achilleasa/sampletrace/types"
)

const (
	// Minimum hit distance; avoids self intersections.
	hitEpsilon float32 = 1e-4

	// Rays that bounce more than this many times return black.
	defaultMaxDepth = 6
)

// GlassScene is a glass sphere resting on a checkered floor under a sky
// gradient with a bright sun. Light hitting the sphere is split between the
// reflected and refracted paths using the Fresnel reflectance.
type GlassScene struct {
	Camera *Camera

	Center types.Vec3
	Radius float32
	IOR    float32

	// Colors of the transmitted light and the sky at the zenith.
	Tint types.Vec3
	Sky  types.Vec3

	SunDir       types.Vec3
	SunIntensity float32

	// Size of a floor checker tile.
	CheckerScale float32

	MaxDepth int
}

// Create the default glass scene for the given image aspect ratio.
func NewGlassScene(aspect, ior float32, sky, tint types.Vec3) *GlassScene {
	cam := NewCamera(45)
	cam.Position = types.XYZ(0, 0.6, 1.5)
	cam.LookAt = types.XYZ(0, 0, -3)
	cam.SetupProjection(aspect)

	return &GlassScene{
		Camera:       cam,
		Center:       types.XYZ(0, 0, -3),
		Radius:       1,
		IOR:          ior,
		Tint:         tint,
		Sky:          sky,
		SunDir:       types.XYZ(-0.4, 0.8, -0.5).Normalize(),
		SunIntensity: 4,
		CheckerScale: 0.5,
		MaxDepth:     defaultMaxDepth,
	}
}

// Shade implements tracer.Shader.
func (sc *GlassScene) Shade(u, v float32) types.Vec3 {
	return sc.trace(sc.Camera.Position, sc.Camera.Ray(u, v), 0)
}

func (sc *GlassScene) trace(origin, dir types.Vec3, depth int) types.Vec3 {
	if depth >= sc.MaxDepth {
		return types.Vec3{}
	}

	if t, ok := sc.intersectSphere(origin, dir); ok {
		hit := origin.Add(dir.Mul(t))
		normal := hit.Sub(sc.Center).Normalize()

		kr := optics.Fresnel(dir, normal, sc.IOR)
		reflected := optics.Reflect(dir, normal).Normalize()
		color := sc.trace(hit.Add(reflected.Mul(hitEpsilon)), reflected, depth+1).Mul(kr)

		if refracted, ok := optics.Refract(dir, normal, sc.IOR); ok && kr < 1 {
			refracted = refracted.Normalize()
			transmitted := sc.trace(hit.Add(refracted.Mul(hitEpsilon)), refracted, depth+1)
			color = color.Add(transmitted.MulVec(sc.Tint).Mul(1 - kr))
		}
		return color
	}

	// Floor plane at the bottom of the sphere.
	floorY := sc.Center[1] - sc.Radius
	if dir[1] < 0 {
		t := (floorY - origin[1]) / dir[1]
		if t > hitEpsilon {
			hit := origin.Add(dir.Mul(t))
			return sc.checker(hit).Mul(max(sc.SunDir[1], 0))
		}
	}

	return sc.background(dir)
}

// Checker pattern; plane coordinates are wrapped into a single tile pair.
func (sc *GlassScene) checker(p types.Vec3) types.Vec3 {
	uv := types.XY(p[0]*sc.CheckerScale, p[2]*sc.CheckerScale).Wrap()
	if (uv[0] < 0.5) != (uv[1] < 0.5) {
		return types.XYZ(0.9, 0.9, 0.9)
	}
	return types.XYZ(0.2, 0.2, 0.25)
}

func (sc *GlassScene) background(dir types.Vec3) types.Vec3 {
	t := 0.5 * (dir[1] + 1)
	color := types.Lerp(types.XYZ(1, 1, 1), sc.Sky, t)

	// The sun disc radiance exceeds 1 and is rescaled by the tracer.
	if dir.Dot(sc.SunDir) > 0.995 {
		color = color.Add(types.XYZ(1, 0.9, 0.7).Mul(sc.SunIntensity))
	}
	return color
}

func (sc *GlassScene) intersectSphere(origin, dir types.Vec3) (float32, bool) {
	oc := origin.Sub(sc.Center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - sc.Radius*sc.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	s := float32(math.Sqrt(float64(disc)))
	t := -b - s
	if t < hitEpsilon {
		t = -b + s
	}
	if t < hitEpsilon {
		return 0, false
	}
	return t, true
}
