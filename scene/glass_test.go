package scene

import (
	"testing"

	"github.com/achilleasa/sampletrace/types"
)

func TestCameraRays(t *testing.T) {
	cam := NewCamera(90)
	cam.SetupProjection(1)

	if got := cam.Ray(0.5, 0.5); !types.EqualVec3(got, types.XYZ(0, 0, -1)) {
		t.Fatalf("expected center ray to point at LookAt; got %v", got)
	}

	// 90 degree fov: the top-left corner ray is (-1, 1, -1) before normalization.
	if got := cam.Ray(0, 0); !types.EqualVec3(got, types.XYZ(-1, 1, -1).Normalize()) {
		t.Fatalf("expected top-left ray; got %v", got)
	}
}

func TestGlassSceneShading(t *testing.T) {
	sky := types.XYZ(0.3, 0.5, 1)
	sc := NewGlassScene(1, 1.5, sky, types.XYZ(1, 1, 1))

	// Looking straight up only sees the sky.
	if got := sc.trace(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 0); !types.EqualVec3(got, sky) {
		t.Fatalf("expected zenith to be sky colored %v; got %v", sky, got)
	}

	// The view ray through the center of the image hits the sphere.
	if _, ok := sc.intersectSphere(sc.Camera.Position, sc.Camera.Ray(0.5, 0.5)); !ok {
		t.Fatal("expected center ray to hit the sphere")
	}

	for _, uv := range [][2]float32{{0.5, 0.5}, {0.1, 0.9}, {0.9, 0.1}, {0.5, 0.95}} {
		c := sc.Shade(uv[0], uv[1])
		if !types.IsValidVec3(c) || c[0] < 0 || c[1] < 0 || c[2] < 0 {
			t.Fatalf("expected valid non-negative radiance at %v; got %v", uv, c)
		}
	}
}

func TestGlassSceneDepthLimit(t *testing.T) {
	sc := NewGlassScene(1, 1.5, types.XYZ(1, 1, 1), types.XYZ(1, 1, 1))
	sc.MaxDepth = 0
	if got := sc.Shade(0.5, 0.5); got != (types.Vec3{}) {
		t.Fatalf("expected black beyond the depth limit; got %v", got)
	}
}

func TestChecker(t *testing.T) {
	sc := &GlassScene{CheckerScale: 1}
	a := sc.checker(types.XYZ(0.25, 0, 0.75))
	b := sc.checker(types.XYZ(0.75, 0, 0.75))
	if types.EqualVec3(a, b) {
		t.Fatal("expected neighbouring tiles to differ")
	}
	// Tiles repeat every unit, including for negative coordinates.
	if got := sc.checker(types.XYZ(-0.75, 0, -0.25)); !types.EqualVec3(got, a) {
		t.Fatalf("expected wrapped tile to match; got %v", got)
	}
}
