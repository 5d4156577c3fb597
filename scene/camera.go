package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/sampletrace/types"
)

// Stores the ray directions at the four corners of the camera frustrum. Per
// pixel rays are generated by interpolating the corner rays.
type Frustrum [4]types.Vec3

func (fr Frustrum) String() string {
	return fmt.Sprintf(
		"Frustrum Rays:\nTL : (%3.3f, %3.3f, %3.3f)\nTR : (%3.3f, %3.3f, %3.3f)\nBL : (%3.3f, %3.3f, %3.3f)\nBR : (%3.3f, %3.3f, %3.3f)",
		fr[0][0], fr[0][1], fr[0][2],
		fr[1][0], fr[1][1], fr[1][2],
		fr[2][0], fr[2][1], fr[2][2],
		fr[3][0], fr[3][1], fr[3][2],
	)
}

// The camera type controls the scene camera.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	FOV float32

	Frustrum Frustrum
}

func NewCamera(fov float32) *Camera {
	return &Camera{
		Position: types.Vec3{0, 0, 0},
		LookAt:   types.Vec3{0, 0, -1},
		Up:       types.Vec3{0, 1, 0},
		FOV:      fov,
	}
}

// Recalculate the frustrum corners for the given aspect ratio (width / height).
func (c *Camera) SetupProjection(aspect float32) {
	dir := c.LookAt.Sub(c.Position).Normalize()
	right := dir.Cross(c.Up).Normalize()
	up := right.Cross(dir)

	halfH := float32(math.Tan(float64(c.FOV) * math.Pi / 360))
	halfW := halfH * aspect

	c.Frustrum = Frustrum{
		dir.Add(up.Mul(halfH)).Sub(right.Mul(halfW)),
		dir.Add(up.Mul(halfH)).Add(right.Mul(halfW)),
		dir.Sub(up.Mul(halfH)).Sub(right.Mul(halfW)),
		dir.Sub(up.Mul(halfH)).Add(right.Mul(halfW)),
	}
}

// Get the normalized ray direction through image plane point (u, v) where
// (0, 0) is the top-left corner.
func (c *Camera) Ray(u, v float32) types.Vec3 {
	top := types.Lerp(c.Frustrum[0], c.Frustrum[1], u)
	bottom := types.Lerp(c.Frustrum[2], c.Frustrum[3], u)
	return types.Lerp(top, bottom, v).Normalize()
}
