package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	FOV      float64 // vertical, radians
	Near     float64
	Far      float64
}

// ViewProjection returns the combined perspective and look-at matrix for a
// viewport with the given aspect ratio.
func (c *CameraData) ViewProjection(aspect float64) mgl64.Mat4 {
	proj := mgl64.Perspective(c.FOV, aspect, c.Near, c.Far)
	view := mgl64.LookAtV(c.Position, c.Target, mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Project maps a world point to screen pixels. depth is the NDC z in [-1,1];
// ok is false for points outside the near and far planes.
func Project(vp mgl64.Mat4, p mgl64.Vec3, width, height float64) (x, y, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = (ndc.X() + 1) / 2 * width
	y = (1 - ndc.Y()) / 2 * height
	return x, y, ndc.Z(), true
}

var Camera = donburi.NewComponentType[CameraData]()
