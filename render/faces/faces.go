// Package faces turns scene meshes into screen-space polygons ordered for
// painter's-algorithm drawing.
package faces

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/automoto/cubehop/components"
	"github.com/go-gl/mathgl/mgl64"
)

// Face is a projected convex quad.
type Face struct {
	Points [4]mgl64.Vec2 // screen pixels
	Depth  float64       // mean NDC depth; larger is farther
	Color  color.RGBA    // shaded
}

// Light is the direction towards the light, used for flat shading.
var Light = mgl64.Vec3{0.4, 1, 0.6}.Normalize()

const ambient = 0.55

type side struct {
	corners [4]int
	normal  mgl64.Vec3
}

// Corner i of the unit cube has x, y, z set by bits 0, 1, 2.
var boxSides = [6]side{
	{[4]int{1, 3, 7, 5}, mgl64.Vec3{1, 0, 0}},
	{[4]int{0, 4, 6, 2}, mgl64.Vec3{-1, 0, 0}},
	{[4]int{2, 6, 7, 3}, mgl64.Vec3{0, 1, 0}},
	{[4]int{0, 1, 5, 4}, mgl64.Vec3{0, -1, 0}},
	{[4]int{4, 5, 7, 6}, mgl64.Vec3{0, 0, 1}},
	{[4]int{0, 2, 3, 1}, mgl64.Vec3{0, 0, -1}},
}

var quadCorners = [4]mgl64.Vec3{
	{-0.5, 0, -0.5},
	{0.5, 0, -0.5},
	{0.5, 0, 0.5},
	{-0.5, 0, 0.5},
}

func unitCorner(i int) mgl64.Vec3 {
	c := mgl64.Vec3{-0.5, -0.5, -0.5}
	for axis := 0; axis < 3; axis++ {
		if i&(1<<axis) != 0 {
			c[axis] = 0.5
		}
	}
	return c
}

// Build projects every visible face of meshes through cam onto a viewport of
// width x height pixels and returns them farthest first. Faces pointing away
// from the camera or crossing the near plane are dropped.
func Build(meshes []components.MeshData, cam *components.CameraData, width, height float64) []Face {
	if width <= 0 || height <= 0 {
		return nil
	}
	vp := cam.ViewProjection(width / height)

	out := make([]Face, 0, len(meshes)*3)
	for i := range meshes {
		m := &meshes[i]
		model := m.Model()
		switch m.Shape {
		case components.MeshQuad:
			// Split into unit tiles so a quad partly behind the camera
			// still draws the part in front.
			nx := max(1, int(math.Ceil(m.Size.X())))
			nz := max(1, int(math.Ceil(m.Size.Z())))
			normal := m.Orientation.Rotate(mgl64.Vec3{0, 1, 0})
			for ix := 0; ix < nx; ix++ {
				for iz := 0; iz < nz; iz++ {
					var world [4]mgl64.Vec3
					for k, c := range quadCorners {
						local := mgl64.Vec3{
							(float64(ix)+c.X()+0.5)/float64(nx) - 0.5,
							0,
							(float64(iz)+c.Z()+0.5)/float64(nz) - 0.5,
						}
						world[k] = transform(model, mul(local, m.Size))
					}
					if f, ok := project(vp, world, width, height); ok {
						f.Color = shade(m.Color, normal)
						out = append(out, f)
					}
				}
			}
		default:
			var corners [8]mgl64.Vec3
			for k := range corners {
				corners[k] = transform(model, mul(unitCorner(k), m.Size))
			}
			for _, s := range boxSides {
				var world [4]mgl64.Vec3
				for k, idx := range s.corners {
					world[k] = corners[idx]
				}
				normal := m.Orientation.Rotate(s.normal)
				if normal.Dot(centre(world).Sub(cam.Position)) >= 0 {
					continue
				}
				if f, ok := project(vp, world, width, height); ok {
					f.Color = shade(m.Color, normal)
					out = append(out, f)
				}
			}
		}
	}

	slices.SortStableFunc(out, func(a, b Face) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return out
}

func project(vp mgl64.Mat4, world [4]mgl64.Vec3, width, height float64) (Face, bool) {
	var f Face
	for k, p := range world {
		x, y, depth, ok := components.Project(vp, p, width, height)
		if !ok {
			return Face{}, false
		}
		f.Points[k] = mgl64.Vec2{x, y}
		f.Depth += depth / 4
	}
	return f, true
}

func shade(c color.RGBA, normal mgl64.Vec3) color.RGBA {
	k := ambient + (1-ambient)*math.Max(0, normal.Dot(Light))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

func transform(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, m)
}

func mul(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func centre(q [4]mgl64.Vec3) mgl64.Vec3 {
	return q[0].Add(q[1]).Add(q[2]).Add(q[3]).Mul(0.25)
}
