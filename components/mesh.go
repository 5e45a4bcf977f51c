package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type MeshShape int

const (
	MeshBox MeshShape = iota
	// MeshQuad is a flat square in the XZ plane; Size.Y is ignored.
	MeshQuad
)

// MeshData is a visual object in the scene.
type MeshData struct {
	Shape       MeshShape
	Size        mgl64.Vec3 // full extents before Scale
	Color       color.RGBA
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Scale       mgl64.Vec3
}

// Model returns the mesh's model matrix (translate * rotate * scale).
func (m *MeshData) Model() mgl64.Mat4 {
	return mgl64.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z()).
		Mul4(m.Orientation.Mat4()).
		Mul4(mgl64.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z()))
}

var Mesh = donburi.NewComponentType[MeshData]()
