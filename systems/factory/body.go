package factory

import (
	"fmt"
	"image/color"

	"github.com/automoto/cubehop/components"
	"github.com/automoto/cubehop/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// attachBody creates a body for entry and links the two both ways.
func attachBody(entry *donburi.Entry, pw *physics.World, opts physics.BodyOptions) (*physics.Body, error) {
	opts.Data = entry
	body, err := pw.NewBody(opts)
	if err != nil {
		return nil, err
	}
	components.Body.SetValue(entry, components.BodyData{Body: body})
	return body, nil
}

func setMesh(entry *donburi.Entry, shape components.MeshShape, size mgl64.Vec3, c color.RGBA, pos mgl64.Vec3) {
	components.Mesh.SetValue(entry, components.MeshData{
		Shape:       shape,
		Size:        size,
		Color:       c,
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	})
}

// boxBody attaches a box body whose full extents are size.
func boxBody(entry *donburi.Entry, pw *physics.World, mass float64, size, pos mgl64.Vec3) (*physics.Body, error) {
	body, err := attachBody(entry, pw, physics.BodyOptions{
		Mass:     mass,
		Shape:    physics.NewBox(size.Mul(0.5)),
		Position: pos,
	})
	if err != nil {
		return nil, fmt.Errorf("box at %v: %w", pos, err)
	}
	return body, nil
}
