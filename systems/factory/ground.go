package factory

import (
	"fmt"

	"github.com/automoto/cubehop/archetypes"
	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateGround adds the static ground plane at y=0 and its visible quad.
func CreateGround(w donburi.World, pw *physics.World) (*donburi.Entry, error) {
	ground := archetypes.Ground.Spawn(w)
	if _, err := attachBody(ground, pw, physics.BodyOptions{Shape: physics.NewPlane()}); err != nil {
		return nil, fmt.Errorf("create ground: %w", err)
	}
	size := cfg.Level.GroundSize
	setMesh(ground, components.MeshQuad, mgl64.Vec3{size, 0, size}, cfg.Level.GroundColor, mgl64.Vec3{})
	return ground, nil
}
