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

// CreateCollectible adds a dynamic cube at pos. The caller registers the
// collect behaviour on the returned entry's body.
func CreateCollectible(w donburi.World, pw *physics.World, pos mgl64.Vec3) (*donburi.Entry, error) {
	cube := archetypes.Collectible.Spawn(w)
	size := mgl64.Vec3{cfg.Level.CubeSize, cfg.Level.CubeSize, cfg.Level.CubeSize}
	if _, err := boxBody(cube, pw, cfg.Level.CubeMass, size, pos); err != nil {
		return nil, fmt.Errorf("create collectible: %w", err)
	}
	components.Collectible.SetValue(cube, components.CollectibleData{Collectible: true})
	setMesh(cube, components.MeshBox, size, cfg.Level.CubeColor, pos)
	return cube, nil
}
