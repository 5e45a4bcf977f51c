package factory

import (
	"fmt"

	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// CreateSpace builds the physics world from the current configuration.
func CreateSpace() (*physics.World, error) {
	pw, err := physics.NewWorld(physics.Config{
		Gravity:  mgl64.Vec3{0, cfg.Physics.Gravity, 0},
		Extent:   cfg.Physics.Extent,
		CellSize: cfg.Physics.CellSize,
	})
	if err != nil {
		return nil, fmt.Errorf("create space: %w", err)
	}
	return pw, nil
}
