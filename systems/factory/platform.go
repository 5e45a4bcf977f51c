package factory

import (
	"fmt"

	"github.com/automoto/cubehop/archetypes"
	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/levels"
	"github.com/automoto/cubehop/physics"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, pw *physics.World, p levels.Platform) (*donburi.Entry, error) {
	platform := archetypes.Platform.Spawn(w)
	if _, err := boxBody(platform, pw, 0, p.Size, p.Position); err != nil {
		return nil, fmt.Errorf("create platform: %w", err)
	}
	setMesh(platform, components.MeshBox, p.Size, cfg.Level.PlatformColor, p.Position)
	return platform, nil
}
