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

// CreatePlayer adds the player cube at pos with two feet following it.
// Static bodies touching the player are tracked as supports.
func CreatePlayer(w donburi.World, pw *physics.World, pos mgl64.Vec3) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(w)

	size := cfg.Player.Size
	body, err := attachBody(player, pw, physics.BodyOptions{
		Mass:           cfg.Player.Mass,
		Shape:          physics.NewBox(mgl64.Vec3{size / 2, size / 2, size / 2}),
		Position:       pos,
		LinearDamping:  cfg.Player.LinearDamping,
		AngularDamping: cfg.Player.AngularDamping,
		FixedRotation:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	setMesh(player, components.MeshBox, mgl64.Vec3{size, size, size}, cfg.Player.Color, pos)

	data := components.PlayerData{Supports: make(map[physics.BodyID]struct{})}
	for i, side := range [2]float64{-1, 1} {
		data.Feet[i] = createFoot(w, player, mgl64.Vec3{side * cfg.Player.FootOffset, 0, 0})
	}
	components.Player.SetValue(player, data)

	body.OnBeginContact(func(ev physics.ContactEvent) {
		if ev.Other.IsStatic() {
			components.Player.Get(player).AddSupport(ev.Other.ID())
		}
	})
	body.OnEndContact(func(ev physics.ContactEvent) {
		components.Player.Get(player).RemoveSupport(ev.Other.ID())
	})

	return player, nil
}

// createFoot adds a visual-only foot pinned to target at offset.
func createFoot(w donburi.World, target *donburi.Entry, offset mgl64.Vec3) *donburi.Entry {
	foot := archetypes.Foot.Spawn(w)
	fs := cfg.Player.FootSize
	pos := components.Mesh.Get(target).Position.Add(offset)
	setMesh(foot, components.MeshBox, mgl64.Vec3{fs, fs, fs}, cfg.Player.FootColor, pos)
	components.Follow.SetValue(foot, components.FollowData{Target: target, Offset: offset})
	return foot
}
