package archetypes

import (
	"github.com/automoto/cubehop/components"
	"github.com/automoto/cubehop/tags"
	"github.com/yohamta/donburi"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Mesh,
		components.Body,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Mesh,
		components.Body,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Mesh,
		components.Body,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Mesh,
		components.Body,
	)
	Foot = newArchetype(
		tags.Foot,
		components.Mesh,
		components.Follow,
	)
	Session = newArchetype(
		components.Session,
		components.Input,
	)
	Camera = newArchetype(
		components.Camera,
	)
	HUD = newArchetype(
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(a.components[:len(a.components):len(a.components)], cs...)
	return w.Entry(w.Create(all...))
}
