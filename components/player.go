package components

import (
	"github.com/automoto/cubehop/physics"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Supports holds the static bodies currently touching the player.
	Supports map[physics.BodyID]struct{}
	Feet     [2]*donburi.Entry
}

func (p *PlayerData) AddSupport(id physics.BodyID) {
	if p.Supports == nil {
		p.Supports = make(map[physics.BodyID]struct{})
	}
	p.Supports[id] = struct{}{}
}

func (p *PlayerData) RemoveSupport(id physics.BodyID) {
	delete(p.Supports, id)
}

var Player = donburi.NewComponentType[PlayerData]()

// Grounded reports whether any static body supports the player.
func (p *PlayerData) Grounded() bool {
	return len(p.Supports) > 0
}
