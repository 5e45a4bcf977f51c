package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HUDData struct {
	// Pulse scales the counter after a collect; nil when idle.
	Pulse *gween.Tween
	Scale float64
}

var HUD = donburi.NewComponentType[HUDData]()
