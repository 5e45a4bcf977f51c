package systems

import (
	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/yohamta/donburi"
)

// UpdateHUD advances the collect pulse by one tick.
func UpdateHUD(w donburi.World) {
	hudEntry, ok := components.HUD.First(w)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)
	if hud.Pulse == nil {
		hud.Scale = 1
		return
	}

	v, done := hud.Pulse.Update(float32(1 / float64(cfg.C.TPS)))
	hud.Scale = float64(v)
	if done {
		hud.Pulse = nil
		hud.Scale = 1
	}
}
