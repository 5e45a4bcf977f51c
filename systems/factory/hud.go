package factory

import (
	"github.com/automoto/cubehop/archetypes"
	"github.com/automoto/cubehop/components"
	"github.com/yohamta/donburi"
)

func CreateHUD(w donburi.World) *donburi.Entry {
	hud := archetypes.HUD.Spawn(w)
	components.HUD.SetValue(hud, components.HUDData{Scale: 1})
	return hud
}
