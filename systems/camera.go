package systems

import (
	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdateCamera places the camera at a fixed offset from the player and
// aims it at the player. There is no smoothing.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.FOV = mgl64.DegToRad(cfg.Camera.FOV)
	camera.Near = cfg.Camera.Near
	camera.Far = cfg.Camera.Far

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return // nothing to follow yet
	}
	p := components.Body.Get(playerEntry).Position

	camera.Position = p.Add(mgl64.Vec3{0, cfg.Camera.OffsetY, cfg.Camera.OffsetZ})
	camera.Target = p
}
