package factory

import (
	"github.com/automoto/cubehop/archetypes"
	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Position: mgl64.Vec3{0, cfg.Camera.OffsetY, cfg.Camera.OffsetZ},
		FOV:      mgl64.DegToRad(cfg.Camera.FOV),
		Near:     cfg.Camera.Near,
		Far:      cfg.Camera.Far,
	})
	return camera
}
