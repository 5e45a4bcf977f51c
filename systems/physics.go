package systems

import (
	cfg "github.com/automoto/cubehop/config"
	"github.com/yohamta/donburi"
)

// UpdatePhysics advances the world by one fixed timestep, independent of the
// wall clock.
func UpdatePhysics(w donburi.World) {
	sess := session(w)
	if sess == nil || sess.World == nil {
		return
	}
	sess.World.Step(cfg.Physics.TimeStep)
	sess.Frames++
}
