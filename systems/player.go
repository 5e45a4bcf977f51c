package systems

import (
	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/logger"
	"github.com/automoto/cubehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdatePlayer maps held directional keys onto the player's horizontal
// velocity and keeps the body upright.
func UpdatePlayer(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry).Body

	held := input(w)
	if held == nil {
		held = &components.InputData{}
	}

	vx, vz := moveVelocity(held)
	body.Velocity = mgl64.Vec3{vx, body.Velocity.Y(), vz}

	body.AngularVelocity = mgl64.Vec3{}
	body.Quaternion = mgl64.QuatIdent()
}

// moveVelocity evaluates the directional actions in order; a later action
// overwrites an earlier one on the same axis.
func moveVelocity(in *components.InputData) (vx, vz float64) {
	speed := cfg.Player.Speed
	for _, action := range cfg.MoveActions {
		if !in.Pressed(action) {
			continue
		}
		switch action {
		case cfg.ActionMoveForward:
			vz = -speed
		case cfg.ActionMoveBack:
			vz = speed
		case cfg.ActionMoveLeft:
			vx = -speed
		case cfg.ActionMoveRight:
			vx = speed
		}
	}
	return vx, vz
}

// Grounded reports whether the player can jump under the configured policy.
func Grounded(playerEntry *donburi.Entry) bool {
	if cfg.Player.GroundPolicy == cfg.GroundHeight {
		body := components.Body.Get(playerEntry).Body
		return body.Position.Y() <= cfg.Player.RestHeight
	}
	return components.Player.Get(playerEntry).Grounded()
}

// TryJump launches the player upward if grounded and reports whether it did.
func TryJump(w donburi.World) bool {
	playerEntry, ok := tags.Player.First(w)
	if !ok || !Grounded(playerEntry) {
		return false
	}
	body := components.Body.Get(playerEntry).Body
	body.Velocity[1] = cfg.Player.JumpSpeed

	logger.L().Debug("jump",
		zap.Float64("x", body.Position.X()),
		zap.Float64("y", body.Position.Y()),
		zap.Float64("z", body.Position.Z()),
	)
	return true
}
