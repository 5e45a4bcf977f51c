package systems

import (
	"math"
	"time"

	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdateBounce squashes the player mesh on Y while a directional key is held.
func UpdateBounce(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok || !playerEntry.HasComponent(components.Mesh) {
		return
	}
	mesh := components.Mesh.Get(playerEntry)

	in := input(w)
	if in == nil || !in.Moving() {
		mesh.Scale = mgl64.Vec3{1, 1, 1}
		return
	}

	now := time.Now
	if sess := session(w); sess != nil && sess.Now != nil {
		now = sess.Now
	}
	ms := float64(now().UnixMilli())
	mesh.Scale = mgl64.Vec3{1, BounceScale(ms), 1}
}

// BounceScale is the player's Y scale at wall time ms while moving.
func BounceScale(ms float64) float64 {
	return 1 + math.Sin(ms*cfg.Player.BounceRate)*cfg.Player.BounceAmplitude
}
