package systems

import (
	"errors"

	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/logger"
	"github.com/automoto/cubehop/physics"
	"github.com/automoto/cubehop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// CollectOnContact returns the collide listener for a collectible entity.
// The first contact with the player clears the flag, hides the mesh and
// queues the body for removal; later contacts do nothing.
func CollectOnContact(w donburi.World, entry *donburi.Entry) physics.ContactListener {
	return func(ev physics.ContactEvent) {
		if !entry.Valid() || !isPlayer(ev.Other) {
			return
		}
		c := components.Collectible.Get(entry)
		if !c.Collectible {
			return
		}
		sess := session(w)
		if sess == nil {
			return
		}
		c.Collectible = false
		sess.Removals = append(sess.Removals, ev.Body.ID())
		sess.Collected++

		if entry.HasComponent(components.Mesh) {
			entry.RemoveComponent(components.Mesh)
		}
		startPulse(w)

		logger.L().Info("collected",
			zap.Uint64("body", uint64(ev.Body.ID())),
			zap.Int("total", sess.Collected),
		)
	}
}

func isPlayer(b *physics.Body) bool {
	if b == nil {
		return false
	}
	e, ok := b.Data.(*donburi.Entry)
	return ok && e.Valid() && e.HasComponent(tags.Player)
}

func startPulse(w donburi.World) {
	hudEntry, ok := components.HUD.First(w)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)
	hud.Pulse = gween.New(float32(cfg.UI.PulseScale), 1, float32(cfg.UI.PulseDuration), ease.OutQuad)
	hud.Scale = cfg.UI.PulseScale
}

// UpdateRemovals drains the removal queue before the world steps. Bodies the
// world no longer holds are skipped.
func UpdateRemovals(w donburi.World) {
	sess := session(w)
	if sess == nil || len(sess.Removals) == 0 {
		return
	}

	for _, id := range sess.Removals {
		body, ok := sess.World.Body(id)
		if !ok {
			logger.L().Debug("removal skipped", zap.Uint64("body", uint64(id)))
			continue
		}
		if err := sess.World.Remove(body); err != nil {
			if errors.Is(err, physics.ErrBodyNotFound) {
				logger.L().Debug("removal skipped", zap.Uint64("body", uint64(id)))
				continue
			}
			logger.L().Warn("removal failed", zap.Uint64("body", uint64(id)), zap.Error(err))
			continue
		}
		if entry, ok := body.Data.(*donburi.Entry); ok && entry.Valid() {
			w.Remove(entry.Entity())
		}
	}
	sess.Removals = sess.Removals[:0]
}
