package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/cubehop/components"
	cfg "github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/levels"
	"github.com/automoto/cubehop/logger"
	"github.com/automoto/cubehop/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

var errNoSession = errors.New("systems: no session entity")

// BuildLevel populates w from layout: the ground plane, every platform with
// one collectible resting on it, and the player above the origin. The
// session must already exist.
func BuildLevel(w donburi.World, layout levels.Layout) (*donburi.Entry, error) {
	sess := session(w)
	if sess == nil || sess.World == nil {
		return nil, errNoSession
	}
	pw := sess.World

	if _, err := factory.CreateGround(w, pw); err != nil {
		return nil, err
	}

	for i, p := range layout.Platforms {
		if _, err := factory.CreatePlatform(w, pw, p); err != nil {
			return nil, fmt.Errorf("platform %d: %w", i, err)
		}
		cube, err := factory.CreateCollectible(w, pw, p.CubePosition(cfg.Level.CubeSize))
		if err != nil {
			return nil, fmt.Errorf("platform %d: %w", i, err)
		}
		components.Body.Get(cube).OnCollide(CollectOnContact(w, cube))
	}

	player, err := factory.CreatePlayer(w, pw, mgl64.Vec3{0, cfg.Player.SpawnY, 0})
	if err != nil {
		return nil, err
	}

	logger.L().Info("level built",
		zap.String("layout", layout.Name),
		zap.Int("platforms", len(layout.Platforms)),
		zap.Int("bodies", pw.Len()),
	)
	return player, nil
}
