package main

import (
	"errors"
	"flag"
	"image"
	"strings"

	"github.com/automoto/cubehop/config"
	"github.com/automoto/cubehop/levels"
	"github.com/automoto/cubehop/logger"
	"github.com/automoto/cubehop/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(layout levels.Layout) (*Game, error) {
	scene, err := scenes.NewWorldScene(layout)
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default settings")
	mapName := flag.String("level", "", "TMX file or built-in map ("+strings.Join(levels.Embedded(), ", ")+"); empty for random platforms")
	seed := flag.Int64("seed", 0, "Seed for random platforms (0 = clock)")
	debug := flag.Bool("debug", false, "Show the debug overlay and log at debug level")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			// The logger is not configured yet.
			logger.Set(zap.Must(zap.NewDevelopment()))
			logger.L().Fatal("load config", zap.Error(err))
		}
	}

	// Flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			config.Level.Map = *mapName
		case "seed":
			config.Level.Seed = *seed
		case "debug":
			config.Debug.Overlay = *debug
			if *debug {
				config.Logging.Level = "debug"
			}
		}
	})

	if err := logger.Init(logger.Config{Level: config.Logging.Level, Format: config.Logging.Format}); err != nil {
		logger.Set(zap.Must(zap.NewDevelopment()))
		logger.L().Fatal("init logger", zap.Error(err))
	}
	defer logger.Sync()
	log := logger.L()

	layout, usedSeed, err := levels.Select(config.Level)
	if err != nil {
		if errors.Is(err, levels.ErrUnknownMap) {
			log.Fatal("unknown level", zap.String("level", config.Level.Map), zap.Strings("builtin", levels.Embedded()))
		}
		log.Fatal("load level", zap.Error(err))
	}
	log.Info("starting",
		zap.String("layout", layout.Name),
		zap.Int("platforms", len(layout.Platforms)),
		zap.Uint64("seed", usedSeed),
		zap.String("grounded", string(config.Player.GroundPolicy)),
	)

	game, err := NewGame(layout)
	if err != nil {
		log.Fatal("create game", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", zap.Error(err))
	}
}
