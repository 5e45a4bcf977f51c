package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid value")

// file mirrors the globals for YAML overrides. Keys that are absent keep
// their current value.
type file struct {
	Window  Config        `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Level   LevelConfig   `yaml:"level"`
	Camera  CameraConfig  `yaml:"camera"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
	Input   inputFile     `yaml:"input"`
}

type inputFile struct {
	Forward []string `yaml:"forward"`
	Back    []string `yaml:"back"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Jump    []string `yaml:"jump"`
}

// Load overlays the YAML file at path onto the current configuration.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := LoadBytes(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadBytes overlays YAML data onto the current configuration. Nothing is
// applied unless the merged result validates.
func LoadBytes(data []byte) error {
	f := file{
		Window:  *C,
		Physics: Physics,
		Player:  Player,
		Level:   Level,
		Camera:  Camera,
		UI:      UI,
		Logging: Logging,
		Debug:   Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	window := f.Window
	C = &window
	Physics = f.Physics
	Player = f.Player
	Level = f.Level
	Camera = f.Camera
	UI = f.UI
	Logging = f.Logging
	Debug = f.Debug

	overrides := map[ActionID][]string{
		ActionMoveForward: f.Input.Forward,
		ActionMoveBack:    f.Input.Back,
		ActionMoveLeft:    f.Input.Left,
		ActionMoveRight:   f.Input.Right,
		ActionJump:        f.Input.Jump,
	}
	for id, keys := range overrides {
		if len(keys) > 0 {
			Input.Bindings[id] = InputBinding{Keys: keys}
		}
	}
	return nil
}

func (f *file) validate() error {
	invalid := func(field string, v any) error {
		return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, field, v)
	}

	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return invalid("window size", fmt.Sprintf("%dx%d", f.Window.Width, f.Window.Height))
	case f.Window.TPS <= 0:
		return invalid("window.tps", f.Window.TPS)
	case !(f.Physics.TimeStep > 0):
		return invalid("physics.time_step", f.Physics.TimeStep)
	case !(f.Player.Mass > 0):
		return invalid("player.mass", f.Player.Mass)
	case !(f.Player.Size > 0):
		return invalid("player.size", f.Player.Size)
	case f.Player.GroundPolicy != GroundContacts && f.Player.GroundPolicy != GroundHeight:
		return invalid("player.ground_policy", f.Player.GroundPolicy)
	case f.Level.Platforms < 0:
		return invalid("level.platforms", f.Level.Platforms)
	case f.Level.MaxY < f.Level.MinY:
		return invalid("level.max_y", f.Level.MaxY)
	case !(f.Level.CubeSize > 0):
		return invalid("level.cube_size", f.Level.CubeSize)
	case !(f.Camera.Near > 0) || f.Camera.Far <= f.Camera.Near:
		return invalid("camera near/far", fmt.Sprintf("%v/%v", f.Camera.Near, f.Camera.Far))
	case !(f.Camera.FOV > 0) || f.Camera.FOV >= 180:
		return invalid("camera.fov", f.Camera.FOV)
	}
	return nil
}
