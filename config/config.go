package config

import "image/color"

// PhysicsConfig contains physics world configuration values
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`   // m/s^2 along Y
	TimeStep float64 `yaml:"time_step"` // seconds advanced per frame, regardless of wall clock
	Extent   float64 `yaml:"extent"`    // half-size of the broadphase region
	CellSize float64 `yaml:"cell_size"`
}

// GroundPolicy selects how the player's grounded state is derived
type GroundPolicy string

const (
	// GroundContacts: grounded while touching at least one static body
	GroundContacts GroundPolicy = "contacts"
	// GroundHeight: grounded while at or below RestHeight
	GroundHeight GroundPolicy = "height"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`

	// Physics
	Mass           float64 `yaml:"mass"`
	LinearDamping  float64 `yaml:"linear_damping"`
	AngularDamping float64 `yaml:"angular_damping"`

	// Dimensions
	Size       float64 `yaml:"size"`
	SpawnY     float64 `yaml:"spawn_y"`
	FootSize   float64 `yaml:"foot_size"`
	FootOffset float64 `yaml:"foot_offset"` // x distance of each foot from the body centre

	GroundPolicy GroundPolicy `yaml:"ground_policy"`
	RestHeight   float64      `yaml:"rest_height"` // only used by GroundHeight

	// Cosmetic bounce while moving
	BounceAmplitude float64 `yaml:"bounce_amplitude"`
	BounceRate      float64 `yaml:"bounce_rate"` // radians per millisecond

	Color     color.RGBA `yaml:"-"`
	FootColor color.RGBA `yaml:"-"`
}

// LevelConfig describes how platforms and collectibles are generated
type LevelConfig struct {
	GroundSize float64 `yaml:"ground_size"`

	Platforms      int     `yaml:"platforms"`
	PlatformWidth  float64 `yaml:"platform_width"`
	PlatformHeight float64 `yaml:"platform_height"`
	PlatformDepth  float64 `yaml:"platform_depth"`
	MaxPosition    float64 `yaml:"max_position"` // platforms spawn within +-MaxPosition on X and Z
	MinY           float64 `yaml:"min_y"`
	MaxY           float64 `yaml:"max_y"`

	CubeSize float64 `yaml:"cube_size"`
	CubeMass float64 `yaml:"cube_mass"`

	// Seed for random layouts; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
	// Map is an optional TMX layout replacing the random platforms.
	Map string `yaml:"map"`

	GroundColor   color.RGBA `yaml:"-"`
	PlatformColor color.RGBA `yaml:"-"`
	CubeColor     color.RGBA `yaml:"-"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	OffsetY float64 `yaml:"offset_y"`
	OffsetZ float64 `yaml:"offset_z"`
	FOV     float64 `yaml:"fov"` // vertical, degrees
	Near    float64 `yaml:"near"`
	Far     float64 `yaml:"far"`
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDFontSize   float64 `yaml:"hud_font_size"`
	DebugFontSize float64 `yaml:"debug_font_size"`
	HUDMargin     int     `yaml:"hud_margin"`

	PulseScale    float64 `yaml:"pulse_scale"`    // counter scale right after a collect
	PulseDuration float64 `yaml:"pulse_duration"` // seconds

	HUDTextColor    color.RGBA `yaml:"-"`
	BackgroundColor color.RGBA `yaml:"-"`
}

// LoggingConfig configures the process logger
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // draw frame and body counters
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Level LevelConfig
var Camera CameraConfig
var UI UIConfig
var Logging LoggingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	SkyBlue = color.RGBA{R: 20, G: 24, B: 36, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its default value.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "cubehop",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:  -9.82,
		TimeStep: 1.0 / 60.0,
		Extent:   64,
		CellSize: 1,
	}

	Player = PlayerConfig{
		Speed:     5,
		JumpSpeed: 5,

		Mass:           1,
		LinearDamping:  0.9,
		AngularDamping: 0.9,

		Size:       0.5,
		SpawnY:     2.5,
		FootSize:   0.2,
		FootOffset: 0.3,

		GroundPolicy: GroundContacts,
		RestHeight:   0.26, // resting centre height on the ground plus a little slack

		BounceAmplitude: 0.1,
		BounceRate:      0.005,

		Color:     Red,
		FootColor: Blue,
	}

	Level = LevelConfig{
		GroundSize: 10,

		Platforms:      5,
		PlatformWidth:  1,
		PlatformHeight: 0.1,
		PlatformDepth:  1,
		MaxPosition:    4,
		MinY:           0.5,
		MaxY:           2, // below the player's jump apex

		CubeSize: 0.3,
		CubeMass: 1,

		GroundColor:   Green,
		PlatformColor: Blue,
		CubeColor:     Magenta,
	}

	Camera = CameraConfig{
		OffsetY: 2,
		OffsetZ: 5,
		FOV:     75,
		Near:    0.1,
		Far:     1000,
	}

	UI = UIConfig{
		HUDFontSize:   18,
		DebugFontSize: 12,
		HUDMargin:     12,

		PulseScale:    1.6,
		PulseDuration: 0.4,

		HUDTextColor:    White,
		BackgroundColor: SkyBlue,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	Debug = DebugConfig{}
}
