package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadBytes(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  error
		validate func(t *testing.T)
	}{
		{
			name: "partial override keeps defaults",
			content: `physics:
  gravity: -3.5
player:
  jump_speed: 7
  ground_policy: height
level:
  platforms: 8
  seed: 42
`,
			validate: func(t *testing.T) {
				if Physics.Gravity != -3.5 {
					t.Errorf("Physics.Gravity = %v, want -3.5", Physics.Gravity)
				}
				if Physics.TimeStep != 1.0/60.0 {
					t.Errorf("Physics.TimeStep = %v, want default 1/60", Physics.TimeStep)
				}
				if Player.JumpSpeed != 7 || Player.Speed != 5 {
					t.Errorf("Player speeds = %v/%v, want 5/7", Player.Speed, Player.JumpSpeed)
				}
				if Player.GroundPolicy != GroundHeight {
					t.Errorf("Player.GroundPolicy = %q, want height", Player.GroundPolicy)
				}
				if Level.Platforms != 8 || Level.Seed != 42 {
					t.Errorf("Level = %d platforms seed %d, want 8/42", Level.Platforms, Level.Seed)
				}
				if Level.CubeColor != Magenta {
					t.Errorf("colours should survive a load, got %v", Level.CubeColor)
				}
			},
		},
		{
			name: "key bindings",
			content: `input:
  jump: [Space, KeyJ]
  left: [KeyA]
`,
			validate: func(t *testing.T) {
				if got := Input.Bindings[ActionJump].Keys; !slices.Equal(got, []string{"Space", "KeyJ"}) {
					t.Errorf("jump keys = %v", got)
				}
				if got := Input.Bindings[ActionMoveForward].Keys; !slices.Equal(got, []string{"ArrowUp"}) {
					t.Errorf("forward keys changed: %v", got)
				}
				if got := ActionsFor("KeyA"); !slices.Equal(got, []ActionID{ActionMoveLeft}) {
					t.Errorf("ActionsFor(KeyA) = %v", got)
				}
			},
		},
		{
			name:    "bad ground policy",
			content: "player:\n  ground_policy: floating\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "zero timestep",
			content: "physics:\n  time_step: 0\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "inverted platform heights",
			content: "level:\n  min_y: 3\n  max_y: 1\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "camera far inside near",
			content: "camera:\n  near: 10\n  far: 1\n",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			ResetInput()
			t.Cleanup(func() {
				Reset()
				ResetInput()
			})

			err := LoadBytes([]byte(tt.content))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadBytes() error = %v, want %v", err, tt.wantErr)
				}
				if Physics.TimeStep != 1.0/60.0 || Player.GroundPolicy != GroundContacts {
					t.Error("rejected config was partially applied")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadBytes() error = %v", err)
			}
			tt.validate(t)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}

func TestLoad_File(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "cubehop.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 640\n  height: 360\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if C.Width != 640 || C.Height != 360 || C.TPS != 60 {
		t.Errorf("window = %dx%d@%d, want 640x360@60", C.Width, C.Height, C.TPS)
	}
}
