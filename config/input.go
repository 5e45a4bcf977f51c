package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)

// MoveActions are evaluated in this order each frame; a later action
// overrides an earlier one on the same axis.
var MoveActions = [...]ActionID{
	ActionMoveForward,
	ActionMoveBack,
	ActionMoveLeft,
	ActionMoveRight,
}

// InputBinding lists the key codes bound to an action. Codes follow the
// W3C KeyboardEvent.code names ("ArrowUp", "KeyW", "Space").
type InputBinding struct {
	Keys []string `yaml:"keys"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding `yaml:"-"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	ResetInput()
}

// ResetInput restores the default key bindings.
func ResetInput() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {Keys: []string{"ArrowUp"}},
			ActionMoveBack:    {Keys: []string{"ArrowDown"}},
			ActionMoveLeft:    {Keys: []string{"ArrowLeft"}},
			ActionMoveRight:   {Keys: []string{"ArrowRight"}},
			ActionJump:        {Keys: []string{"Space"}},
		},
	}
}

// ActionsFor returns every action bound to code.
func ActionsFor(code string) []ActionID {
	var out []ActionID
	for id := ActionID(1); id < ActionCount; id++ {
		for _, k := range Input.Bindings[id].Keys {
			if k == code {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// CodeFromKeyName converts a keyboard key name to its W3C code. Single
// letters gain the "Key" prefix; other names already match.
func CodeFromKeyName(name string) string {
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return "Key" + name
	}
	return name
}
