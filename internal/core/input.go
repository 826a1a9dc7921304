package core

// Action is a semantic input, abstracted from physical keys, pointer
// events and websocket messages.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, pointer click
	ActionConfirm        // Enter - start a run from the title screen
	ActionRestart        // R - start a new run after it ended
	ActionPause          // P, Esc - pause/unpause
	ActionBack           // B - leave the game view
	ActionQuit           // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionJump:    "jump",
	ActionConfirm: "start",
	ActionRestart: "restart",
	ActionPause:   "pause",
	ActionBack:    "back",
	ActionQuit:    "quit",
}

// String returns the wire name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps a wire name back to an Action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
