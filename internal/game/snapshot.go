package game

import "github.com/vovakirdan/tui-guess/internal/core"

// Snapshot is a flat copy of a game's state, used for persistence and logs.
// Unset choices are core.InvalidAction.
type Snapshot struct {
	Faces    int
	Secret   core.Action
	Active   core.PlayerID
	ChoiceX  core.Action
	ChoiceO  core.Action
	Outcome  int
	Terminal bool
}

// TakeSnapshot captures the current state of any game view.
func TakeSnapshot(v View) Snapshot {
	x, _ := v.Choice(core.PlayerX)
	o, _ := v.Choice(core.PlayerO)
	return Snapshot{
		Faces:    v.Faces(),
		Secret:   v.Secret(),
		Active:   v.Active(),
		ChoiceX:  x,
		ChoiceO:  o,
		Outcome:  v.Outcome(),
		Terminal: v.IsTerminal(),
	}
}
