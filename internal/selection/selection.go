// Package selection models the picker interaction as a pure state machine.
//
// Two layers are nested: the selection layer tracks which option is
// highlighted but not yet confirmed, and the confirmation layer switches the
// view into an acknowledgement display after a confirm. Re-selecting the
// highlighted option keeps it highlighted; there is no deselect.
package selection

import "github.com/chris-regnier/moodctl/internal/mood"

// Phase is the confirmation layer of the machine.
type Phase int

const (
	// Selecting shows the palette and accepts highlights.
	Selecting Phase = iota
	// Acknowledged shows the confirmation display until ChooseAnother.
	Acknowledged
)

func (p Phase) String() string {
	switch p {
	case Selecting:
		return "selecting"
	case Acknowledged:
		return "acknowledged"
	default:
		return "unknown"
	}
}

// State is the full interaction state of one picker instance.
type State struct {
	Phase       Phase
	Highlighted *mood.Option
	// Acknowledge enables the acknowledgement display after a confirm.
	Acknowledge bool
}

// NewState returns the initial state: selecting, nothing highlighted.
func NewState(acknowledge bool) State {
	return State{Phase: Selecting, Acknowledge: acknowledge}
}

// Idle reports whether no option is highlighted.
func (s State) Idle() bool {
	return s.Highlighted == nil
}

// CanConfirm reports whether the confirm control is actionable.
func (s State) CanConfirm() bool {
	return s.Phase == Selecting && s.Highlighted != nil
}

// Event is an input to the machine.
type Event interface {
	isEvent()
}

// Select highlights an option.
type Select struct {
	Option mood.Option
}

// Confirm hands the highlighted option to the mood store.
type Confirm struct{}

// ChooseAnother leaves the acknowledgement display.
type ChooseAnother struct{}

func (Select) isEvent()        {}
func (Confirm) isEvent()       {}
func (ChooseAnother) isEvent() {}

// Effect is a side effect requested by a transition.
type Effect interface {
	isEffect()
}

// Record asks the caller to append Option to the mood history.
type Record struct {
	Option mood.Option
}

func (Record) isEffect() {}

// Transition computes the next state for an event. It has no side effects;
// the returned effects must be carried out by the caller, in order.
func Transition(s State, e Event) (State, []Effect) {
	switch e := e.(type) {
	case Select:
		if s.Phase != Selecting {
			return s, nil
		}
		option := e.Option
		s.Highlighted = &option
		return s, nil

	case Confirm:
		if !s.CanConfirm() {
			return s, nil
		}
		effects := []Effect{Record{Option: *s.Highlighted}}
		s.Highlighted = nil
		if s.Acknowledge {
			s.Phase = Acknowledged
		}
		return s, effects

	case ChooseAnother:
		if s.Phase != Acknowledged {
			return s, nil
		}
		s.Phase = Selecting
		s.Highlighted = nil
		return s, nil
	}
	return s, nil
}
