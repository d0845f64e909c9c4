package selection

import "github.com/chris-regnier/moodctl/internal/mood"

// Machine applies transitions to a State and runs their effects.
type Machine struct {
	state    State
	onRecord func(mood.Option)
}

// NewMachine creates a machine in the initial state. onRecord receives every
// confirmed option, typically a mood store's SelectMood.
func NewMachine(acknowledge bool, onRecord func(mood.Option)) *Machine {
	return &Machine{state: NewState(acknowledge), onRecord: onRecord}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Send applies e, runs the resulting effects in order and returns the new
// state together with the effects it ran.
func (m *Machine) Send(e Event) (State, []Effect) {
	next, effects := Transition(m.state, e)
	m.state = next
	for _, eff := range effects {
		switch eff := eff.(type) {
		case Record:
			if m.onRecord != nil {
				m.onRecord(eff.Option)
			}
		}
	}
	return m.state, effects
}

// Select highlights option.
func (m *Machine) Select(option mood.Option) State {
	st, _ := m.Send(Select{Option: option})
	return st
}

// Confirm records the highlighted option, if any.
func (m *Machine) Confirm() State {
	st, _ := m.Send(Confirm{})
	return st
}

// ChooseAnother returns from the acknowledgement display to the palette.
func (m *Machine) ChooseAnother() State {
	st, _ := m.Send(ChooseAnother{})
	return st
}

// CanConfirm reports whether Confirm would record anything.
func (m *Machine) CanConfirm() bool {
	return m.state.CanConfirm()
}
