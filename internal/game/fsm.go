package game

import (
	"errors"
	"fmt"
	"log/slog"
)

type State string
type Event string

const (
	// Состояния
	IdleState     State = "idle"
	AskingState   State = "asking"
	AnsweredState State = "answered"

	// События
	EventAsk     Event = "ask"
	EventHint    Event = "hint"
	EventAnswer  Event = "answer"
	EventTimeout Event = "timeout"
	EventReset   Event = "reset"
)

var ErrInvalidTransition = errors.New("invalid transition")

type FSM struct {
	current     State
	transitions map[State]map[Event]State
}

func NewFSM() *FSM {
	return &FSM{
		current: IdleState,
		transitions: map[State]map[Event]State{
			IdleState: {
				EventAsk:   AskingState,
				EventReset: IdleState,
			},
			AskingState: {
				EventAsk:     AskingState,
				EventHint:    AskingState,
				EventAnswer:  AnsweredState,
				EventTimeout: AnsweredState,
				EventReset:   IdleState,
			},
			AnsweredState: {
				EventAsk:   AskingState,
				EventReset: IdleState,
			},
		},
	}
}

func (f *FSM) Current() State {
	return f.current
}

// Can - допустим ли переход, состояние не меняется
func (f *FSM) Can(event Event) bool {
	_, ok := f.transitions[f.current][event]
	return ok
}

func (f *FSM) Trigger(event Event) error {
	next, ok := f.transitions[f.current][event]
	if !ok {
		return fmt.Errorf("%w: %s → (%s)", ErrInvalidTransition, f.current, event)
	}
	slog.Debug("fsm transition", "from", f.current, "event", event, "to", next)
	f.current = next
	return nil
}

// ForceState - для тестирования
func (f *FSM) ForceState(newState State) {
	f.current = newState
}
