package dock

import "github.com/bnema/tabdock/internal/domain/entity"

// State is the drag gesture state.
type State int

const (
	// StateIdle: no gesture in progress.
	StateIdle State = iota
	// StateArmed: a tab header is pressed but no drag was detected yet.
	StateArmed
	// StateDragging: a tab is in flight.
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Session tracks the single gesture a Dock allows at a time. Only the Dock
// that owns it writes to it.
type Session struct {
	state         State
	source        *Pane
	tab           *entity.Tab
	originalIndex int
	ended         bool
}

// State returns the gesture state. A nil session is idle.
func (s *Session) State() State {
	if s == nil || s.ended {
		return StateIdle
	}
	return s.state
}

// Dragging reports whether a tab is in flight.
func (s *Session) Dragging() bool {
	return s.State() == StateDragging
}

// Source returns the pane the tab was dragged from.
func (s *Session) Source() *Pane {
	if s == nil {
		return nil
	}
	return s.source
}

// Tab returns the dragged tab.
func (s *Session) Tab() *entity.Tab {
	if s == nil {
		return nil
	}
	return s.tab
}

// OriginalIndex returns the tab's index in the source before the drag.
func (s *Session) OriginalIndex() int {
	if s == nil {
		return -1
	}
	return s.originalIndex
}

// End runs teardown the first time it is called for the session and
// reports whether it did.
func (s *Session) End(teardown func()) bool {
	if s == nil || s.ended {
		return false
	}
	s.ended = true
	if teardown != nil {
		teardown()
	}
	return true
}
