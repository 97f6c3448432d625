package store

// phase is the dispatch lifecycle state of an engine.
type phase uint8

const (
	phaseIdle phase = iota
	phaseDispatching
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseDispatching:
		return "dispatching"
	default:
		return "unknown"
	}
}

type lifecycleEvent uint8

const (
	eventBegin lifecycleEvent = iota
	eventComplete
)

type lifecycleTransition struct {
	from  phase
	event lifecycleEvent
	to    phase
}

// There is no terminal phase: an engine lives as long as the process.
var lifecycleTransitions = [...]lifecycleTransition{
	{from: phaseIdle, event: eventBegin, to: phaseDispatching},
	{from: phaseDispatching, event: eventComplete, to: phaseIdle},
}

type lifecycle struct {
	current phase
}

func (l *lifecycle) fire(ev lifecycleEvent) bool {
	for _, t := range lifecycleTransitions {
		if t.from == l.current && t.event == ev {
			l.current = t.to
			return true
		}
	}
	return false
}

// begin enters the dispatching phase. It fails when a dispatch is already in flight.
func (l *lifecycle) begin() error {
	if !l.fire(eventBegin) {
		return ErrReentrantDispatch
	}
	return nil
}

// complete returns to idle unconditionally.
func (l *lifecycle) complete() {
	if !l.fire(eventComplete) {
		l.current = phaseIdle
	}
}
