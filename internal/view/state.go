package view

// State is one of the four screens the client walks through.
type State int

const (
	StateLanding State = iota
	StateForm
	StateLoading
	StateResult
)

func (s State) String() string {
	switch s {
	case StateLanding:
		return "landing"
	case StateForm:
		return "form"
	case StateLoading:
		return "loading"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// Event drives transitions between states.
type Event int

const (
	EventStart Event = iota
	EventSubmitValid
	EventSubmitInvalid
	EventAnalysisSucceeded
	EventAnalysisFailed
	EventStartOver
	EventHome
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventSubmitValid:
		return "submit_valid"
	case EventSubmitInvalid:
		return "submit_invalid"
	case EventAnalysisSucceeded:
		return "analysis_succeeded"
	case EventAnalysisFailed:
		return "analysis_failed"
	case EventStartOver:
		return "start_over"
	case EventHome:
		return "home"
	default:
		return "unknown"
	}
}

// Transition returns the next state for an event. Combinations outside the
// linear flow keep the current state.
func Transition(s State, e Event) State {
	if e == EventHome {
		return StateLanding
	}
	switch s {
	case StateLanding:
		if e == EventStart {
			return StateForm
		}
	case StateForm:
		if e == EventSubmitValid {
			return StateLoading
		}
	case StateLoading:
		switch e {
		case EventAnalysisSucceeded:
			return StateResult
		case EventAnalysisFailed:
			return StateForm
		}
	case StateResult:
		if e == EventStartOver {
			return StateForm
		}
	}
	return s
}
