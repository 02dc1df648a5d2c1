package view

import (
	"net/url"
	"strings"

	"cashorclout-backend/internal/analyses"
)

// User-facing messages set on failed transitions.
const (
	MsgMissingFields  = "Add the idea and the income claim at minimum."
	MsgAnalysisFailed = "Something went wrong. Try again."
)

// Form is the mutable draft of an analysis request.
type Form struct {
	Idea      string
	Claim     string
	Timeframe string
}

// Valid reports whether the draft can be submitted: idea and claim must be
// non-empty after trimming; timeframe is never required.
func (f Form) Valid() bool {
	return strings.TrimSpace(f.Idea) != "" && strings.TrimSpace(f.Claim) != ""
}

// Session owns the client view state for its lifetime: current screen, form
// draft, latest result, lock flag and error message.
type Session struct {
	State      State
	Form       Form
	Result     *analyses.Analysis
	Locked     bool
	Err        string
	PayPending bool
}

// NewSession creates a session on the landing screen. The unlock indicator
// arrives as a client-controlled query parameter on the payment success
// redirect; there is no server-side verification of it (known weakness —
// anyone can append unlocked=true to a result URL).
func NewSession(query url.Values) *Session {
	return &Session{
		State:  StateLanding,
		Locked: !UnlockedFromQuery(query),
	}
}

// UnlockedFromQuery reports whether the URL carries the unlock indicator.
func UnlockedFromQuery(query url.Values) bool {
	return query.Get("unlocked") == "true"
}

// Start moves from the landing screen to the form.
func (s *Session) Start() {
	s.State = Transition(s.State, EventStart)
}

// Submit validates the draft and reports whether an analysis call should be
// issued. An invalid draft sets the error and stays on the form with no
// network call; a valid one clears it and moves to loading synchronously,
// before any response arrives.
func (s *Session) Submit() bool {
	if s.State != StateForm {
		return false
	}
	if !s.Form.Valid() {
		s.Err = MsgMissingFields
		s.State = Transition(s.State, EventSubmitInvalid)
		return false
	}
	s.Err = ""
	s.State = Transition(s.State, EventSubmitValid)
	return true
}

// AnalysisSucceeded installs a fresh result. A fresh result is always locked.
func (s *Session) AnalysisSucceeded(analysis analyses.Analysis) {
	s.Result = &analysis
	s.Locked = true
	s.Err = ""
	s.State = Transition(s.State, EventAnalysisSucceeded)
}

// AnalysisFailed returns to the form with a generic retry message; nothing
// of the failed attempt is preserved.
func (s *Session) AnalysisFailed() {
	s.Err = MsgAnalysisFailed
	s.State = Transition(s.State, EventAnalysisFailed)
}

// UnlockRequested marks a checkout call in flight and reports whether one
// should be issued. The locked flag itself is untouched: payment is a
// redirect-away, redirect-back flow, not an in-page transition.
func (s *Session) UnlockRequested() bool {
	if s.State != StateResult || s.PayPending {
		return false
	}
	s.PayPending = true
	return true
}

// UnlockRedirectFailed clears the in-flight flag; state is otherwise unchanged.
func (s *Session) UnlockRedirectFailed() {
	s.PayPending = false
}

// StartOver resets the draft and returns to an empty form.
func (s *Session) StartOver() {
	s.Form = Form{}
	s.Err = ""
	s.State = Transition(s.State, EventStartOver)
}

// Home returns to the landing screen from anywhere.
func (s *Session) Home() {
	s.State = Transition(s.State, EventHome)
}
