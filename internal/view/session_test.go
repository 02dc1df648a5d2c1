package view

import (
	"net/url"
	"testing"

	"cashorclout-backend/internal/analyses"
)

func TestSessionHappyPath(t *testing.T) {
	s := NewSession(nil)
	if s.State != StateLanding {
		t.Fatalf("fresh session in %v, want landing", s.State)
	}
	if !s.Locked {
		t.Fatalf("fresh session must start locked")
	}

	s.Start()
	if s.State != StateForm {
		t.Fatalf("after start: %v", s.State)
	}

	s.Form = Form{Idea: "AI content agency", Claim: "€10,000/month", Timeframe: "30 days"}
	if !s.Submit() {
		t.Fatalf("valid submit should issue a call")
	}
	// The transition to loading happens synchronously, before any response.
	if s.State != StateLoading {
		t.Fatalf("after valid submit: %v, want loading", s.State)
	}

	s.AnalysisSucceeded(analyses.Analysis{ID: "id-1", Verdict: "No."})
	if s.State != StateResult {
		t.Fatalf("after success: %v", s.State)
	}
	if !s.Locked {
		t.Fatalf("fresh result must be locked")
	}
	if s.Result == nil || s.Result.ID != "id-1" {
		t.Fatalf("result not installed: %+v", s.Result)
	}

	s.StartOver()
	if s.State != StateForm {
		t.Fatalf("after start over: %v", s.State)
	}
	if s.Form != (Form{}) {
		t.Fatalf("draft not reset: %+v", s.Form)
	}
}

func TestSessionInvalidSubmit(t *testing.T) {
	cases := []Form{
		{Idea: "", Claim: "€10,000/month"},
		{Idea: "   ", Claim: "€10,000/month"},
		{Idea: "AI content agency", Claim: ""},
		{Idea: "AI content agency", Claim: " \t"},
	}
	for _, form := range cases {
		s := NewSession(nil)
		s.Start()
		s.Form = form
		if s.Submit() {
			t.Fatalf("form %+v: invalid submit must not issue a call", form)
		}
		if s.State != StateForm {
			t.Fatalf("form %+v: state moved to %v", form, s.State)
		}
		if s.Err != MsgMissingFields {
			t.Fatalf("form %+v: error %q", form, s.Err)
		}
	}
}

func TestSessionAnalysisFailure(t *testing.T) {
	s := NewSession(nil)
	s.Start()
	s.Form = Form{Idea: "a", Claim: "b"}
	s.Submit()

	s.AnalysisFailed()
	if s.State != StateForm {
		t.Fatalf("after failure: %v, want form", s.State)
	}
	if s.Err != MsgAnalysisFailed {
		t.Fatalf("error %q", s.Err)
	}
	if s.Result != nil {
		t.Fatalf("failed attempt must not leave a partial result")
	}
}

func TestSessionUnlockFlow(t *testing.T) {
	s := NewSession(nil)
	s.Start()
	s.Form = Form{Idea: "a", Claim: "b"}
	s.Submit()
	s.AnalysisSucceeded(analyses.Analysis{ID: "id-1"})

	if !s.UnlockRequested() {
		t.Fatalf("first unlock click should issue a checkout call")
	}
	if s.UnlockRequested() {
		t.Fatalf("duplicate unlock click while pending must be ignored")
	}
	if !s.Locked {
		t.Fatalf("unlock click must not flip the locked flag in-page")
	}

	s.UnlockRedirectFailed()
	if s.PayPending {
		t.Fatalf("redirect failure must clear the pending flag")
	}
	if s.State != StateResult {
		t.Fatalf("redirect failure must leave state unchanged, got %v", s.State)
	}
	if !s.UnlockRequested() {
		t.Fatalf("unlock should be requestable again after a failed redirect")
	}
}

func TestSessionUnlockOutsideResult(t *testing.T) {
	s := NewSession(nil)
	if s.UnlockRequested() {
		t.Fatalf("unlock is only available on the result screen")
	}
}

func TestSessionUnlockedQuery(t *testing.T) {
	q, _ := url.ParseQuery("unlocked=true")
	if s := NewSession(q); s.Locked {
		t.Fatalf("unlocked=true must initialize locked=false")
	}

	for _, raw := range []string{"", "unlocked=false", "unlocked=1", "unlocked=TRUE"} {
		q, _ := url.ParseQuery(raw)
		if s := NewSession(q); !s.Locked {
			t.Fatalf("query %q must initialize locked=true", raw)
		}
	}
}

func TestSessionHomeFromAnywhere(t *testing.T) {
	s := NewSession(nil)
	s.Start()
	s.Form = Form{Idea: "a", Claim: "b"}
	s.Submit()
	s.AnalysisSucceeded(analyses.Analysis{ID: "id-1"})

	s.Home()
	if s.State != StateLanding {
		t.Fatalf("after home: %v", s.State)
	}
}
