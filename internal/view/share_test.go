package view

import (
	"testing"
	"time"
)

func TestShareConfirmReverts(t *testing.T) {
	s := NewShareConfirm(50 * time.Millisecond)
	if s.Active() {
		t.Fatalf("fresh confirm must be inactive")
	}

	s.Trigger()
	if !s.Active() {
		t.Fatalf("trigger must activate the acknowledgment")
	}

	time.Sleep(150 * time.Millisecond)
	if s.Active() {
		t.Fatalf("acknowledgment must revert after the window")
	}
}

func TestShareConfirmResetDoesNotStack(t *testing.T) {
	s := NewShareConfirm(100 * time.Millisecond)

	s.Trigger()
	time.Sleep(60 * time.Millisecond)
	s.Trigger()

	// 120ms after the first trigger: had the first timer still been armed it
	// would have fired by now; the reset keeps the acknowledgment showing.
	time.Sleep(60 * time.Millisecond)
	if !s.Active() {
		t.Fatalf("mid-window retrigger must reset the window, not end it early")
	}

	time.Sleep(150 * time.Millisecond)
	if s.Active() {
		t.Fatalf("acknowledgment must revert after the reset window")
	}
}

func TestShareConfirmDefaultWindow(t *testing.T) {
	s := NewShareConfirm(0)
	if s.window != DefaultShareWindow {
		t.Fatalf("window %v, want %v", s.window, DefaultShareWindow)
	}
}
