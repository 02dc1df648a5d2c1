package view

import (
	"sync"
	"time"
)

// DefaultShareWindow is how long the "link copied" acknowledgment shows.
const DefaultShareWindow = 2 * time.Second

// ShareConfirm tracks the transient copy acknowledgment. Re-triggering
// mid-window resets the single timer; it never stacks a second one, so an
// earlier trigger cannot revert the acknowledgment out of order.
type ShareConfirm struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	active bool
}

// NewShareConfirm constructs a ShareConfirm. A non-positive window falls
// back to DefaultShareWindow.
func NewShareConfirm(window time.Duration) *ShareConfirm {
	if window <= 0 {
		window = DefaultShareWindow
	}
	return &ShareConfirm{window: window}
}

// Trigger shows the acknowledgment and (re)starts the reversion timer.
func (s *ShareConfirm) Trigger() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, func() {
		s.mu.Lock()
		s.active = false
		s.mu.Unlock()
	})
}

// Active reports whether the acknowledgment is currently showing.
func (s *ShareConfirm) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
