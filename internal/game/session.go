package game

import (
	"context"
	"time"
)

// Session drives a sequence of runs. It folds events into states in arrival
// order, stamps run boundaries with the wall clock, and carries a finished
// run's trajectory into the next run as its ghost.
//
// A Session is single-threaded by design: callers apply events from one
// goroutine (or use Run, which does), and consume the returned snapshots
// read-only.
type Session struct {
	state State
	now   func() time.Time
}

// NewSession starts a session on its first run, with no ghost yet.
func NewSession(cfg Config, specs []PipeSpec, seed uint32) *Session {
	now := time.Now
	return &Session{
		state: NewRun(cfg, specs, seed, Replay{}, now()),
		now:   now,
	}
}

// State returns the current snapshot.
func (s *Session) State() State {
	return s.state
}

// Apply folds one event into the session state and returns the new snapshot.
// Restart is handled here rather than in Step so the fresh run gets this
// session's clock for its start timestamp.
func (s *Session) Apply(ev Event) State {
	if ev == EventRestart {
		s.state = RestartAt(s.state, s.now())
	} else {
		s.state = Step(s.state, ev)
	}
	return s.state
}

// Run consumes events from the channel in arrival order and emits one
// snapshot per event. The output channel closes when the input closes or
// the context is done.
func (s *Session) Run(ctx context.Context, events <-chan Event) <-chan State {
	out := make(chan State)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				st := s.Apply(ev)
				select {
				case out <- st:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
