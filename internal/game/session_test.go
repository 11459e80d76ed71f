package game

import (
	"context"
	"testing"
	"time"
)

func newTestSession(cfg Config) *Session {
	s := NewSession(cfg, nil, 1)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	return s
}

func TestSessionRestartAfterTerminal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lives = 1
	sess := newTestSession(cfg)

	for i := 0; i < 5000 && !sess.State().Terminal(); i++ {
		sess.Apply(EventTick)
	}
	ended := sess.State()
	if !ended.GameOver {
		t.Fatal("run never ended")
	}
	if ended.Path.Len() < 2 {
		t.Fatalf("ended run recorded %d samples, expected a trajectory", ended.Path.Len())
	}

	fresh := sess.Apply(EventRestart)
	if fresh.Score != 0 || fresh.Lives != cfg.Lives || fresh.ElapsedMS != 0 {
		t.Errorf("restart state = score %d, lives %d, elapsed %f; expected fresh defaults",
			fresh.Score, fresh.Lives, fresh.ElapsedMS)
	}
	if fresh.GameOver || fresh.Won || fresh.Paused {
		t.Error("restart should clear terminal and pause flags")
	}
	if fresh.Seed != ended.initialSeed {
		t.Error("restart should reuse the initial seed value, not the advanced one")
	}

	// Previous run's trajectory is the new run's ghost.
	if fresh.Ghost.Len() != ended.Path.Len() {
		t.Fatalf("ghost has %d samples, expected the ended run's %d", fresh.Ghost.Len(), ended.Path.Len())
	}
	if !fresh.GhostVisible || fresh.GhostY != cfg.StartY {
		t.Errorf("ghost at t=0 = (%f, %v), expected (%f, true)", fresh.GhostY, fresh.GhostVisible, cfg.StartY)
	}
}

func TestSessionRestartMidRunKeepsPriorGhost(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lives = 1
	sess := newTestSession(cfg)

	// First run to terminal, then restart to install its ghost.
	for i := 0; i < 5000 && !sess.State().Terminal(); i++ {
		sess.Apply(EventTick)
	}
	firstGhostLen := sess.State().Path.Len()
	sess.Apply(EventRestart)

	// Abandon the second run after a handful of ticks: its recording is
	// never finalized, so the first run's ghost survives.
	for i := 0; i < 10; i++ {
		sess.Apply(EventTick)
	}
	fresh := sess.Apply(EventRestart)
	if fresh.Ghost.Len() != firstGhostLen {
		t.Errorf("abandoned run replaced the ghost: %d samples, expected %d", fresh.Ghost.Len(), firstGhostLen)
	}
}

func TestSessionRunFoldsInOrder(t *testing.T) {
	cfg := DefaultConfig()
	sess := newTestSession(cfg)

	events := make(chan Event)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	states := sess.Run(ctx, events)

	go func() {
		defer close(events)
		for i := 0; i < 5; i++ {
			events <- EventTick
		}
		events <- EventFlap
	}()

	var last State
	count := 0
	for st := range states {
		last = st
		count++
	}

	if count != 6 {
		t.Fatalf("received %d snapshots, expected 6", count)
	}
	if last.ElapsedMS != 5*cfg.TickMS {
		t.Errorf("elapsed = %f after 5 ticks, expected %f", last.ElapsedMS, 5*cfg.TickMS)
	}
	if last.BirbVel != cfg.FlapImpulse {
		t.Errorf("final velocity = %f, expected flap impulse %f", last.BirbVel, cfg.FlapImpulse)
	}
}

func TestSessionRunStopsOnCancel(t *testing.T) {
	cfg := DefaultConfig()
	sess := newTestSession(cfg)

	events := make(chan Event)
	ctx, cancel := context.WithCancel(context.Background())
	states := sess.Run(ctx, events)

	events <- EventTick
	<-states
	cancel()

	select {
	case _, ok := <-states:
		if ok {
			t.Error("expected the snapshot channel to close after cancel")
		}
	case <-time.After(time.Second):
		t.Error("snapshot channel did not close after cancel")
	}
}
