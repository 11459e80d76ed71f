package game

import "time"

// State is a complete game snapshot. Each event produces a brand-new State
// from the previous one; nothing is mutated in place, so rendering
// collaborators can safely hold on to any snapshot they were handed.
type State struct {
	Config Config

	StartedAt time.Time // wall-clock run start, informational only
	ElapsedMS float64   // clock-driven time since run start

	BirbY   float64 // bird vertical position (top of hitbox)
	BirbVel float64 // bird vertical velocity, positive = down

	Lives    int
	Score    int // count of passed pipes, recomputed every tick
	GameOver bool
	Won      bool
	Paused   bool

	Seed  uint32 // PRNG state; advances only on collision ticks
	Pipes []Pipe // full schedule with current derived fields

	// InvinciblePipe holds the SpawnMS identity of the pipe currently
	// absorbing hits, or NoPipe. It prevents losing a life on every tick
	// while the bird stays embedded in the same pipe.
	InvinciblePipe float64

	GhostY       float64 // ghost bird position for this tick
	GhostVisible bool    // false before recording starts or past its span

	Path  Replay // trajectory recorded so far this run
	Ghost Replay // previous run's finalized trajectory

	specs       []PipeSpec // the schedule, kept for restarts
	initialSeed uint32     // seed value runs restart from
}

// NewRun creates the initial state of a run: fresh defaults, the schedule
// resolved to absolute gap bounds, and the given trajectory as the ghost.
func NewRun(cfg Config, specs []PipeSpec, seed uint32, ghost Replay, startedAt time.Time) State {
	pipes := advancePipes(cfg, resolvePipes(cfg, specs), 0)

	s := State{
		Config:         cfg,
		StartedAt:      startedAt,
		BirbY:          cfg.StartY,
		Lives:          cfg.Lives,
		Seed:           seed,
		Pipes:          pipes,
		InvinciblePipe: NoPipe,
		Ghost:          ghost,
		specs:          append([]PipeSpec(nil), specs...),
		initialSeed:    seed,
	}
	s.GhostY, s.GhostVisible = ghost.At(0)
	s.Path = s.Path.Append(Sample{T: 0, Y: cfg.StartY})
	return s
}

// Terminal reports whether the run has ended in a loss or a win. Terminal
// states absorb every event except Restart.
func (s State) Terminal() bool {
	return s.GameOver || s.Won
}

// OnScreen returns the pipes currently on the playfield, in schedule order.
// This is the render list.
func (s State) OnScreen() []Pipe {
	var visible []Pipe
	for _, p := range s.Pipes {
		if p.OnScreen(s.Config) {
			visible = append(visible, p)
		}
	}
	return visible
}

// RestartAt discards the current run and begins a fresh one at the given
// wall-clock time. The old run's trajectory becomes the new run's ghost only
// if the old run ended on a terminal tick and recorded at least one sample;
// otherwise the prior ghost is kept. Only the schedule, the initial seed
// value, and the ghost carry across runs.
func RestartAt(s State, startedAt time.Time) State {
	ghost := s.Ghost
	if s.Terminal() && s.Path.Len() > 0 {
		ghost = s.Path
	}
	return NewRun(s.Config, s.specs, s.initialSeed, ghost, startedAt)
}
