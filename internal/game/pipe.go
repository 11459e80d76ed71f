package game

// PipeSpec is one row of the pre-parsed obstacle schedule: where the gap
// sits, how tall it is (both as fractions of canvas height), and when the
// pipe enters the playfield.
type PipeSpec struct {
	GapCenter    float64 // gap center, fraction of canvas height
	GapHeight    float64 // gap height, fraction of canvas height
	SpawnSeconds float64 // spawn offset from run start
}

// Pipe is one scheduled obstacle together with its per-tick derived fields.
// Pipes are immutable value records: every tick rebuilds the whole list from
// the schedule plus elapsed time, so no positional drift can accumulate.
type Pipe struct {
	SpawnMS   float64 // spawn offset in ms; doubles as the pipe's identity
	GapTop    float64 // highest bird position still inside the gap
	GapBottom float64 // lowest bird position still inside the gap

	Age         float64 // elapsed - SpawnMS; negative before spawn
	X           float64 // left edge in game space
	Passed      bool    // bird has cleared this pipe; sticky once set
	BirbPassing bool    // horizontal spans overlap this tick
	PrevPassing bool    // BirbPassing from the previous tick
	PrevX       float64 // X from the previous tick
}

// NoPipe is the invincibility marker value when no pipe is being overlapped.
const NoPipe float64 = -1

// resolvePipes turns schedule rows into pipes, resolving the fractional gap
// bounds into absolute bird-top coordinates once. The bottom bound subtracts
// the bird height so that a bird positioned at GapBottom still fits.
func resolvePipes(cfg Config, specs []PipeSpec) []Pipe {
	pipes := make([]Pipe, len(specs))
	for i, sp := range specs {
		pipes[i] = Pipe{
			SpawnMS:   sp.SpawnSeconds * 1000,
			GapTop:    (sp.GapCenter - sp.GapHeight/2) * cfg.CanvasH,
			GapBottom: (sp.GapCenter+sp.GapHeight/2)*cfg.CanvasH - cfg.BirbH,
		}
	}
	return pipes
}

// xposAt computes a pipe's left edge from its age. Progress saturates to
// [0, 1]: unspawned pipes sit at the right canvas edge, expired pipes at the
// far left.
func xposAt(cfg Config, age float64) float64 {
	progress := age / cfg.TravelMS
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return cfg.CanvasW - cfg.TravelDistance()*progress
}

// onScreenAt reports whether a pipe with the given age is on the playfield.
func onScreenAt(cfg Config, age float64) bool {
	return age >= 0 && age <= cfg.TravelMS
}

// OnScreen reports whether the pipe is currently on the playfield.
func (p Pipe) OnScreen(cfg Config) bool {
	return onScreenAt(cfg, p.Age)
}

// advancePipes recomputes every pipe's derived fields at the given clock,
// keeping the previous tick's overlap flag and position for side-of-entry
// detection. The input slice is never mutated.
func advancePipes(cfg Config, prev []Pipe, nowMS float64) []Pipe {
	birbLeft := cfg.BirbX
	birbRight := cfg.BirbX + cfg.BirbW

	next := make([]Pipe, len(prev))
	for i, p := range prev {
		n := p
		n.PrevPassing = p.BirbPassing
		n.PrevX = p.X
		n.Age = nowMS - p.SpawnMS
		n.X = xposAt(cfg, n.Age)
		n.BirbPassing = n.X <= birbRight && n.X+cfg.PipeW >= birbLeft
		if !n.Passed && birbLeft > n.X+cfg.PipeW {
			n.Passed = true
		}
		next[i] = n
	}
	return next
}

// overlappingPipe returns the index of the first on-screen pipe (in schedule
// order) whose horizontal span overlaps the bird, or -1. Schedule spacing
// should make double overlaps impossible; when it does not, first-in-order
// wins.
func overlappingPipe(cfg Config, pipes []Pipe) int {
	for i, p := range pipes {
		if p.OnScreen(cfg) && p.BirbPassing {
			return i
		}
	}
	return -1
}
