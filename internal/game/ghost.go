package game

import "sort"

// Sample is one recorded point of a run's trajectory.
type Sample struct {
	T float64 // elapsed time in ms
	Y float64 // bird position at that time
}

// Replay is an append-only (time, position) trajectory. The current run
// records into one; the previous run's finalized recording plays back as the
// ghost. The zero value is an empty trajectory.
type Replay struct {
	samples []Sample
}

// NewReplay builds a trajectory from pre-recorded samples, which must be in
// ascending time order.
func NewReplay(samples []Sample) Replay {
	return Replay{samples: samples}
}

// Append returns a new trajectory extended by one sample. The receiver is
// unchanged; the full slice expression keeps siblings from sharing capacity.
func (r Replay) Append(s Sample) Replay {
	return Replay{samples: append(r.samples[:len(r.samples):len(r.samples)], s)}
}

// Len returns the number of recorded samples.
func (r Replay) Len() int {
	return len(r.samples)
}

// At returns the position of the latest sample recorded at or before t.
// Step interpolation, no blending. The second result is false before any
// sample exists and once t is past the recorded span.
func (r Replay) At(t float64) (float64, bool) {
	if len(r.samples) == 0 || t > r.samples[len(r.samples)-1].T {
		return 0, false
	}
	// Index of the first sample with T > t; the one before it is the match.
	i := sort.Search(len(r.samples), func(i int) bool {
		return r.samples[i].T > t
	})
	if i == 0 {
		return 0, false
	}
	return r.samples[i-1].Y, true
}
