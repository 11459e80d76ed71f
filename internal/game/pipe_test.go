package game

import "testing"

func TestXposAtTravelBounds(t *testing.T) {
	cfg := DefaultConfig()

	if got := xposAt(cfg, 0); got != cfg.CanvasW {
		t.Errorf("xpos at age 0 = %f, expected %f", got, cfg.CanvasW)
	}

	want := cfg.CanvasW - cfg.TravelDistance()
	if got := xposAt(cfg, cfg.TravelMS); got != want {
		t.Errorf("xpos at travel end = %f, expected %f", got, want)
	}

	// Saturation outside the travel window.
	if got := xposAt(cfg, -500); got != cfg.CanvasW {
		t.Errorf("xpos before spawn = %f, expected right edge %f", got, cfg.CanvasW)
	}
	if got := xposAt(cfg, cfg.TravelMS+500); got != want {
		t.Errorf("xpos past travel = %f, expected far edge %f", got, want)
	}
}

func TestXposMonotone(t *testing.T) {
	cfg := DefaultConfig()

	prev := xposAt(cfg, 0)
	for age := cfg.TickMS; age <= cfg.TravelMS; age += cfg.TickMS {
		x := xposAt(cfg, age)
		if x > prev {
			t.Fatalf("xpos increased from %f to %f at age %f", prev, x, age)
		}
		prev = x
	}
}

func TestOnScreenWindow(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		age      float64
		expected bool
	}{
		{"before spawn", -16, false},
		{"at spawn", 0, true},
		{"mid travel", cfg.TravelMS / 2, true},
		{"at travel end", cfg.TravelMS, true},
		{"past travel", cfg.TravelMS + 16, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := onScreenAt(cfg, tc.age); got != tc.expected {
				t.Errorf("onScreenAt(%f) = %v, expected %v", tc.age, got, tc.expected)
			}
		})
	}
}

func TestResolvePipesGapBounds(t *testing.T) {
	cfg := DefaultConfig()
	specs := []PipeSpec{{GapCenter: 0.5, GapHeight: 0.25, SpawnSeconds: 2}}

	pipes := resolvePipes(cfg, specs)
	if len(pipes) != 1 {
		t.Fatalf("resolved %d pipes, expected 1", len(pipes))
	}

	p := pipes[0]
	if p.SpawnMS != 2000 {
		t.Errorf("SpawnMS = %f, expected 2000", p.SpawnMS)
	}
	wantTop := (0.5 - 0.125) * cfg.CanvasH
	if p.GapTop != wantTop {
		t.Errorf("GapTop = %f, expected %f", p.GapTop, wantTop)
	}
	wantBottom := (0.5+0.125)*cfg.CanvasH - cfg.BirbH
	if p.GapBottom != wantBottom {
		t.Errorf("GapBottom = %f, expected %f", p.GapBottom, wantBottom)
	}
}

func TestAdvancePipesOverlapAndPassed(t *testing.T) {
	cfg := DefaultConfig()
	pipes := resolvePipes(cfg, []PipeSpec{{GapCenter: 0.5, GapHeight: 0.3, SpawnSeconds: 0}})

	// Age that puts the pipe's span exactly over the bird.
	// x = birbX means the pipe's left edge sits on the bird's left edge.
	progress := (cfg.CanvasW - cfg.BirbX) / cfg.TravelDistance()
	overlapAge := progress * cfg.TravelMS

	moved := advancePipes(cfg, pipes, overlapAge)
	if !moved[0].BirbPassing {
		t.Error("pipe over the bird should report BirbPassing")
	}
	if moved[0].Passed {
		t.Error("pipe over the bird should not be passed yet")
	}
	if moved[0].PrevPassing {
		t.Error("PrevPassing should reflect the prior tick, which had no overlap")
	}

	// One more advance: previous flag follows.
	moved = advancePipes(cfg, moved, overlapAge+cfg.TickMS)
	if !moved[0].PrevPassing {
		t.Error("PrevPassing should be true after an overlapping tick")
	}

	// Push the pipe fully past the bird: passed, sticky.
	pastAge := ((cfg.CanvasW - cfg.BirbX + cfg.PipeW + 1) / cfg.TravelDistance()) * cfg.TravelMS
	moved = advancePipes(cfg, moved, pastAge)
	if !moved[0].Passed {
		t.Error("pipe fully left of the bird should be passed")
	}
	if moved[0].BirbPassing {
		t.Error("pipe fully left of the bird should not overlap")
	}

	// The flag never resets, even recomputed at an earlier clock.
	moved = advancePipes(cfg, moved, 0)
	if !moved[0].Passed {
		t.Error("passed flag should be sticky")
	}
}

func TestAdvancePipesDoesNotMutateInput(t *testing.T) {
	cfg := DefaultConfig()
	pipes := advancePipes(cfg, resolvePipes(cfg, []PipeSpec{{GapCenter: 0.5, GapHeight: 0.3, SpawnSeconds: 0}}), 0)

	before := pipes[0]
	advancePipes(cfg, pipes, 1000)
	if pipes[0] != before {
		t.Error("advancePipes mutated its input slice")
	}
}
