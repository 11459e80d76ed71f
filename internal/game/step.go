package game

import "time"

// Step applies one event to a state and returns the successor state. It is
// total: every event maps to a value. Terminal states return unchanged for
// everything except Restart. Flap and pause still apply while paused; only
// clock ticks are suppressed.
func Step(s State, ev Event) State {
	if s.Terminal() && ev != EventRestart {
		return s
	}

	switch ev {
	case EventFlap:
		s.BirbVel = s.Config.FlapImpulse
		return s
	case EventPauseToggle:
		s.Paused = !s.Paused
		return s
	case EventRestart:
		return RestartAt(s, time.Now())
	case EventTick:
		return tick(s)
	default:
		return s
	}
}

// tick advances physics, pipes, collisions, scoring, and the ghost by one
// fixed tick. The collision branches are an ordered sequence of named
// predicates, each computed once, so they stay independently testable.
func tick(s State) State {
	if s.Paused {
		return s
	}

	cfg := s.Config
	next := s
	next.ElapsedMS = s.ElapsedMS + cfg.TickMS

	// 1. Integrate, then clamp to the canvas.
	vel := s.BirbVel + cfg.Gravity
	pos := s.BirbY + vel
	floor := cfg.Floor()
	if pos < 0 {
		pos = 0
	}
	if pos > floor {
		pos = floor
	}
	hitCanvas := pos == 0 || pos == floor

	// 2. Recompute every pipe from the schedule at the new clock.
	pipes := advancePipes(cfg, s.Pipes, next.ElapsedMS)
	next.Pipes = pipes

	// 3.-6. Collision predicates against the overlapping pipe, if any.
	overlapping := overlappingPipe(cfg, pipes)
	firstHit := false
	aboveGap := false
	if overlapping >= 0 {
		p := pipes[overlapping]
		aboveGap = pos < p.GapTop
		belowGap := pos > p.GapBottom
		outsideGap := aboveGap || belowGap
		firstHit = outsideGap && s.InvinciblePipe != p.SpawnMS

		// A side entry began overlapping this very tick; the bird is
		// allowed to clip the pipe edge instead of snapping. A vertical
		// exit from inside the gap span is clamped to the nearest bound.
		sideEntry := firstHit && !p.PrevPassing
		if firstHit && !sideEntry {
			if aboveGap {
				pos = p.GapTop
			} else {
				pos = p.GapBottom
			}
		}
	}

	// 7. Resolve the collision: one seeded bounce away from the surface,
	// one life lost.
	collided := firstHit || hitCanvas
	if collided {
		next.Seed = Hash(s.Seed)
		bounce := cfg.BounceMean + cfg.BounceSpread*Scale(next.Seed)
		hitTop := pos == 0 || (firstHit && aboveGap)
		if hitTop {
			vel = bounce
		} else {
			vel = -bounce
		}

		lives := s.Lives - 1
		if lives < 0 {
			lives = 0
		}
		next.Lives = lives
		if lives == 0 {
			next.GameOver = true
		}
	}

	next.BirbY = pos
	next.BirbVel = vel

	// 8. Invincibility marker: set on a fresh hit, held while the same pipe
	// still overlaps, cleared otherwise.
	switch {
	case firstHit:
		next.InvinciblePipe = pipes[overlapping].SpawnMS
	case overlapping >= 0 && pipes[overlapping].SpawnMS == s.InvinciblePipe:
		next.InvinciblePipe = s.InvinciblePipe
	default:
		next.InvinciblePipe = NoPipe
	}

	// 9. Score is recomputed from the sticky passed flags, never incremented.
	score := 0
	for _, p := range pipes {
		if p.Passed {
			score++
		}
	}
	next.Score = score

	// 10. Win freezes the run just like game over does.
	if cfg.WinScore > 0 && score >= cfg.WinScore {
		next.Won = true
	}

	next.GhostY, next.GhostVisible = s.Ghost.At(next.ElapsedMS)
	next.Path = s.Path.Append(Sample{T: next.ElapsedMS, Y: pos})

	return next
}
