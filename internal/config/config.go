// Package config provides YAML-based game configuration for birb.
package config

import "github.com/okhmat/birb/internal/game"

// Config contains all tunable parameters of the game, as loaded from YAML.
type Config struct {
	Physics  Physics  `yaml:"physics"`
	Geometry Geometry `yaml:"geometry"`
	Rules    Rules    `yaml:"rules"`
}

// Physics defines motion and collision response parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	BounceMean   float64 `yaml:"bounce_mean"`
	BounceSpread float64 `yaml:"bounce_spread"`
}

// Geometry defines the game-space dimensions.
type Geometry struct {
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
	BirbX        float64 `yaml:"birb_x"`
	BirbWidth    float64 `yaml:"birb_width"`
	BirbHeight   float64 `yaml:"birb_height"`
	StartY       float64 `yaml:"start_y"`
	PipeWidth    float64 `yaml:"pipe_width"`
	TravelMS     float64 `yaml:"travel_ms"`
}

// Rules defines run pacing and termination.
type Rules struct {
	TickMS   float64 `yaml:"tick_ms"`
	Lives    int     `yaml:"lives"`
	WinScore int     `yaml:"win_score"`
}

// Game converts the file representation into the core's parameter set.
func (c Config) Game() game.Config {
	return game.Config{
		CanvasW:      c.Geometry.CanvasWidth,
		CanvasH:      c.Geometry.CanvasHeight,
		BirbX:        c.Geometry.BirbX,
		BirbW:        c.Geometry.BirbWidth,
		BirbH:        c.Geometry.BirbHeight,
		StartY:       c.Geometry.StartY,
		Gravity:      c.Physics.Gravity,
		FlapImpulse:  c.Physics.FlapImpulse,
		BounceMean:   c.Physics.BounceMean,
		BounceSpread: c.Physics.BounceSpread,
		PipeW:        c.Geometry.PipeWidth,
		TravelMS:     c.Geometry.TravelMS,
		TickMS:       c.Rules.TickMS,
		Lives:        c.Rules.Lives,
		WinScore:     c.Rules.WinScore,
	}
}

// Default returns the built-in configuration, mirroring the core defaults.
func Default() Config {
	g := game.DefaultConfig()
	return Config{
		Physics: Physics{
			Gravity:      g.Gravity,
			FlapImpulse:  g.FlapImpulse,
			BounceMean:   g.BounceMean,
			BounceSpread: g.BounceSpread,
		},
		Geometry: Geometry{
			CanvasWidth:  g.CanvasW,
			CanvasHeight: g.CanvasH,
			BirbX:        g.BirbX,
			BirbWidth:    g.BirbW,
			BirbHeight:   g.BirbH,
			StartY:       g.StartY,
			PipeWidth:    g.PipeW,
			TravelMS:     g.TravelMS,
		},
		Rules: Rules{
			TickMS:   g.TickMS,
			Lives:    g.Lives,
			WinScore: g.WinScore,
		},
	}
}
