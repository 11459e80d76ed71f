package game

// Config holds the tunable parameters of a run. Distances are in game-space
// pixels, durations in milliseconds, velocities in pixels per tick. The
// rendering layer scales game space to whatever surface it draws on.
type Config struct {
	CanvasW float64 // playfield width
	CanvasH float64 // playfield height

	BirbX float64 // fixed left edge of the bird
	BirbW float64 // bird hitbox width
	BirbH float64 // bird hitbox height

	StartY  float64 // bird vertical position at run start (top of hitbox)
	Gravity float64 // downward acceleration per tick

	FlapImpulse  float64 // velocity set on flap (negative = up)
	BounceMean   float64 // mean bounce magnitude on collision
	BounceSpread float64 // bounce variation, scaled by the PRNG

	PipeW    float64 // obstacle width
	TravelMS float64 // time for a pipe to cross the full travel distance

	TickMS   float64 // fixed simulation tick period
	Lives    int     // lives at run start
	WinScore int     // score that ends the run in a win
}

// DefaultConfig returns the standard game parameters.
func DefaultConfig() Config {
	return Config{
		CanvasW:      400,
		CanvasH:      400,
		BirbX:        60,
		BirbW:        30,
		BirbH:        30,
		StartY:       200,
		Gravity:      0.6,
		FlapImpulse:  -8,
		BounceMean:   9,
		BounceSpread: 3,
		PipeW:        50,
		TravelMS:     4000,
		TickMS:       16,
		Lives:        3,
		WinScore:     20,
	}
}

// Floor returns the lowest valid bird position (top-of-hitbox coordinate).
func (c Config) Floor() float64 {
	return c.CanvasH - c.BirbH
}

// TravelDistance returns how far a pipe travels from the right canvas edge
// until it is fully off screen on the left.
func (c Config) TravelDistance() float64 {
	return c.CanvasW + c.PipeW
}
