package game

import "time"

// Config holds the gameplay tuning for a room. Tests shrink the timer
// durations; production uses DefaultConfig with a couple of env
// overrides applied in the config package.
type Config struct {
	Width  int
	Height int

	// HoleChance is the independent probability that a border cell
	// becomes a hole.
	HoleChance float64

	// ProductTarget is the product pool size kept by immediate respawn.
	ProductTarget int

	Lives int

	// Radiologist tuning.
	RadiologistTick time.Duration
	ReverseChance   float64
	MinDwell        time.Duration
	ForcedExitMin   time.Duration
	ForcedExitMax   time.Duration
	RequiredMin     int
	RequiredMax     int
	RespawnMin      time.Duration
	RespawnMax      time.Duration

	// Rolls made after a resolution the room survives.
	BonusChance     float64
	StretcherChance float64

	// Stretcher tuning.
	WarningDelay  time.Duration
	StretcherTick time.Duration
	ExitMargin    int
}

func DefaultConfig() Config {
	return Config{
		Width:           10,
		Height:          10,
		HoleChance:      0.28,
		ProductTarget:   5,
		Lives:           3,
		RadiologistTick: 900 * time.Millisecond,
		ReverseChance:   0.2,
		MinDwell:        4 * time.Second,
		ForcedExitMin:   12 * time.Second,
		ForcedExitMax:   18 * time.Second,
		RequiredMin:     1,
		RequiredMax:     4,
		RespawnMin:      3 * time.Second,
		RespawnMax:      5 * time.Second,
		BonusChance:     0.35,
		StretcherChance: 0.5,
		WarningDelay:    1500 * time.Millisecond,
		StretcherTick:   300 * time.Millisecond,
		ExitMargin:      2,
	}
}
