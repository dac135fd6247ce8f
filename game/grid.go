package game

import (
	"math/rand"

	"github.com/mapleleafu/wardrush/wardrush-backend/models"
)

// Grid is the fixed playfield. All movement (players, radiologist,
// stretcher) goes through Clamp so there is a single bounds policy.
type Grid struct {
	Width  int
	Height int
}

func (g Grid) Clamp(p models.Position) models.Position {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > g.Width-1 {
		p.X = g.Width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > g.Height-1 {
		p.Y = g.Height - 1
	}
	return p
}

func (g Grid) Contains(p models.Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g Grid) Center() models.Position {
	return models.Position{X: g.Width / 2, Y: g.Height / 2}
}

func (g Grid) onBorder(p models.Position) bool {
	return p.X == 0 || p.X == g.Width-1 || p.Y == 0 || p.Y == g.Height-1
}

// GenerateHoles flags each border cell independently with the given
// probability. The result keeps the walk order (top row, bottom row,
// then the side columns) and may be empty; hazard spawning requires at
// least two holes and simply stays dormant otherwise.
func (g Grid) GenerateHoles(rng *rand.Rand, chance float64) []models.Position {
	var holes []models.Position
	for x := 0; x < g.Width; x++ {
		if rng.Float64() < chance {
			holes = append(holes, models.Position{X: x, Y: 0})
		}
	}
	for x := 0; x < g.Width; x++ {
		if rng.Float64() < chance {
			holes = append(holes, models.Position{X: x, Y: g.Height - 1})
		}
	}
	for y := 1; y < g.Height-1; y++ {
		if rng.Float64() < chance {
			holes = append(holes, models.Position{X: 0, Y: y})
		}
	}
	for y := 1; y < g.Height-1; y++ {
		if rng.Float64() < chance {
			holes = append(holes, models.Position{X: g.Width - 1, Y: y})
		}
	}
	return holes
}

// InwardDir maps a border cell to the direction a hazard entering
// through it travels. Cells on two borders at once (corners) resolve in
// left, right, top, bottom order.
func (g Grid) InwardDir(p models.Position) models.Position {
	switch {
	case p.X == 0:
		return models.Position{X: 1, Y: 0}
	case p.X == g.Width-1:
		return models.Position{X: -1, Y: 0}
	case p.Y == 0:
		return models.Position{X: 0, Y: 1}
	case p.Y == g.Height-1:
		return models.Position{X: 0, Y: -1}
	}
	return models.Position{}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
