package game

import (
	"time"

	"github.com/mapleleafu/wardrush/wardrush-backend/models"
)

// stretcher is the sweep hazard. Its footprint spans its current cell
// plus the cell behind it along the travel axis, and it damages each
// player at most once per pass.
type stretcher struct {
	pos models.Position
	dir models.Position
	hit map[string]bool
}

// startStretcherWarning posts the warning at a random door and arms
// the transition to the active sweep. Needs a hole to enter through;
// skipped while a warning or sweep is already in flight. Callers hold
// mu.
func (r *Room) startStretcherWarning() {
	if len(r.holes) == 0 || r.warning != nil || r.stretcher != nil {
		return
	}

	door := r.holes[r.rng.Intn(len(r.holes))]
	dir := r.grid.InwardDir(door)
	if dir == (models.Position{}) {
		return
	}

	r.warning = &models.StretcherWarningState{X: door.X, Y: door.Y, Dx: dir.X, Dy: dir.Y}
	r.warnTimer = time.AfterFunc(r.cfg.WarningDelay, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed || r.warning == nil {
			return
		}
		r.activateStretcher()
		r.broadcastState()
	})
}

// activateStretcher spawns the sweep one cell outside the door so its
// first tick enters the grid through it. Callers hold mu.
func (r *Room) activateStretcher() {
	w := r.warning
	r.warning = nil
	r.warnTimer = nil
	r.stretcher = &stretcher{
		pos: models.Position{X: w.X - w.Dx, Y: w.Y - w.Dy},
		dir: models.Position{X: w.Dx, Y: w.Dy},
		hit: make(map[string]bool),
	}
	r.sweepTick = time.AfterFunc(r.cfg.StretcherTick, r.sweepTickFn)
}

func (r *Room) sweepTickFn() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.stretcher == nil {
		return
	}
	r.stepStretcher()
	if r.closed {
		return
	}
	r.broadcastState()
	if r.stretcher != nil && r.sweepTick != nil {
		r.sweepTick.Reset(r.cfg.StretcherTick)
	}
}

// stepStretcher advances the sweep one cell, applies collisions, and
// despawns it once past the exit margin. Callers hold mu.
func (r *Room) stepStretcher() {
	s := r.stretcher
	s.pos.X += s.dir.X
	s.pos.Y += s.dir.Y

	if r.pastMargin(s.pos) {
		if r.sweepTick != nil {
			r.sweepTick.Stop()
			r.sweepTick = nil
		}
		r.stretcher = nil
		return
	}

	lead := s.pos
	trail := models.Position{X: s.pos.X - s.dir.X, Y: s.pos.Y - s.dir.Y}
	damaged := false
	for id, p := range r.players {
		if s.hit[id] || p.BonusActive {
			continue
		}
		at := models.Position{X: p.X, Y: p.Y}
		if at == lead || at == trail {
			s.hit[id] = true
			if p.Lives > 0 {
				p.Lives--
			}
			damaged = true
		}
	}
	if damaged {
		r.evaluateGameOver()
	}
}

func (r *Room) pastMargin(p models.Position) bool {
	m := r.cfg.ExitMargin
	return p.X < -m || p.X >= r.grid.Width+m || p.Y < -m || p.Y >= r.grid.Height+m
}
