package game

import (
	"time"

	"github.com/mapleleafu/wardrush/wardrush-backend/models"
)

// radiologist is the wandering hazard. It exists only between spawn and
// resolution; the room holds at most one.
type radiologist struct {
	pos       models.Position
	dir       models.Position
	spawnedAt time.Time
	required  int
}

// scheduleRadiologist arms the next spawn after a randomized delay.
// Callers hold mu.
func (r *Room) scheduleRadiologist() {
	delay := r.randDuration(r.cfg.RespawnMin, r.cfg.RespawnMax)
	r.spawnTimer = time.AfterFunc(delay, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed || !r.started || r.radiologist != nil {
			return
		}
		r.spawnRadiologist()
		r.broadcastState()
	})
}

// spawnRadiologist enters the hazard through a random hole. It needs
// at least two holes (one entry, one exit); with fewer the cycle just
// re-arms and waits for a reset to regenerate the topology.
func (r *Room) spawnRadiologist() {
	if len(r.holes) < 2 {
		r.scheduleRadiologist()
		return
	}

	entry := r.holes[r.rng.Intn(len(r.holes))]
	ref := r.holes[r.rng.Intn(len(r.holes))]

	// Travel direction from the sign of the entry→reference delta,
	// falling back to +1 on a zero axis.
	dir := models.Position{X: sign(ref.X - entry.X), Y: sign(ref.Y - entry.Y)}
	if dir.X == 0 {
		dir.X = 1
	}
	if dir.Y == 0 {
		dir.Y = 1
	}

	required := r.cfg.RequiredMin + r.rng.Intn(r.cfg.RequiredMax-r.cfg.RequiredMin+1)
	r.required = required
	r.radiologist = &radiologist{
		pos:       entry,
		dir:       dir,
		spawnedAt: time.Now(),
		required:  required,
	}
	for _, p := range r.players {
		p.CollectedVisit = 0
	}

	r.radioTick = time.AfterFunc(r.cfg.RadiologistTick, r.radioTickFn)
	r.forcedExit = time.AfterFunc(r.randDuration(r.cfg.ForcedExitMin, r.cfg.ForcedExitMax), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed || r.radiologist == nil {
			return
		}
		r.resolveRadiologist()
	})
}

func (r *Room) radioTickFn() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.radiologist == nil {
		return
	}
	if r.stepRadiologist() {
		return
	}
	r.broadcastState()
	if r.radioTick != nil {
		r.radioTick.Reset(r.cfg.RadiologistTick)
	}
}

// stepRadiologist advances one wander tick: occasionally reverse,
// move, clamp, and exit if standing on a hole past the minimum dwell.
// Returns true when the hazard resolved. Callers hold mu.
func (r *Room) stepRadiologist() bool {
	rad := r.radiologist
	if r.rng.Float64() < r.cfg.ReverseChance {
		rad.dir.X, rad.dir.Y = -rad.dir.X, -rad.dir.Y
	}
	rad.pos = r.grid.Clamp(models.Position{X: rad.pos.X + rad.dir.X, Y: rad.pos.Y + rad.dir.Y})

	if r.isHole(rad.pos) && time.Since(rad.spawnedAt) >= r.cfg.MinDwell {
		r.resolveRadiologist()
		return true
	}
	return false
}

// resolveRadiologist ends the cycle: players under quota lose a life,
// an armed bonus absorbs the penalty instead, visit counters reset,
// and — if the room survives the game-over check — the next cycle and
// the follow-up bonus/stretcher rolls are armed. Callers hold mu.
func (r *Room) resolveRadiologist() {
	rad := r.radiologist
	if rad == nil {
		return
	}
	if r.radioTick != nil {
		r.radioTick.Stop()
		r.radioTick = nil
	}
	if r.forcedExit != nil {
		r.forcedExit.Stop()
		r.forcedExit = nil
	}
	r.radiologist = nil

	for _, p := range r.players {
		if p.BonusActive {
			p.CollectedVisit = rad.required
			p.BonusActive = false
			r.relocateAdjacent(p)
			continue
		}
		if p.CollectedVisit < rad.required && p.Lives > 0 {
			p.Lives--
		}
	}
	for _, p := range r.players {
		p.CollectedVisit = 0
	}

	if r.evaluateGameOver() {
		return
	}

	r.scheduleRadiologist()
	if r.rng.Float64() < r.cfg.BonusChance {
		r.spawnBonus()
	}
	if r.rng.Float64() < r.cfg.StretcherChance {
		r.startStretcherWarning()
	}
	r.broadcastState()
}

func (r *Room) randDuration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(r.rng.Int63n(int64(max-min)))
}
