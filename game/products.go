package game

import "github.com/mapleleafu/wardrush/wardrush-backend/models"

// ensureProducts tops the pool back up to the configured target by
// rejection sampling: a candidate cell must not hit an existing
// product, a hole, the radiologist, or the just-vacated cell (so a
// pickup never respawns under the player's feet). Callers hold mu.
func (r *Room) ensureProducts(avoid *models.Position) {
	for len(r.products) < r.cfg.ProductTarget {
		cell := models.Position{
			X: r.rng.Intn(r.grid.Width),
			Y: r.rng.Intn(r.grid.Height),
		}
		if avoid != nil && cell == *avoid {
			continue
		}
		if r.isHole(cell) || r.productAt(cell) >= 0 {
			continue
		}
		if r.radiologist != nil && r.radiologist.pos == cell {
			continue
		}
		if r.bonus != nil && *r.bonus == cell {
			continue
		}
		r.products = append(r.products, cell)
	}
}

func (r *Room) productAt(cell models.Position) int {
	for i, p := range r.products {
		if p == cell {
			return i
		}
	}
	return -1
}

// tryCollect resolves a pickup on the player's cell: the product is
// consumed, both counters bump, and a replacement spawns elsewhere.
func (r *Room) tryCollect(p *models.PlayerState) {
	cell := models.Position{X: p.X, Y: p.Y}
	i := r.productAt(cell)
	if i < 0 {
		return
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	p.Collected++
	p.CollectedVisit++
	r.ensureProducts(&cell)
}

// tryPickBonus consumes the bonus item if the player stands on it,
// arming one-time radiologist immunity.
func (r *Room) tryPickBonus(p *models.PlayerState) {
	if r.bonus == nil || p.X != r.bonus.X || p.Y != r.bonus.Y {
		return
	}
	r.bonus = nil
	p.BonusActive = true
}

// spawnBonus places the single bonus item on a free cell. No-op while
// one is already on the grid or held.
func (r *Room) spawnBonus() {
	if r.bonus != nil {
		return
	}
	for _, p := range r.players {
		if p.BonusActive {
			return
		}
	}
	for tries := 0; tries < 100; tries++ {
		cell := models.Position{
			X: r.rng.Intn(r.grid.Width),
			Y: r.rng.Intn(r.grid.Height),
		}
		if r.isHole(cell) || r.productAt(cell) >= 0 {
			continue
		}
		r.bonus = &cell
		return
	}
}
