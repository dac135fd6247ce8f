package game

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/mapleleafu/wardrush/wardrush-backend/models"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room full")
)

// Conn is one client socket attached to a room. Send must not block:
// the room calls it while holding its lock (the websocket handler
// satisfies this with a buffered channel and a write pump).
type Conn interface {
	Send(data []byte) error
	Close() error
}

// Room is one two-player session. Every mutation — player commands and
// hazard timer callbacks alike — happens under mu, so the hazard state
// machines never interleave mid-update with a move.
type Room struct {
	Code string

	mu   sync.Mutex
	cfg  Config
	grid Grid
	rng  *rand.Rand

	players map[string]*models.PlayerState
	conns   map[string]Conn
	order   []string // player ids in join order, one per socket

	holes    []models.Position
	products []models.Position
	bonus    *models.Position

	radiologist *radiologist
	stretcher   *stretcher
	warning     *models.StretcherWarningState

	started  bool
	required int
	closed   bool

	// Timer handles owned by the room; teardown stops them all and a
	// callback firing after teardown sees closed and no-ops.
	spawnTimer *time.Timer
	radioTick  *time.Timer
	forcedExit *time.Timer
	warnTimer  *time.Timer
	sweepTick  *time.Timer

	// onRemove unregisters the room. It must not call back into the
	// room: it runs with mu held.
	onRemove func(code string)
}

// NewRoom builds a room with generated holes and a full product pool.
// The rng is owned by the room afterwards; tests pass a seeded one.
func NewRoom(code string, cfg Config, rng *rand.Rand) *Room {
	r := &Room{
		Code:    code,
		cfg:     cfg,
		grid:    Grid{Width: cfg.Width, Height: cfg.Height},
		rng:     rng,
		players: make(map[string]*models.PlayerState),
		conns:   make(map[string]Conn),
	}
	r.holes = r.grid.GenerateHoles(rng, cfg.HoleChance)
	r.ensureProducts(nil)
	return r
}

// AddPlayer attaches a socket and spawns its player at the center cell.
func (r *Room) AddPlayer(id string, c Conn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRoomNotFound
	}
	if len(r.order) >= 2 {
		return ErrRoomFull
	}

	center := r.grid.Center()
	r.players[id] = &models.PlayerState{
		X:     center.X,
		Y:     center.Y,
		Lives: r.cfg.Lives,
	}
	r.conns[id] = c
	r.order = append(r.order, id)
	return nil
}

// RemovePlayer detaches a player and its socket. The last departure
// tears the room down; otherwise the remaining occupant gets a fresh
// snapshot.
func (r *Room) RemovePlayer(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	if _, ok := r.players[id]; !ok {
		return
	}

	c := r.conns[id]
	delete(r.players, id)
	delete(r.conns, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	if len(r.order) == 0 {
		// The departing socket is already out of conns, so teardown
		// no longer sees it: close it here.
		r.teardown()
		if c != nil {
			_ = c.Close()
		}
		return
	}
	r.broadcastState()
}

// Move applies a movement delta, clamped to the grid, and resolves any
// pickup on the landing cell. Unknown player ids are a stale-message
// no-op.
func (r *Room) Move(id string, dx, dy int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	p, ok := r.players[id]
	if !ok {
		return
	}

	pos := r.grid.Clamp(models.Position{X: p.X + dx, Y: p.Y + dy})
	p.X, p.Y = pos.X, pos.Y
	r.tryCollect(p)
	r.tryPickBonus(p)
	r.broadcastState()
}

// Ready marks a player ready. The round starts once both occupants are
// ready, which arms the first radiologist cycle.
func (r *Room) Ready(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.started {
		return
	}
	p, ok := r.players[id]
	if !ok {
		return
	}
	p.Ready = true

	if len(r.players) < 2 {
		return
	}
	for _, q := range r.players {
		if !q.Ready {
			return
		}
	}
	r.startRound()
}

func (r *Room) startRound() {
	r.started = true
	log.Printf("Room %s started with %d players", r.Code, len(r.players))
	r.broadcastEvent(models.StartMessage{Type: models.TypeStart})
	r.scheduleRadiologist()
	r.broadcastState()
}

// Reset reinitializes the room for a new round: players re-centered
// with full lives and zeroed counters, fresh holes and products, all
// hazards and timers cleared. The next round is ready-gated again.
func (r *Room) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.stopTimers()
	r.radiologist = nil
	r.stretcher = nil
	r.warning = nil
	r.bonus = nil
	r.started = false
	r.required = 0

	center := r.grid.Center()
	for _, p := range r.players {
		p.X, p.Y = center.X, center.Y
		p.Lives = r.cfg.Lives
		p.Collected = 0
		p.CollectedVisit = 0
		p.Ready = false
		p.BonusActive = false
	}

	r.holes = r.grid.GenerateHoles(r.rng, r.cfg.HoleChance)
	r.products = nil
	r.ensureProducts(nil)
	r.broadcastState()
}

// PlayerCount returns the number of attached sockets.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// BroadcastState sends a snapshot to every socket.
func (r *Room) BroadcastState() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.broadcastState()
}

// teardown closes the room: timers stopped, sockets closed, registry
// entry removed. Callers hold mu. Any timer callback firing afterwards
// sees closed and returns.
func (r *Room) teardown() {
	if r.closed {
		return
	}
	r.closed = true
	r.stopTimers()
	for _, c := range r.conns {
		_ = c.Close()
	}
	if r.onRemove != nil {
		r.onRemove(r.Code)
	}
	log.Printf("Room %s closed", r.Code)
}

func (r *Room) stopTimers() {
	for _, t := range []**time.Timer{&r.spawnTimer, &r.radioTick, &r.forcedExit, &r.warnTimer, &r.sweepTick} {
		if *t != nil {
			(*t).Stop()
			*t = nil
		}
	}
}

func (r *Room) isHole(p models.Position) bool {
	for _, h := range r.holes {
		if h == p {
			return true
		}
	}
	return false
}

// relocateAdjacent moves a player to a random free cell next to its
// current one. Used when a bonus absorbs a radiologist resolution.
func (r *Room) relocateAdjacent(p *models.PlayerState) {
	var free []models.Position
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			cell := models.Position{X: p.X + dx, Y: p.Y + dy}
			if !r.grid.Contains(cell) {
				continue
			}
			occupied := false
			for _, q := range r.players {
				if q.X == cell.X && q.Y == cell.Y {
					occupied = true
					break
				}
			}
			if !occupied {
				free = append(free, cell)
			}
		}
	}
	if len(free) == 0 {
		return
	}
	cell := free[r.rng.Intn(len(free))]
	p.X, p.Y = cell.X, cell.Y
}
