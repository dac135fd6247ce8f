package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	codeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// CodeLength is the length of the shareable room codes.
	CodeLength = 4
)

// RoomInfo is returned by the API for the room list.
type RoomInfo struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
}

// Registry owns all rooms. It has no ambient global: the process makes
// one at startup, tests make as many as they like.
type Registry struct {
	mu    sync.Mutex
	cfg   Config
	rooms map[string]*Room
	rng   *rand.Rand // code generation; built lazily from NewRNG, guarded by mu

	// NewRNG builds the random sources (per-room gameplay and room
	// codes). Tests swap in seeded sources to pin outcomes.
	NewRNG func() *rand.Rand
}

func NewRegistry(cfg Config) *Registry {
	return &Registry{
		cfg:   cfg,
		rooms: make(map[string]*Room),
		NewRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Create allocates a room under a fresh code with the caller as its
// first player. The 4-char code space is small, so generation retries
// against existing rooms until unused. The creator is seated before
// the code is published, so a joiner racing in through the room list
// can never take both slots first.
func (reg *Registry) Create(c Conn) (string, string, *Room) {
	id := uuid.NewString()

	reg.mu.Lock()
	defer reg.mu.Unlock()
	var code string
	for {
		code = reg.generateCode()
		if _, exists := reg.rooms[code]; !exists {
			break
		}
	}
	room := NewRoom(code, reg.cfg, reg.NewRNG())
	room.onRemove = reg.remove
	// The room is not published yet, so seating cannot fail.
	_ = room.AddPlayer(id, c)
	reg.rooms[code] = room
	return code, id, room
}

// Join attaches a second player to an existing room.
func (reg *Registry) Join(code string, c Conn) (string, *Room, error) {
	reg.mu.Lock()
	room, ok := reg.rooms[code]
	reg.mu.Unlock()
	if !ok {
		return "", nil, ErrRoomNotFound
	}

	id := uuid.NewString()
	if err := room.AddPlayer(id, c); err != nil {
		return "", nil, err
	}
	return id, room, nil
}

// Leave detaches a player; an emptied room removes itself through
// onRemove.
func (reg *Registry) Leave(room *Room, playerID string) {
	room.RemovePlayer(playerID)
}

// Get returns the room for a code, or nil.
func (reg *Registry) Get(code string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.rooms[code]
}

// ListRooms reports every live room with its occupancy.
func (reg *Registry) ListRooms() []RoomInfo {
	reg.mu.Lock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, r := range reg.rooms {
		rooms = append(rooms, r)
	}
	reg.mu.Unlock()

	out := make([]RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomInfo{Code: r.Code, Players: r.PlayerCount()})
	}
	return out
}

// remove is installed as each room's onRemove hook. It only touches
// the registry map; it must never lock the room (teardown already
// holds that lock).
func (reg *Registry) remove(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, code)
}

// generateCode draws from the registry's injected source, so seeded
// tests can pin the codes it hands out. Callers hold mu.
func (reg *Registry) generateCode() string {
	if reg.rng == nil {
		reg.rng = reg.NewRNG()
	}
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = codeChars[reg.rng.Intn(len(codeChars))]
	}
	return string(b)
}
