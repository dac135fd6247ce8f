package game

import (
	"encoding/json"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mapleleafu/wardrush/wardrush-backend/models"
)

// testConfig keeps every timer far beyond test runtime and removes the
// random rolls, so tests drive the state machines by calling the step
// functions directly.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.RadiologistTick = time.Hour
	cfg.MinDwell = time.Hour
	cfg.ForcedExitMin = time.Hour
	cfg.ForcedExitMax = 2 * time.Hour
	cfg.RespawnMin = time.Hour
	cfg.RespawnMax = 2 * time.Hour
	cfg.WarningDelay = time.Hour
	cfg.StretcherTick = time.Hour
	cfg.ReverseChance = 0
	cfg.BonusChance = 0
	cfg.StretcherChance = 0
	return cfg
}

func testRoom(t *testing.T, cfg Config, seed int64) *Room {
	t.Helper()
	r := NewRoom("TEST", cfg, rand.New(rand.NewSource(seed)))
	t.Cleanup(func() {
		r.mu.Lock()
		if !r.closed {
			r.closed = true
			r.stopTimers()
		}
		r.mu.Unlock()
	})
	return r
}

type fakeConn struct {
	mu     sync.Mutex
	msgs   [][]byte
	closed bool
}

func (c *fakeConn) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

// types returns the type field of every received message, in order.
func (c *fakeConn) types(t *testing.T) []string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, raw := range c.msgs {
		var env struct {
			Type string `json:"type"`
		}
		require.NoError(t, json.Unmarshal(raw, &env))
		out = append(out, env.Type)
	}
	return out
}

func (c *fakeConn) lastOfType(t *testing.T, typ string, v any) bool {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.msgs) - 1; i >= 0; i-- {
		var env struct {
			Type string `json:"type"`
		}
		require.NoError(t, json.Unmarshal(c.msgs[i], &env))
		if env.Type == typ {
			require.NoError(t, json.Unmarshal(c.msgs[i], v))
			return true
		}
	}
	return false
}

func (c *fakeConn) lastState(t *testing.T) (models.StateMessage, bool) {
	t.Helper()
	var msg models.StateMessage
	ok := c.lastOfType(t, models.TypeState, &msg)
	return msg, ok
}
