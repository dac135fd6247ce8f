package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapleleafu/wardrush/wardrush-backend/models"
)

func TestWarningNeedsHole(t *testing.T) {
	r := testRoom(t, testConfig(), 2)
	r.holes = nil

	r.startStretcherWarning()
	assert.Nil(t, r.warning)
	assert.Nil(t, r.warnTimer)
}

func TestWarningUsesDoorDirection(t *testing.T) {
	r := testRoom(t, testConfig(), 2)
	r.holes = []models.Position{{X: 0, Y: 6}}

	r.startStretcherWarning()
	require.NotNil(t, r.warning)
	assert.Equal(t, 0, r.warning.X)
	assert.Equal(t, 6, r.warning.Y)
	assert.Equal(t, 1, r.warning.Dx, "left-border door sweeps rightward")
	assert.Equal(t, 0, r.warning.Dy)
	require.NotNil(t, r.warnTimer)
}

func TestWarningNotStackedOnActiveSweep(t *testing.T) {
	r := testRoom(t, testConfig(), 2)
	r.holes = []models.Position{{X: 0, Y: 6}}
	r.startStretcherWarning()
	r.activateStretcher()
	require.NotNil(t, r.stretcher)

	r.startStretcherWarning()
	assert.Nil(t, r.warning, "no second warning while a sweep is active")
}

func TestActivateSpawnsOutsideDoor(t *testing.T) {
	r := testRoom(t, testConfig(), 2)
	r.holes = []models.Position{{X: 9, Y: 2}}
	r.startStretcherWarning()

	r.activateStretcher()
	require.NotNil(t, r.stretcher)
	assert.Nil(t, r.warning)
	assert.Equal(t, models.Position{X: 10, Y: 2}, r.stretcher.pos, "spawns one cell past the right border")
	assert.Equal(t, models.Position{X: -1, Y: 0}, r.stretcher.dir)
	require.NotNil(t, r.sweepTick)
}

func TestSweepDamagesPlayerOncePerPass(t *testing.T) {
	r := testRoom(t, testConfig(), 2)
	require.NoError(t, r.AddPlayer("p1", &fakeConn{}))
	require.NoError(t, r.AddPlayer("p2", &fakeConn{}))
	p1, p2 := r.players["p1"], r.players["p2"]
	p1.X, p1.Y = 4, 6 // in the sweep lane
	p2.X, p2.Y = 4, 2 // off the lane
	r.holes = []models.Position{{X: 0, Y: 6}}
	r.startStretcherWarning()
	r.activateStretcher()

	for r.stretcher != nil {
		r.stepStretcher()
	}

	assert.Equal(t, 2, p1.Lives, "player in the lane loses exactly one life per pass")
	assert.Equal(t, 3, p2.Lives, "player off the lane is untouched")
	assert.Nil(t, r.sweepTick, "tick cancelled at despawn")
}

func TestSweepSkipsImmunePlayer(t *testing.T) {
	r := testRoom(t, testConfig(), 2)
	require.NoError(t, r.AddPlayer("p1", &fakeConn{}))
	p := r.players["p1"]
	p.X, p.Y = 4, 6
	p.BonusActive = true
	r.holes = []models.Position{{X: 0, Y: 6}}
	r.startStretcherWarning()
	r.activateStretcher()

	for r.stretcher != nil {
		r.stepStretcher()
	}

	assert.Equal(t, 3, p.Lives)
	assert.True(t, p.BonusActive, "the sweep does not consume the bonus")
}

func TestSweepFootprintSpansTwoCells(t *testing.T) {
	r := testRoom(t, testConfig(), 2)
	require.NoError(t, r.AddPlayer("p1", &fakeConn{}))
	p := r.players["p1"]
	r.holes = []models.Position{{X: 0, Y: 6}}
	r.startStretcherWarning()
	r.activateStretcher()

	// First step puts the lead cell on the door; the trailing cell is
	// still outside. Stand on the trailing cell of the second step.
	r.stepStretcher()
	require.NotNil(t, r.stretcher)
	p.X, p.Y = r.stretcher.pos.X, r.stretcher.pos.Y
	r.stepStretcher()

	assert.Equal(t, 2, p.Lives, "trailing footprint cell still hits")
}

func TestSweepDespawnsPastMargin(t *testing.T) {
	r := testRoom(t, testConfig(), 2)
	r.holes = []models.Position{{X: 0, Y: 6}}
	r.startStretcherWarning()
	r.activateStretcher()

	steps := 0
	for r.stretcher != nil {
		r.stepStretcher()
		steps++
		require.Less(t, steps, 20, "sweep must leave the grid")
	}
	// Entry at x=-1 heading right: width plus margin steps to clear.
	assert.Equal(t, r.grid.Width+r.cfg.ExitMargin+1, steps)
}

func TestSweepDamageCanEndGame(t *testing.T) {
	r := testRoom(t, testConfig(), 2)
	removed := false
	r.onRemove = func(string) { removed = true }
	c1, c2 := &fakeConn{}, &fakeConn{}
	require.NoError(t, r.AddPlayer("p1", c1))
	require.NoError(t, r.AddPlayer("p2", c2))
	p1, p2 := r.players["p1"], r.players["p2"]
	p1.X, p1.Y = 4, 6
	p1.Lives = 1
	p2.Lives = 2
	p2.X, p2.Y = 4, 2
	r.holes = []models.Position{{X: 0, Y: 6}}
	r.startStretcherWarning()
	r.activateStretcher()

	for r.stretcher != nil && !r.closed {
		r.stepStretcher()
	}

	assert.True(t, r.closed)
	assert.True(t, removed)
	var over models.GameOverMessage
	require.True(t, c2.lastOfType(t, models.TypeGameOver, &over))
	assert.Equal(t, "p1", over.LoserID)
	assert.Equal(t, "p2", over.WinnerID)
	assert.False(t, over.Tie)
}
