package main

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ddrozdov/sweeper-server/internal/mines"
)

func testGame(t *testing.T) *mines.Game {
	t.Helper()
	g, err := mines.NewGame(
		mines.GameParams{GridSize: 10, MineCount: 10},
		rand.New(rand.NewPCG(1, 2)),
	)
	assert.NoError(t, err)
	return g
}

func TestExecuteCommand(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	t.Run("flag and unflag", func(t *testing.T) {
		g := testGame(t)
		assert.NoError(t, executeCommand(g, r, "f 0 0"))
		assert.Equal(t, g.MineCount-1, g.MinesRemaining())
		assert.NoError(t, executeCommand(g, r, "f 0 0"))
		assert.Equal(t, g.MineCount, g.MinesRemaining())
	})

	t.Run("tick", func(t *testing.T) {
		g := testGame(t)
		assert.NoError(t, executeCommand(g, r, "t"))
		assert.NoError(t, executeCommand(g, r, "t"))
		assert.Equal(t, 2, g.TimeElapsed)
	})

	t.Run("flag mode dispatch", func(t *testing.T) {
		g := testGame(t)
		assert.NoError(t, executeCommand(g, r, "m"))
		assert.True(t, g.FlagMode)
		assert.NoError(t, executeCommand(g, r, "a 0 0"))
		assert.Equal(t, g.MineCount-1, g.MinesRemaining())
	})

	t.Run("new game resets", func(t *testing.T) {
		g := testGame(t)
		assert.NoError(t, executeCommand(g, r, "t"))
		assert.NoError(t, executeCommand(g, r, "f 0 0"))
		assert.NoError(t, executeCommand(g, r, "n"))
		assert.Equal(t, 0, g.TimeElapsed)
		assert.Equal(t, g.MineCount, g.MinesRemaining())
		assert.Equal(t, mines.StatusPlaying, g.Status)
	})

	t.Run("noop fetch", func(t *testing.T) {
		g := testGame(t)
		before := g.Snapshot()
		assert.NoError(t, executeCommand(g, r, "g"))
		assert.Equal(t, before, g.Snapshot())
	})

	t.Run("malformed", func(t *testing.T) {
		g := testGame(t)
		assert.Error(t, executeCommand(g, r, "x 1 2"))
		assert.Error(t, executeCommand(g, r, "r 1"))
		assert.Error(t, executeCommand(g, r, "r one two"))
		assert.Error(t, executeCommand(g, r, "r 100 100"))
		assert.Error(t, executeCommand(g, r, "t 5"))
	})
}

func TestSharedRandParallelDraws(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				if n := rnd.IntN(100); n < 0 || n >= 100 {
					t.Errorf("draw out of range: %d", n)
				}
			}
		}()
	}
	wg.Wait()
}
