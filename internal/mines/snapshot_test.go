package mines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotViews(t *testing.T) {
	g := testGame(10, [2]int{0, 0})
	assert.NoError(t, g.ToggleFlag(9, 9))
	assert.NoError(t, g.Reveal(1, 1))

	s := g.Snapshot()
	assert.Equal(t, StatusPlaying, s.Status)
	assert.Equal(t, 0, s.MinesRemaining)
	assert.Equal(t, Hidden, s.Grid[0])
	assert.Equal(t, CellView(1), s.Grid[1*10+1])
	assert.Equal(t, Flag, s.Grid[9*10+9])

	// a snapshot is a copy, not a window into the game
	s.Grid[0] = CellView(8)
	assert.Equal(t, Hidden, g.Snapshot().Grid[0])
}

func TestSnapshotAfterLoss(t *testing.T) {
	g := testGame(10, [2]int{0, 0})
	assert.NoError(t, g.Reveal(0, 0))

	s := g.Snapshot()
	assert.Equal(t, StatusLost, s.Status)
	assert.Equal(t, MineRevealed, s.Grid[0])
}

func TestGridViewToString(t *testing.T) {
	g := testGame(10, [2]int{0, 0})
	assert.NoError(t, g.Reveal(9, 9))

	rendered := g.Snapshot().Grid.ToString(g.GridSize)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[0], "1")
	assert.Contains(t, lines[9], "0")
}
