package main

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ddrozdov/sweeper-server/internal/mines"
)

func loseGame(t *testing.T, g *mines.Game) {
	t.Helper()
	for row := range g.GridSize {
		for col := range g.GridSize {
			if g.Cells[row*g.GridSize+col].Mine {
				assert.NoError(t, g.Reveal(row, col))
				return
			}
		}
	}
	t.Fatal("no mine on the grid")
}

func winGame(t *testing.T, g *mines.Game) {
	t.Helper()
	for row := range g.GridSize {
		for col := range g.GridSize {
			c := g.Cells[row*g.GridSize+col]
			if c.Mine || c.Revealed {
				continue
			}
			assert.NoError(t, g.Reveal(row, col))
		}
	}
	assert.Equal(t, mines.StatusWon, g.Status)
}

func TestSyncOutcomeAcrossReset(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	session := &GameSession{SessionId: 1, Game: *testGame(t)}

	loseGame(t, &session.Game)
	session.syncOutcome()
	assert.False(t, session.EndedAt.IsZero())
	firstEnd := session.EndedAt

	// a second sync on the same terminal game keeps the first stamp
	session.syncOutcome()
	assert.Equal(t, firstEnd, session.EndedAt)

	// reset puts the session back in play: no end stamp may survive,
	// or the stats consumer counts the fresh game as already played
	session.Game.Reset(r)
	session.syncOutcome()
	assert.Equal(t, mines.StatusPlaying, session.Game.Status)
	assert.True(t, session.EndedAt.IsZero())

	winGame(t, &session.Game)
	session.syncOutcome()
	assert.False(t, session.EndedAt.IsZero())
	assert.False(t, session.EndedAt.Before(firstEnd))
}

func TestSessionJSONAfterReset(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	session := &GameSession{SessionId: 2, Game: *testGame(t)}

	loseGame(t, &session.Game)
	session.syncOutcome()
	session.Game.Reset(r)
	session.syncOutcome()

	payload, err := json.Marshal(session)
	assert.NoError(t, err)
	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "playing", decoded["status"])
	assert.NotContains(t, decoded, "ended_at")
}
