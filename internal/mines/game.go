package mines

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameStatus int8

const (
	StatusPlaying GameStatus = iota
	StatusWon
	StatusLost
)

// [GameStatus] implements [json.Marshaler]
func (s GameStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s GameStatus) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

type InvalidCoordinateError struct {
	Row, Col int
}

// [InvalidCoordinateError] implements [error]
func (e InvalidCoordinateError) Error() string {
	return fmt.Sprintf("coordinate (%d, %d) out of bounds", e.Row, e.Col)
}

type Game struct {
	GameParams
	Status      GameStatus
	TimeElapsed int
	FlagMode    bool
	Flags       int
	Cells       []Cell
}

// NewGame builds a fresh grid for params: mines shuffled into positions
// outside the safe region, adjacency counts precomputed, the safe region
// revealed. The elapsed-time counter is considered started the moment
// this returns.
func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g := &Game{GameParams: params}
	g.start(r)
	return g, nil
}

// Reset discards the previous grid wholesale and re-runs the full start
// lifecycle with the same params. Nothing survives: no flags, no revealed
// cells, no elapsed time.
func (g *Game) Reset(r *rand.Rand) {
	g.Status = StatusPlaying
	g.TimeElapsed = 0
	g.FlagMode = false
	g.Flags = 0
	g.start(r)
}

func (g *Game) start(r *rand.Rand) {
	g.Cells = make([]Cell, g.CellCount())
	g.placeMines(r)
	g.computeAdjacency()
	g.revealSafeRegion()
}

func (g *Game) cellAt(row, col int) *Cell {
	return &g.Cells[row*g.GridSize+col]
}

func (g *Game) revealSafeRegion() {
	for _, rc := range g.SafeRegion() {
		c := g.cellAt(rc[0], rc[1])
		if c.Revealed {
			continue
		}
		c.Revealed = true
		if c.Adjacent == 0 {
			g.cascadeFrom(rc[0], rc[1])
		}
	}
	g.checkWin()
}

// Reveal opens a cell. Out-of-bounds coordinates are a caller bug and
// fail fast; a tap on a revealed or flagged cell, or after game end, is
// a silent no-op. Opening a mine loses the game and exposes every mine
// on the grid (flags are left as they are). Opening a zero-adjacency
// cell cascades over the whole connected zero region and its numbered
// border.
func (g *Game) Reveal(row, col int) error {
	if !g.InBounds(row, col) {
		return InvalidCoordinateError{row, col}
	}
	if g.Status != StatusPlaying {
		return nil
	}
	c := g.cellAt(row, col)
	if c.Revealed || c.Flagged {
		return nil
	}
	c.Revealed = true
	if c.Mine {
		Log.WithFields(logrus.Fields{"row": row, "col": col}).Debug("mine hit")
		g.Status = StatusLost
		g.revealMines()
		return nil
	}
	if c.Adjacent == 0 {
		g.cascadeFrom(row, col)
	}
	g.checkWin()
	return nil
}

// cascadeFrom runs the flood fill with an explicit work list instead of
// recursing; cells are marked revealed at enqueue time so no coordinate
// is visited twice. The starting cell must already be revealed.
func (g *Game) cascadeFrom(row, col int) {
	todo := [][2]int{{row, col}}
	for len(todo) > 0 {
		rc := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if g.cellAt(rc[0], rc[1]).Adjacent != 0 {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				rr, cc := rc[0]+dr, rc[1]+dc
				if (dr == 0 && dc == 0) || !g.InBounds(rr, cc) {
					continue
				}
				n := g.cellAt(rr, cc)
				// a zero-adjacency cell has no mine neighbors; skip
				// mines anyway so a corrupt grid cannot blow up
				if n.Revealed || n.Flagged || n.Mine {
					continue
				}
				n.Revealed = true
				todo = append(todo, [2]int{rr, cc})
			}
		}
	}
}

func (g *Game) revealMines() {
	for i := range g.Cells {
		if g.Cells[i].Mine {
			g.Cells[i].Revealed = true
		}
	}
}

func (g *Game) checkWin() {
	if g.Status != StatusPlaying {
		return
	}
	revealed := 0
	for i := range g.Cells {
		if !g.Cells[i].Mine && g.Cells[i].Revealed {
			revealed++
		}
	}
	if revealed == g.CellCount()-g.MineCount {
		g.Status = StatusWon
	}
}

// ToggleFlag flips the flag on an unrevealed cell. Flagging a revealed
// cell, or any cell after game end, is a silent no-op.
func (g *Game) ToggleFlag(row, col int) error {
	if !g.InBounds(row, col) {
		return InvalidCoordinateError{row, col}
	}
	if g.Status != StatusPlaying {
		return nil
	}
	c := g.cellAt(row, col)
	if c.Revealed {
		return nil
	}
	if c.Flagged {
		c.Flagged = false
		g.Flags--
	} else {
		c.Flagged = true
		g.Flags++
	}
	return nil
}

func (g *Game) ToggleFlagMode() {
	g.FlagMode = !g.FlagMode
}

// CellAction is the generic "cell tapped" input from the presentation
// layer: it flags when flag mode is on and reveals otherwise.
func (g *Game) CellAction(row, col int) error {
	if g.FlagMode {
		return g.ToggleFlag(row, col)
	}
	return g.Reveal(row, col)
}

// Tick advances the elapsed-time counter by one second. Ticks delivered
// after game end are ignored, so a racing scheduler cannot skew the
// final time.
func (g *Game) Tick() {
	if g.Status == StatusPlaying {
		g.TimeElapsed++
	}
}

// MinesRemaining is the display counter: total mines minus flags placed.
// It is not clamped and goes negative when the player over-flags.
func (g *Game) MinesRemaining() int {
	return g.MineCount - g.Flags
}

func (g *Game) Over() bool {
	return g.Status != StatusPlaying
}

func DecodeGame(buf []byte) (*Game, error) {
	var game Game
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (g Game) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(g)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
