package mines

// Snapshot is a read-only copy of everything the presentation layer
// needs to draw a frame. Mutating it has no effect on the game.
type Snapshot struct {
	Grid           GridView   `json:"grid"`
	GridSize       int        `json:"grid_size"`
	Status         GameStatus `json:"status"`
	MinesRemaining int        `json:"mines_remaining"`
	TimeElapsed    int        `json:"time_elapsed"`
	FlagMode       bool       `json:"flag_mode"`
}

func (g *Game) Snapshot() Snapshot {
	grid := make(GridView, len(g.Cells))
	for i, c := range g.Cells {
		grid[i] = c.View()
	}
	return Snapshot{
		Grid:           grid,
		GridSize:       g.GridSize,
		Status:         g.Status,
		MinesRemaining: g.MinesRemaining(),
		TimeElapsed:    g.TimeElapsed,
		FlagMode:       g.FlagMode,
	}
}

// Result is what the statistics consumer gets after a terminal
// transition.
type Result struct {
	Won         bool `json:"won"`
	TimeElapsed int  `json:"time_elapsed"`
}

func (g *Game) Result() Result {
	return Result{
		Won:         g.Status == StatusWon,
		TimeElapsed: g.TimeElapsed,
	}
}
