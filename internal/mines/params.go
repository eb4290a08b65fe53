package mines

import "fmt"

const (
	MinGridSize = 10
	MaxGridSize = 60

	MinMineCount = 10
	MaxMineCount = 500
)

type GameParams struct {
	GridSize  int `json:"grid_size"`
	MineCount int `json:"mine_count"`
}

type InvalidParamsError struct {
	message string
}

// [InvalidParamsError] implements [error]
func (e InvalidParamsError) Error() string {
	return e.message
}

func (p GameParams) Validate() error {
	if p.GridSize < MinGridSize || p.GridSize > MaxGridSize {
		return InvalidParamsError{fmt.Sprintf(
			"grid size must be in [%d, %d], got %d",
			MinGridSize, MaxGridSize, p.GridSize,
		)}
	}
	maxMines := min(MaxMineCount, p.GridSize*p.GridSize/4)
	if p.MineCount < MinMineCount || p.MineCount > maxMines {
		return InvalidParamsError{fmt.Sprintf(
			"mine count must be in [%d, %d] for grid size %d, got %d",
			MinMineCount, maxMines, p.GridSize, p.MineCount,
		)}
	}
	return nil
}

func (p GameParams) CellCount() int {
	return p.GridSize * p.GridSize
}

func (p GameParams) InBounds(row, col int) bool {
	return 0 <= row && row < p.GridSize && 0 <= col && col < p.GridSize
}

// SafeRegion is the 2x2 block centered on the grid that is kept mine-free
// and force-revealed when a game starts.
func (p GameParams) SafeRegion() [4][2]int {
	c := p.GridSize / 2
	return [4][2]int{
		{c - 1, c - 1}, {c - 1, c},
		{c, c - 1}, {c, c},
	}
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d", p.GridSize, p.MineCount)
}
