package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int
}

// CellView is what the presentation layer gets to see of a single cell.
type CellView int8

const (
	Hidden       CellView = -2
	Flag         CellView = -1
	MineRevealed CellView = 64
	// 0-8 for a revealed cell with that many mined neighbors
)

func (v CellView) String() string {
	switch {
	case v == Hidden:
		return " "
	case v == Flag:
		return "*"
	case 0 <= v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

func (c Cell) View() CellView {
	switch {
	case c.Revealed && c.Mine:
		return MineRevealed
	case c.Revealed:
		return CellView(c.Adjacent)
	case c.Flagged:
		return Flag
	default:
		return Hidden
	}
}

type GridView []CellView

func (g GridView) ToString(width int) string {
	var b strings.Builder
	for row := range len(g) / width {
		for col := range width {
			i := row*width + col
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
