package snake

import "github.com/vovakirdan/snake-arena/internal/core"

const hudHeight = 2

// BoardLayout places the grid on a character screen. Each cell is two
// columns wide so that it looks square in a terminal.
type BoardLayout struct {
	GridSize int
	OriginX  int // screen column of the left border
	OriginY  int // screen row of the top border
	MinW     int
	MinH     int
}

// NewBoardLayout centres a gridSize board below a top margin. ok is false
// when the screen cannot fit it.
func NewBoardLayout(gridSize, screenW, screenH, top int) (BoardLayout, bool) {
	l := BoardLayout{
		GridSize: gridSize,
		MinW:     gridSize*2 + 2,
		MinH:     gridSize + 2 + top,
	}
	if screenW < l.MinW || screenH < l.MinH {
		return l, false
	}
	l.OriginX = (screenW - l.MinW) / 2
	l.OriginY = top + (screenH-l.MinH)/2
	return l, true
}

// CellOrigin returns the screen column and row of the left half of cell p.
func (l BoardLayout) CellOrigin(p Position) (int, int) {
	return l.OriginX + 1 + p.X*2, l.OriginY + 1 + p.Y
}

// DrawBoard draws the border, food and snake. Walls mode gets a solid
// border; pass-through gets a dotted one.
func DrawBoard(dst *core.Screen, l BoardLayout, st *GameState) {
	frame := core.NewRect(l.OriginX, l.OriginY, l.MinW, l.GridSize+2)
	if st.Mode == ModeWalls {
		dst.DrawBox(frame, core.ColorRed)
	} else {
		drawDottedBox(dst, frame)
	}

	if InBounds(st.Food, l.GridSize) {
		x, y := l.CellOrigin(st.Food)
		dst.SetColored(x, y, '◆', core.ColorBrightRed)
	}

	for i := len(st.Snake) - 1; i >= 0; i-- {
		seg := st.Snake[i]
		if !InBounds(seg, l.GridSize) {
			continue
		}
		x, y := l.CellOrigin(seg)
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
			if st.Status == StatusGameOver {
				color = core.ColorBrightMagenta
			}
		}
		dst.SetColored(x, y, '█', color)
		dst.SetColored(x+1, y, '█', color)
	}
}

func drawDottedBox(dst *core.Screen, r core.Rect) {
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Y, '·', core.ColorCyan)
		dst.SetColored(x, r.Bottom()-1, '·', core.ColorCyan)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColored(r.X, y, ':', core.ColorCyan)
		dst.SetColored(r.Right()-1, y, ':', core.ColorCyan)
	}
}

// drawOverlay draws a centred two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
