package api

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
)

// Board colours, hex RGB.
const (
	colorBackground = "#111418"
	colorGrid       = "#1c2128"
	colorWall       = "#d64545"
	colorPortal     = "#3fb7c9"
	colorFood       = "#f2c94c"
	colorBody       = "#2e9e5b"
	colorHead       = "#6fe39a"
	colorDead       = "#c65bd6"
)

// RenderBoard draws st as a gridSize x gridSize board with cellSize
// pixel cells. Walls mode gets a solid red border, pass-through a dashed
// cyan one.
func RenderBoard(st *snake.GameState, gridSize, cellSize int) image.Image {
	side := float64(gridSize * cellSize)
	cell := float64(cellSize)

	dc := gg.NewContext(gridSize*cellSize, gridSize*cellSize)
	dc.SetHexColor(colorBackground)
	dc.Clear()

	dc.SetHexColor(colorGrid)
	dc.SetLineWidth(1)
	for i := 1; i < gridSize; i++ {
		p := float64(i) * cell
		dc.DrawLine(p, 0, p, side)
		dc.DrawLine(0, p, side, p)
	}
	dc.Stroke()

	if st.Food != snake.NoFood {
		dc.SetHexColor(colorFood)
		dc.DrawCircle(float64(st.Food.X)*cell+cell/2, float64(st.Food.Y)*cell+cell/2, cell*0.35)
		dc.Fill()
	}

	for i := len(st.Snake) - 1; i >= 0; i-- {
		p := st.Snake[i]
		switch {
		case i == 0 && st.Status == snake.StatusGameOver:
			dc.SetHexColor(colorDead)
		case i == 0:
			dc.SetHexColor(colorHead)
		default:
			dc.SetHexColor(colorBody)
		}
		dc.DrawRoundedRectangle(float64(p.X)*cell+1, float64(p.Y)*cell+1, cell-2, cell-2, cell/5)
		dc.Fill()
	}

	dc.SetLineWidth(max(2, cell/6))
	if st.Mode == snake.ModePassThrough {
		dc.SetHexColor(colorPortal)
		dc.SetDash(cell/2, cell/3)
	} else {
		dc.SetHexColor(colorWall)
	}
	dc.DrawRectangle(0, 0, side, side)
	dc.Stroke()
	dc.SetDash()

	return dc.Image()
}
