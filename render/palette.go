package render

import (
	"image/color"

	"github.com/katalvlaran/gridstar/grid"
)

// Background is drawn behind the grid by pixel renderers.
var Background = color.RGBA{R: 16, G: 16, B: 20, A: 255}

var stateColors = map[grid.CellState]color.RGBA{
	grid.Air:      {R: 224, G: 224, B: 224, A: 255},
	grid.Wall:     {R: 40, G: 40, B: 44, A: 255},
	grid.Frontier: {R: 230, G: 190, B: 40, A: 255},
	grid.Expanded: {R: 255, G: 240, B: 120, A: 255},
	grid.DeadEnd:  {R: 210, G: 60, B: 60, A: 255},
	grid.Path:     {R: 190, G: 60, B: 190, A: 255},
}

var overlayColors = map[Overlay]color.RGBA{
	PlayerOverlay:  {R: 60, G: 110, B: 230, A: 255},
	CurrentOverlay: {R: 240, G: 110, B: 240, A: 255},
	GoalOverlay:    {R: 60, G: 190, B: 80, A: 255},
}

// StateColor returns the fill colour of a cell state.
func StateColor(s grid.CellState) color.RGBA {
	return stateColors[s]
}

// OverlayColor returns the marker colour of an overlay; ok is false for NoOverlay.
func OverlayColor(o Overlay) (c color.RGBA, ok bool) {
	c, ok = overlayColors[o]
	return c, ok
}

// CellColor returns what a pixel renderer paints at p: the overlay if any,
// otherwise the cell state.
func CellColor(f Frame, p grid.Pos) color.RGBA {
	if c, ok := OverlayColor(f.OverlayAt(p)); ok {
		return c
	}
	return StateColor(f.Grid.State(p))
}
