package corner

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// subplots divides dc into a grid of tiles, aligns the plots so their
// data areas line up and draws them. Row 0 is the top row. A nil entry
// leaves its cell blank.
func subplots(dc draw.Canvas, plots [][]*plot.Plot, pad vg.Length) {
	if len(plots) == 0 {
		return
	}
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      pad,
		PadY:      pad,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j, p := range plots[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
}
