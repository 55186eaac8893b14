package render

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/gridpath/grid"
)

// Palette holds the fill colour for every grid.State.
var Palette = [...]color.RGBA{
	grid.Empty:   {R: 255, G: 255, B: 255, A: 255}, // white
	grid.Open:    {R: 209, G: 243, B: 251, A: 255}, // light blue
	grid.Closed:  {R: 138, G: 227, B: 215, A: 255}, // turquoise
	grid.Barrier: {R: 11, G: 54, B: 71, A: 255},    // dark blue
	grid.Start:   {R: 59, G: 178, B: 226, A: 255},  // teal
	grid.End:     {R: 65, G: 132, B: 164, A: 255},  // ocean blue
	grid.Path:    {R: 254, G: 254, B: 106, A: 255}, // yellow
}

// GridLine is the colour of the lines between cells.
var GridLine = color.RGBA{R: 209, G: 232, B: 251, A: 255}

// Color returns the fill for s; unknown states are drawn magenta.
func Color(s grid.State) color.RGBA {
	if int(s) < len(Palette) {
		return Palette[s]
	}
	return color.RGBA{R: 255, B: 255, A: 255}
}

// Hex formats c as "#RRGGBB".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
