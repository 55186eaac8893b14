// Package render maps grid state to pixels and terminal cells.
//
// It owns the colour Palette, the pixel Layout used by windowed front-ends to
// turn mouse positions into grid positions, and Terminal, which draws a board
// as coloured lipgloss blocks. The search packages never import render; only
// front-ends do.
package render
