// Package viz renders lattice quantities in the terminal.
//
// Line plots go through asciigraph, styling through lipgloss, and the
// interactive browser is a Bubble Tea program:
//
//   - [PlotBands], [PlotCurve]: band structures and densities of states
//   - [Canvas]: Braille pixel canvas, used to trace paths in k-space
//   - [Browser]: lattice list with switchable views
//
// # Key Bindings
//
// Bindings are defined by [DefaultKeyMap]:
//
//	j/k   - select lattice
//	tab   - next view (bands, dos, path, info), shift+tab back
//	s     - toggle raw singular values in the dos view
//	t     - cycle color themes
//	q     - quit
package viz
