package gselect

import "schack/ui/gui/glayout"

// Pointer is the primary button state of one tick.
type Pointer struct {
	X, Y     int
	Released bool
	// Taken is set when a widget above the board already used the click.
	Taken bool
}

// HandlePointer turns a button release over the board into a Click.
// Presses, held buttons and releases in the margin do nothing.
func (s *Selector) HandlePointer(l glayout.Layout, p Pointer) error {
	if p.Taken || !p.Released {
		return nil
	}
	sq, ok := l.PixelToSquare(p.X, p.Y)
	if !ok {
		return nil
	}
	return s.Click(sq)
}
