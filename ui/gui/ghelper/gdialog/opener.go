package gdialog

import (
	"errors"
	"sync/atomic"

	"github.com/sqweek/dialog"
)

type Result struct {
	FEN string
	Err error
}

// Opener runs the blocking file dialog off the game loop, one at a time.
type Opener struct {
	open    func(title string) (string, error)
	busy    atomic.Bool
	results chan Result
}

func NewOpener() *Opener {
	return newOpener(OpenFEN)
}

func newOpener(open func(title string) (string, error)) *Opener {
	return &Opener{open: open, results: make(chan Result, 1)}
}

// Start shows the dialog unless one is already on screen.
func (o *Opener) Start(title string) bool {
	if !o.busy.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		fen, err := o.open(title)
		o.busy.Store(false)
		if errors.Is(err, dialog.ErrCancelled) {
			return
		}
		o.results <- Result{FEN: fen, Err: err}
	}()
	return true
}

// Poll returns a finished dialog's result without blocking.
func (o *Opener) Poll() (Result, bool) {
	select {
	case r := <-o.results:
		return r, true
	default:
		return Result{}, false
	}
}
