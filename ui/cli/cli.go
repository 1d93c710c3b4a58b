package cli

import (
	"bufio"
	"fmt"
	"io"
	"schack/src"
	"schack/src/base"
	"schack/src/logx"
	"schack/ui/gui/gselect"
	"schack/ui/gui/tools/lang"
	"strings"
)

// CLIProcessing plays a game on a terminal: every typed square is a click.
type CLIProcessing struct {
	builder  *src.GameBuilder
	selector *gselect.Selector
	lang     *lang.GUILangWorker
	logx     logx.Logger
	in       io.Reader
	out      io.Writer
	color    bool
}

func NewCLI(b *src.GameBuilder, mode gselect.Mode, lw *lang.GUILangWorker, l logx.Logger, in io.Reader, out io.Writer, color bool) *CLIProcessing {
	return &CLIProcessing{
		builder:  b,
		selector: gselect.NewSelector(b, mode, l),
		lang:     lw,
		logx:     l,
		in:       in,
		out:      out,
		color:    color,
	}
}

// line processing
// - square (e2) selects, moves or deselects
// - new, fen, pgn
// - q to exit
func (c *CLIProcessing) RunLineMode() error {
	c.draw()
	fmt.Fprintln(c.out, c.lang.T("cli.help"))

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, c.lang.T("cli.prompt"))
		if !scanner.Scan() {
			return scanner.Err()
		}
		done, err := c.handle(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// handle applies one input line; done means the session is over.
func (c *CLIProcessing) handle(line string) (bool, error) {
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "new":
		c.logx.Info("new game")
		c.builder.CreateClassic()
		c.selector.Reset()
		c.draw()
		return false, nil
	case "fen":
		fmt.Fprintln(c.out, c.builder.FEN())
		return false, nil
	case "pgn":
		fmt.Fprintln(c.out, c.builder.PGN())
		return false, nil
	case "help", "?":
		fmt.Fprintln(c.out, c.lang.T("cli.help"))
		return false, nil
	}

	sq, err := base.SquareFromAlgebraic(line)
	if err != nil {
		fmt.Fprintf(c.out, "%s: %q\n", c.lang.T("cli.unknown"), line)
		return false, nil
	}
	if err := c.selector.Click(sq); err != nil {
		return true, err
	}
	c.draw()
	return c.builder.Status().Finished(), nil
}

func (c *CLIProcessing) draw() {
	v := BoardView{Candidates: c.selector.Candidates(), Color: c.color}
	if sq, ok := c.selector.Selected(); ok {
		v.Selected = &sq
	}
	PrintBoard(c.out, c.builder.CurrentBoard(), v)
	fmt.Fprintln(c.out, c.lang.StatusLine(c.builder.Status(), c.builder.IsWhiteToMove()))
}
