package gselect

import (
	"schack/src/logx"
	"schack/ui/gui/glayout"

	. "gopkg.in/check.v1"
)

type PointerSuite struct {
	rules  *fakeRules
	sel    *Selector
	layout glayout.Layout
}

var _ = Suite(&PointerSuite{})

func (s *PointerSuite) SetUpTest(c *C) {
	s.rules = &fakeRules{
		board:      startBoard,
		whiteMoves: true,
		moves:      map[string][]string{"E2": {"E3", "E4"}},
	}
	s.sel = NewSelector(s.rules, ModeCancel, logx.NewNopLogx())
	s.layout = glayout.Layout{Tile: 80, Margin: 1}
}

// centre of sq's tile
func (s *PointerSuite) at(name string) (int, int) {
	x, y := s.layout.SquareOrigin(sq(name))
	return x + 40, y + 40
}

func (s *PointerSuite) TestReleaseSelects(c *C) {
	x, y := s.at("E2")
	c.Assert(s.sel.HandlePointer(s.layout, Pointer{X: x, Y: y, Released: true}), IsNil)
	got, ok := s.sel.Selected()
	c.Assert(ok, Equals, true)
	c.Assert(got, Equals, sq("E2"))
}

func (s *PointerSuite) TestWithoutReleaseNothingHappens(c *C) {
	x, y := s.at("E2")
	c.Assert(s.sel.HandlePointer(s.layout, Pointer{X: x, Y: y}), IsNil)
	_, ok := s.sel.Selected()
	c.Assert(ok, Equals, false)
}

func (s *PointerSuite) TestTakenClickSkipsBoard(c *C) {
	x, y := s.at("E2")
	c.Assert(s.sel.HandlePointer(s.layout, Pointer{X: x, Y: y, Released: true}), IsNil)
	ex, ey := s.at("E4")
	c.Assert(s.sel.HandlePointer(s.layout, Pointer{X: ex, Y: ey, Released: true, Taken: true}), IsNil)
	c.Assert(s.rules.played, HasLen, 0)
	_, ok := s.sel.Selected()
	c.Assert(ok, Equals, true)
}

func (s *PointerSuite) TestMarginReleaseIsNoop(c *C) {
	x, y := s.at("E2")
	c.Assert(s.sel.HandlePointer(s.layout, Pointer{X: x, Y: y, Released: true}), IsNil)
	c.Assert(s.sel.HandlePointer(s.layout, Pointer{X: 10, Y: 10, Released: true}), IsNil)
	_, ok := s.sel.Selected()
	c.Assert(ok, Equals, true)
	c.Assert(s.rules.played, HasLen, 0)
}

func (s *PointerSuite) TestTwoReleasesMove(c *C) {
	x, y := s.at("E2")
	c.Assert(s.sel.HandlePointer(s.layout, Pointer{X: x, Y: y, Released: true}), IsNil)
	x, y = s.at("E4")
	c.Assert(s.sel.HandlePointer(s.layout, Pointer{X: x, Y: y, Released: true}), IsNil)
	c.Assert(s.rules.played, DeepEquals, [][2]string{{"E2", "E4"}})
}

func (s *PointerSuite) TestFlippedLayout(c *C) {
	s.layout.Flipped = true
	x, y := s.at("E2")
	c.Assert(y < 3*80, Equals, true)
	c.Assert(s.sel.HandlePointer(s.layout, Pointer{X: x, Y: y, Released: true}), IsNil)
	got, _ := s.sel.Selected()
	c.Assert(got, Equals, sq("E2"))
}
