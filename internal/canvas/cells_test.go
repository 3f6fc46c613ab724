package canvas

import (
	"testing"

	"github.com/vovakirdan/cactusflap/internal/core"
)

func TestCellsHalfBlocks(t *testing.T) {
	screen := core.NewScreen(10, 5)
	c := NewCells(screen, 100, 100) // 10 pixels per column, 10 units per pixel row

	// Top half of the canvas red, bottom half blue
	c.FillRect(0, 0, 100, 50, red)
	c.FillRect(0, 50, 100, 50, blue)
	c.Present()

	top := screen.GetCell(3, 0)
	if top.Rune != halfBlock {
		t.Errorf("cell rune = %q, expected half block", top.Rune)
	}
	if top.Fg != core.FromNRGBA(red) || top.Bg != core.FromNRGBA(red) {
		t.Errorf("top cell = %+v, expected red/red", top)
	}

	// Row 2 holds pixel rows 4 (red, center 45) and 5 (blue, center 55)
	mid := screen.GetCell(3, 2)
	if mid.Fg != core.FromNRGBA(red) || mid.Bg != core.FromNRGBA(blue) {
		t.Errorf("middle cell = %+v, expected red over blue", mid)
	}
}

func TestCellsCircleAndPolygon(t *testing.T) {
	screen := core.NewScreen(20, 10)
	c := NewCells(screen, 20, 20) // one unit per pixel

	c.FillCircle(10, 10, 4, red)
	if got := c.Pixel(10, 10); got != red {
		t.Errorf("circle center pixel = %v, expected %v", got, red)
	}
	if got := c.Pixel(3, 3); got != background {
		t.Errorf("pixel outside circle = %v, expected background", got)
	}

	c.FillPolygon([]Point{{0, 0}, {6, 0}, {0, 6}}, blue)
	if got := c.Pixel(1, 1); got != blue {
		t.Errorf("pixel inside triangle = %v, expected %v", got, blue)
	}
	if got := c.Pixel(5, 5); got == blue {
		t.Error("pixel beyond the hypotenuse should not be filled")
	}
}

func TestCellsText(t *testing.T) {
	screen := core.NewScreen(40, 12)
	c := NewCells(screen, 400, 600)

	c.FillRect(0, 0, 400, 600, blue)
	c.FillText("12", 200, 100, 48, AlignCenter, white)
	c.Present()

	// Row: (100 - 48*0.35) / 50 = 1.66 -> 1; columns 19 and 20
	if screen.Get(19, 1) != '1' || screen.Get(20, 1) != '2' {
		t.Errorf("text not at expected cells, row 1 = %q", screen.Row(1))
	}
	if got := screen.GetCell(19, 1); got.Bg != core.FromNRGBA(blue) || got.Fg != core.FromNRGBA(white) {
		t.Errorf("text cell = %+v, expected white on blue", got)
	}
}

func TestCellsClearDropsText(t *testing.T) {
	screen := core.NewScreen(20, 4)
	c := NewCells(screen, 20, 8)

	c.FillText("hi", 0, 4, 2, AlignLeft, white)
	c.Clear()
	c.Present()

	for x := 0; x < 20; x++ {
		if screen.Get(x, 0) != halfBlock || screen.Get(x, 1) != halfBlock {
			t.Fatalf("text should be gone after Clear, rows = %q / %q", screen.Row(0), screen.Row(1))
		}
	}
}

func TestCellsFollowsResize(t *testing.T) {
	screen := core.NewScreen(10, 5)
	c := NewCells(screen, 100, 100)

	screen.Resize(20, 10)
	c.Clear()
	c.FillRect(0, 0, 100, 100, red)
	c.Present()

	if got := screen.GetCell(19, 9); got.Fg != core.FromNRGBA(red) {
		t.Errorf("resized corner = %+v, expected red", got)
	}
}
