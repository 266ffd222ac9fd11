package core

import (
	"strings"
	"testing"
	"time"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(24, 32)

	if s.Width() != 24 || s.Height() != 32 {
		t.Errorf("size = %dx%d, expected 24x32", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 24) {
			t.Fatalf("row %d not blank: %q", y, s.Row(y))
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", got)
	}

	// Out of bounds is silent.
	s.Set(-1, 0, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(8, 0, "WON!", ColorGreen)
	if s.Row(0) != "        WO" {
		t.Errorf("Row(0) = %q, text should clip at the right edge", s.Row(0))
	}

	s.DrawTextCentered(1, "Tie!", ColorWhite)
	if s.Row(1) != "   Tie!   " {
		t.Errorf("Row(1) = %q, expected centered text", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorWhite)

	expected := "┌──┐\n│  │\n└──┘"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenCopyFrom(t *testing.T) {
	a := NewScreen(3, 1)
	b := NewScreen(3, 1)
	a.DrawText(0, 0, "abc", ColorBlue)
	b.CopyFrom(a)
	a.Clear()

	if b.Row(0) != "abc" {
		t.Errorf("copy should be independent of source, got %q", b.Row(0))
	}
}

func TestFrameBufferFlush(t *testing.T) {
	fb := NewFrameBuffer(240, 320, 10)

	fb.FillRect(110, 110, 10, 10, ColorGreen)
	if fb.Snapshot().Get(11, 11) != ' ' {
		t.Fatal("drawing must not reach the front buffer before Flush")
	}

	fb.Flush()
	front := fb.Snapshot()
	if got := front.GetCell(11, 11); got.Rune != '█' || got.Color != ColorGreen {
		t.Errorf("cell (11,11) = %+v, expected filled green", got)
	}
	if w, h := fb.Size(); w != 240 || h != 320 {
		t.Errorf("Size() = %dx%d, expected 240x320", w, h)
	}
}

func TestFrameBufferPrimitives(t *testing.T) {
	fb := NewFrameBuffer(240, 320, 10)

	fb.DrawRect(50, 50, 10, 10, ColorRed)
	fb.FillCircle(5, 5, 3, ColorMagenta)
	fb.DrawLine(0, 80, 239, 80, ColorWhite)
	fb.DrawLine(80, 80, 80, 319, ColorWhite)
	fb.DrawText(100, 150, "WON!", ColorGreen)
	fb.Flush()
	s := fb.Snapshot()

	if s.Get(5, 5) != '□' {
		t.Errorf("one-cell rect = %q, expected hollow square", s.Get(5, 5))
	}
	if s.Get(0, 0) != '●' {
		t.Errorf("small circle = %q, expected dot", s.Get(0, 0))
	}
	if s.Get(3, 8) != '─' {
		t.Errorf("horizontal line = %q", s.Get(3, 8))
	}
	if s.Get(8, 20) != '│' {
		t.Errorf("vertical line = %q", s.Get(8, 20))
	}
	if !strings.Contains(s.Row(15), "WON!") {
		t.Errorf("Row(15) = %q, expected text", s.Row(15))
	}

	fb.Clear(ColorBlack)
	fb.Flush()
	if strings.TrimSpace(fb.Snapshot().String()) != "" {
		t.Error("Clear + Flush should blank the front buffer")
	}
}

func TestFrameBufferCircleRing(t *testing.T) {
	fb := NewFrameBuffer(240, 320, 10)
	fb.DrawCircle(40, 40, 20, ColorBlue)
	fb.Flush()
	s := fb.Snapshot()

	if s.Get(4, 4) != ' ' {
		t.Error("ring center should stay empty")
	}
	if s.Get(2, 4) != 'o' || s.Get(5, 4) != 'o' {
		t.Errorf("ring sides missing: row = %q", s.Row(4))
	}
}

func TestTouchLatch(t *testing.T) {
	now := time.Unix(0, 0)
	l := NewTouchLatch()
	l.now = func() time.Time { return now }

	if l.Sample().Touched {
		t.Fatal("new latch should be untouched")
	}

	l.Press(10, 20, 0)
	if got := l.Sample(); !got.Touched || got.Point() != Pt(10, 20) {
		t.Errorf("Sample() = %+v, expected touch at (10,20)", got)
	}
	l.Release()
	if l.Sample().Touched {
		t.Error("Release should clear the touch")
	}

	l.Press(30, 40, 100*time.Millisecond)
	now = now.Add(50 * time.Millisecond)
	if !l.Sample().Touched {
		t.Error("touch should be held before expiry")
	}
	now = now.Add(60 * time.Millisecond)
	if l.Sample().Touched {
		t.Error("touch should expire after hold time")
	}
}
