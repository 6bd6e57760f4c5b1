package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreen(sim, core.Rect{MaxX: 500, MaxY: 300})
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(80, 24)
	s.Redraw()
	t.Cleanup(s.Fini)
	return s, sim
}

func cellAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func screenText(sim tcell.SimulationScreen) string {
	_, _, h := sim.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(sim, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestScreenScoreLabel(t *testing.T) {
	s, sim := newSimScreen(t)
	s.SetScoreText(3)
	sim.Show()

	if !strings.Contains(screenText(sim), "Your Score: 3") {
		t.Errorf("Expected score label on screen, got:\n%s", screenText(sim))
	}
}

func TestScreenSnakeAndPrey(t *testing.T) {
	s, sim := newSimScreen(t)
	s.SetSnakeShape([]core.Point{{X: 485, Y: 55}, {X: 475, Y: 55}, {X: 465, Y: 55}, {X: 455, Y: 55}, {X: 445, Y: 55}})
	s.SetPreyShape(core.Rect{MinX: 130, MinY: 50, MaxX: 140, MaxY: 60})
	sim.Show()

	// (445,55) -> column 1+44, row 1+2
	if r := cellAt(sim, 45, 3); r != runeHead {
		t.Errorf("Expected head rune at (45,3), got %q", r)
	}
	if r := cellAt(sim, 49, 3); r != runeBody {
		t.Errorf("Expected body rune at (49,3), got %q", r)
	}
	if r := cellAt(sim, 14, 3); r != runePrey {
		t.Errorf("Expected prey rune at (14,3), got %q", r)
	}
}

func TestScreenGameOverControl(t *testing.T) {
	s, sim := newSimScreen(t)
	if s.GameOverShown() {
		t.Fatal("Expected no game over control initially")
	}
	s.ShowGameOverControl()
	sim.Show()

	if !s.GameOverShown() {
		t.Error("Expected game over control shown")
	}
	if !strings.Contains(screenText(sim), "Game Over!") {
		t.Errorf("Expected Game Over label, got:\n%s", screenText(sim))
	}
}

func TestScreenBorder(t *testing.T) {
	_, sim := newSimScreen(t)
	sim.Show()

	if r := cellAt(sim, 0, 0); r != '┌' {
		t.Errorf("Expected top-left corner, got %q", r)
	}
	// 500/10 = 50 columns -> right wall at 51; 300/20 = 15 rows -> bottom wall at 16
	if r := cellAt(sim, 51, 16); r != '┘' {
		t.Errorf("Expected bottom-right corner at (51,16), got %q", r)
	}
}

func TestScreenClipsOutsideField(t *testing.T) {
	s, sim := newSimScreen(t)
	s.SetSnakeShape([]core.Point{{X: 15, Y: 55}, {X: 5, Y: 55}, {X: -5, Y: 55}})
	sim.Show()

	if r := cellAt(sim, 0, 3); r != '│' {
		t.Errorf("Expected wall preserved at (0,3), got %q", r)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{5, 10, 0},
		{-5, 10, -1},
		{-10, 10, -1},
		{20, 10, 2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d,%d): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}
