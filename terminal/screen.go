// Package terminal presents the game on a tcell screen and hosts the cooperative UI loop
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Styles used by the presentation
var (
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSnake    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead     = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	stylePrey     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleScore    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

const (
	runeBody  = '█'
	runeHead  = '▓'
	runePrey  = '■'
	hintLabel = "[Enter] quit"
)

// Screen is the tcell presentation sink
// It keeps a model of the last applied state and redraws it on every update
// Setters run on the UI goroutine; Fini may be called from any goroutine
type Screen struct {
	tcell tcell.Screen
	field core.Rect

	// Canvas units per terminal cell
	cellW, cellH int

	snake    []core.Point
	prey     core.Rect
	hasPrey  bool
	score    int
	gameOver bool

	finiOnce sync.Once
}

// NewScreen wraps s; field is the playfield in canvas units
// s must be initialized before the first draw
func NewScreen(s tcell.Screen, field core.Rect) *Screen {
	return &Screen{
		tcell: s,
		field: field,
		cellW: constants.CellWidth,
		cellH: constants.CellHeight,
	}
}

// Init initializes the underlying screen and clears it
func (s *Screen) Init() error {
	if err := s.tcell.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.tcell.HideCursor()
	s.tcell.SetStyle(tcell.StyleDefault)
	s.Redraw()
	return nil
}

// Fini restores the terminal; safe to call repeatedly and from the crash handler
func (s *Screen) Fini() {
	s.finiOnce.Do(s.tcell.Fini)
}

// SetSnakeShape implements render.Sink
func (s *Screen) SetSnakeShape(points []core.Point) {
	s.snake = points
	s.Redraw()
}

// SetPreyShape implements render.Sink
func (s *Screen) SetPreyShape(rect core.Rect) {
	s.prey = rect
	s.hasPrey = true
	s.Redraw()
}

// SetScoreText implements render.Sink
func (s *Screen) SetScoreText(score int) {
	s.score = score
	s.Redraw()
}

// ShowGameOverControl implements render.Sink
func (s *Screen) ShowGameOverControl() {
	s.gameOver = true
	s.Redraw()
}

// GameOverShown reports whether the game-over control is visible
func (s *Screen) GameOverShown() bool {
	return s.gameOver
}

// Redraw paints the whole model into the back buffer; the host calls Show
func (s *Screen) Redraw() {
	s.tcell.Clear()
	s.drawBorder()
	if s.hasPrey {
		s.drawPrey()
	}
	s.drawSnake()
	s.drawScore()
	if s.gameOver {
		s.drawGameOver()
	}
}

// toCell maps a canvas point to a screen cell inside the border
func (s *Screen) toCell(p core.Point) (int, int) {
	return 1 + floorDiv(p.X-s.field.MinX, s.cellW), 1 + floorDiv(p.Y-s.field.MinY, s.cellH)
}

// fieldCells returns the playfield size in cells
func (s *Screen) fieldCells() (int, int) {
	return (s.field.Width() + s.cellW - 1) / s.cellW, (s.field.Height() + s.cellH - 1) / s.cellH
}

// put draws inside the border only; the wall cells stay intact
func (s *Screen) put(x, y int, r rune, style tcell.Style) {
	w, h := s.fieldCells()
	if x < 1 || y < 1 || x > w || y > h {
		return
	}
	s.tcell.SetContent(x, y, r, nil, style)
}

func (s *Screen) drawBorder() {
	w, h := s.fieldCells()
	right, bottom := w+1, h+1
	for x := 1; x < right; x++ {
		s.tcell.SetContent(x, 0, '─', nil, styleBorder)
		s.tcell.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		s.tcell.SetContent(0, y, '│', nil, styleBorder)
		s.tcell.SetContent(right, y, '│', nil, styleBorder)
	}
	s.tcell.SetContent(0, 0, '┌', nil, styleBorder)
	s.tcell.SetContent(right, 0, '┐', nil, styleBorder)
	s.tcell.SetContent(0, bottom, '└', nil, styleBorder)
	s.tcell.SetContent(right, bottom, '┘', nil, styleBorder)
}

// drawSnake joins consecutive points with line cells; the head is drawn last
func (s *Screen) drawSnake() {
	if len(s.snake) == 0 {
		return
	}
	for i := 1; i < len(s.snake); i++ {
		x0, y0 := s.toCell(s.snake[i-1])
		x1, y1 := s.toCell(s.snake[i])
		s.line(x0, y0, x1, y1)
	}
	if len(s.snake) == 1 {
		x, y := s.toCell(s.snake[0])
		s.put(x, y, runeBody, styleSnake)
	}
	hx, hy := s.toCell(s.snake[len(s.snake)-1])
	s.put(hx, hy, runeHead, styleHead)
}

// line draws an axis-aligned segment; diagonal input draws an L through the corner
func (s *Screen) line(x0, y0, x1, y1 int) {
	for x := min(x0, x1); x <= max(x0, x1); x++ {
		s.put(x, y0, runeBody, styleSnake)
	}
	for y := min(y0, y1); y <= max(y0, y1); y++ {
		s.put(x1, y, runeBody, styleSnake)
	}
}

func (s *Screen) drawPrey() {
	x0, y0 := s.toCell(core.Point{X: s.prey.MinX, Y: s.prey.MinY})
	x1, y1 := s.toCell(core.Point{X: s.prey.MaxX - 1, Y: s.prey.MaxY - 1})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.put(x, y, runePrey, stylePrey)
		}
	}
}

func (s *Screen) drawScore() {
	label := fmt.Sprintf(constants.ScoreLabelFormat, s.score)
	cx, cy := s.toCell(core.Point{X: constants.ScoreLabelX, Y: constants.ScoreLabelY})
	s.text(cx-len(label)/2, cy, label, styleScore)
}

// drawGameOver centres the control with its key hint below
func (s *Screen) drawGameOver() {
	w, h := s.fieldCells()
	cx, cy := 1+w/2, 1+h/2
	label := " " + constants.GameOverLabel + " "
	s.text(cx-len(label)/2, cy, label, styleGameOver)
	s.text(cx-len(hintLabel)/2, cy+1, hintLabel, styleBorder)
}

func (s *Screen) text(x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.put(x+i, y, r, style)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
