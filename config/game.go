package config

import (
	"github.com/lixenwraith/vi-snake/core"
)

// Rect converts to the geometry type
func (r RectConfig) Rect() core.Rect {
	return core.Rect{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
}

// Field returns the playfield bounds
func (g GameConfig) Field() core.Rect {
	return core.Rect{MaxX: g.Width, MaxY: g.Height}
}

// InitialSnake lays out Length points ending at the head, spaced by Step against the heading
// Returned tail first
func (g GameConfig) InitialSnake() []core.Point {
	if g.Length <= 0 {
		return nil
	}
	back := g.Heading.Opposite().Delta(g.Step)
	body := make([]core.Point, g.Length)
	p := core.Point{X: g.HeadX, Y: g.HeadY}
	for i := g.Length - 1; i >= 0; i-- {
		body[i] = p
		p = p.Add(back)
	}
	return body
}
