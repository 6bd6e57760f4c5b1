package engine

import (
	"github.com/lixenwraith/vi-snake/core"
)

// placePrey picks a lattice cell uniformly among those that satisfy:
//   - centre at least Threshold from every edge
//   - prey square disjoint from the score region
//   - prey square disjoint from the snake box expanded by SnakeIconWidth/2 + PreyBuffer
func (s *Simulation) placePrey() (core.Rect, error) {
	cells := s.preyCells()
	if len(cells) == 0 {
		return core.Rect{}, ErrNoPreyCell
	}
	c := cells[s.rng.Intn(len(cells))]
	return core.RectAround(c, s.cfg.PreyIconWidth), nil
}

// preyCells enumerates every valid prey centre for the current body
func (s *Simulation) preyCells() []core.Point {
	cfg := s.cfg
	score := cfg.ScoreRegion.Rect()
	snake := core.BoundingBox(s.body).Expand(cfg.SnakeIconWidth/2 + cfg.PreyBuffer)

	minX := alignUp(cfg.Threshold, s.originX, cfg.Step)
	minY := alignUp(cfg.Threshold, s.originY, cfg.Step)
	maxX := cfg.Width - cfg.Threshold
	maxY := cfg.Height - cfg.Threshold

	var cells []core.Point
	for y := minY; y <= maxY; y += cfg.Step {
		for x := minX; x <= maxX; x += cfg.Step {
			c := core.Point{X: x, Y: y}
			r := core.RectAround(c, cfg.PreyIconWidth)
			if r.Intersects(score) || r.Intersects(snake) {
				continue
			}
			cells = append(cells, c)
		}
	}
	return cells
}

// alignUp returns the smallest v >= lo with v ≡ origin (mod step)
func alignUp(lo, origin, step int) int {
	return lo + mod(origin-lo, step)
}
