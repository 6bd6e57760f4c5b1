package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

// collided tests the new head against the walls and the retained body
func (s *Simulation) collided(head core.Point) (events.GameOverCause, bool) {
	if head.X <= 0 || head.X >= s.cfg.Width || head.Y <= 0 || head.Y >= s.cfg.Height {
		return events.CauseWall, true
	}
	for _, p := range s.body[:len(s.body)-1] {
		if p == head {
			return events.CauseSelf, true
		}
	}
	return 0, false
}

// captured applies the axis-aware prey test
// Travel axis: 0 <= head-preyMin <= preyWidth
// Perpendicular axis: same window widened by |snakeIcon-preyIcon| on both sides
func (s *Simulation) captured(head core.Point, dir core.Direction) bool {
	return preyHit(head, s.prey, dir, s.cfg.PreyIconWidth, abs(s.cfg.SnakeIconWidth-s.cfg.PreyIconWidth))
}

func preyHit(head core.Point, prey core.Rect, dir core.Direction, width, tol int) bool {
	dx := head.X - prey.MinX
	dy := head.Y - prey.MinY
	if dir.Horizontal() {
		return within(dx, 0, width) && within(dy, -tol, width+tol)
	}
	return within(dy, 0, width) && within(dx, -tol, width+tol)
}

func within(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

// grow extends the tail one step away from the second-oldest point
func (s *Simulation) grow() {
	tail, next := s.body[0], s.body[1]
	step := s.cfg.Step
	var add core.Point
	if tail.X == next.X {
		if tail.Y > next.Y {
			add = core.Point{X: tail.X, Y: tail.Y + step}
		} else {
			add = core.Point{X: tail.X, Y: tail.Y - step}
		}
	} else {
		if tail.X > next.X {
			add = core.Point{X: tail.X + step, Y: tail.Y}
		} else {
			add = core.Point{X: tail.X - step, Y: tail.Y}
		}
	}
	s.body = append([]core.Point{add}, s.body...)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
