package config

import (
	"errors"
	"fmt"
)

// Validate rejects settings the simulation or the demo cannot run with
// All problems are reported together
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	g := c.Game
	if g.Width <= 0 || g.Height <= 0 {
		add("playfield %dx%d must be positive", g.Width, g.Height)
	}
	if g.Step <= 0 {
		add("step %d must be positive", g.Step)
	}
	if g.SnakeIconWidth <= 0 || g.PreyIconWidth <= 0 {
		add("icon widths must be positive")
	}
	if g.Threshold < 0 || g.PreyBuffer < 0 {
		add("threshold and prey buffer must not be negative")
	}
	if g.Tick <= 0 {
		add("tick %v must be positive", g.Tick)
	}
	if !g.Heading.Valid() {
		add("heading must be one of up, down, left, right")
	}
	if g.Length < 2 {
		add("initial length %d must be at least 2", g.Length)
	} else if g.Width > 0 && g.Height > 0 && g.Heading.Valid() {
		for _, p := range g.InitialSnake() {
			if p.X <= 0 || p.X >= g.Width || p.Y <= 0 || p.Y >= g.Height {
				add("initial snake point %v outside playfield", p)
				break
			}
		}
	}
	if r := g.ScoreRegion; r.MinX > r.MaxX || r.MinY > r.MaxY {
		add("score region min exceeds max")
	}

	if c.UI.DrainInterval <= 0 {
		add("drain interval %v must be positive", c.UI.DrainInterval)
	}
	if c.UI.JoinTimeout <= 0 {
		add("join timeout %v must be positive", c.UI.JoinTimeout)
	}

	p := c.Pipeline
	if p.Producers <= 0 || p.Consumers <= 0 {
		add("pipeline needs at least one producer and one consumer")
	}
	if p.Items < 0 {
		add("items per producer %d must not be negative", p.Items)
	}
	if p.Min > p.Max {
		add("item range %d..%d is empty", p.Min, p.Max)
	}
	if p.MaxJitter < 0 {
		add("max jitter %v must not be negative", p.MaxJitter)
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		add("master volume %.2f outside 0..1", c.Audio.MasterVolume)
	}

	return errors.Join(errs...)
}
