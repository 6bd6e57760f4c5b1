package core

import (
	"fmt"
	"strings"
)

// Direction is a snake heading; zero value is invalid
type Direction uint32

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirNone:  "None",
	DirUp:    "Up",
	DirDown:  "Down",
	DirLeft:  "Left",
	DirRight: "Right",
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the 180° reversal of d, DirNone for invalid input
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Horizontal reports whether d travels along the x axis
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Delta returns the offset of one step of the given size
// Up decreases y (canvas coordinates)
func (d Direction) Delta(step int) Point {
	switch d {
	case DirUp:
		return Point{Y: -step}
	case DirDown:
		return Point{Y: step}
	case DirLeft:
		return Point{X: -step}
	case DirRight:
		return Point{X: step}
	}
	return Point{}
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint32(d))
}

// ParseDirection maps a case-insensitive heading name to a Direction
func ParseDirection(s string) (Direction, error) {
	for d := DirUp; d <= DirRight; d++ {
		if strings.EqualFold(s, directionNames[d]) {
			return d, nil
		}
	}
	return DirNone, fmt.Errorf("unknown direction %q", s)
}

// UnmarshalText allows directions in YAML and environment config
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText renders the heading name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
