package core

// Point is a playfield coordinate in canvas units (x grows right, y grows down)
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Rect is an axis-aligned rectangle with inclusive bounds
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// RectAround returns the square of side size centred on c
func RectAround(c Point, size int) Rect {
	half := size / 2
	return Rect{
		MinX: c.X - half,
		MinY: c.Y - half,
		MaxX: c.X - half + size,
		MaxY: c.Y - half + size,
	}
}

// Width returns the horizontal extent
func (r Rect) Width() int { return r.MaxX - r.MinX }

// Height returns the vertical extent
func (r Rect) Height() int { return r.MaxY - r.MinY }

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Intersects reports whether r and o share at least one point
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Expand grows r by n on every side
func (r Rect) Expand(n int) Rect {
	return Rect{MinX: r.MinX - n, MinY: r.MinY - n, MaxX: r.MaxX + n, MaxY: r.MaxY + n}
}

// Center returns the integer midpoint of r
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// BoundingBox returns the smallest Rect containing all points
// Returns the zero Rect for an empty slice
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r
}
