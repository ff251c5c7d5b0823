package geometry

import "math"

// Point is an integer 2D vector: a physical trap-site coordinate or an
// intermediate shuttling waypoint.
type Point struct {
	X, Y int64
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point) DistanceTo(o Point) float64 {
	return p.Sub(o).Length()
}
