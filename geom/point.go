package geom

// Point is a derived rendering coordinate. Points are computed from vertex
// identities; they are never an identity themselves and must not be compared
// to decide whether two vertices are the same.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both components multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Mean returns the arithmetic mean of pts, or the zero Point when pts is
// empty.
func Mean(pts ...Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}
