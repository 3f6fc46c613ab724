package canvas

import "math"

// clipPolygon clips a polygon to the rectangle [minX,maxX]x[minY,maxY]
// (Sutherland-Hodgman). The result may be empty.
func clipPolygon(pts []Point, minX, minY, maxX, maxY float64) []Point {
	edges := []struct {
		inside    func(Point) bool
		intersect func(a, b Point) Point
	}{
		{
			func(p Point) bool { return p.X >= minX },
			func(a, b Point) Point { return lerpAtX(a, b, minX) },
		},
		{
			func(p Point) bool { return p.X <= maxX },
			func(a, b Point) Point { return lerpAtX(a, b, maxX) },
		},
		{
			func(p Point) bool { return p.Y >= minY },
			func(a, b Point) Point { return lerpAtY(a, b, minY) },
		},
		{
			func(p Point) bool { return p.Y <= maxY },
			func(a, b Point) Point { return lerpAtY(a, b, maxY) },
		},
	}

	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.intersect(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.intersect(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func lerpAtX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{X: x, Y: a.Y + (b.Y-a.Y)*t}
}

func lerpAtY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + (b.X-a.X)*t, Y: y}
}

// circlePoints approximates a circle with a regular polygon.
// Segment count grows with the on-device radius.
func circlePoints(cx, cy, r, deviceScale float64) []Point {
	n := int(math.Ceil(r * deviceScale * 0.75))
	n = max(16, min(n, 128))
	pts := make([]Point, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = Point{X: cx + r*cos, Y: cy + r*sin}
	}
	return pts
}

// insidePolygon is the even-odd crossing test.
func insidePolygon(pts []Point, x, y float64) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
