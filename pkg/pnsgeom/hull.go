package pnsgeom

import "math"

// circleSegments is the number of points used to approximate a circular
// arc when building an offset hull, grounded on the fixed-resolution
// circle generation used elsewhere in the corpus for round-pad outlines.
const circleSegments = 16

// Hull returns a convex polygon approximating shape's outline expanded by
// clearance on every side. NearestObstacle uses it as an obstacle's
// keep-out outline when looking for where a line crosses into it; it is
// never itself stored as an item's shape.
func Hull(shape Shape, clearance int64) []Vec {
	switch s := shape.(type) {
	case CircleShape:
		return circlePoints(s.Center, s.Radius+clearance, circleSegments)
	case SegmentShape:
		return segmentHull(s.A, s.B, s.Width/2+clearance)
	case PolygonShape:
		return polygonHull(s.Points, clearance)
	default:
		r := shape.BBox().Inflate(clearance)
		return []Vec{
			{X: r.Min.X, Y: r.Min.Y},
			{X: r.Max.X, Y: r.Min.Y},
			{X: r.Max.X, Y: r.Max.Y},
			{X: r.Min.X, Y: r.Max.Y},
		}
	}
}

// circlePoints generates n evenly-spaced points around a circle of the
// given center and radius.
func circlePoints(center Vec, radius int64, n int) []Vec {
	points := make([]Vec, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2.0 * math.Pi / float64(n)
		points[i] = Vec{
			X: center.X + int64(float64(radius)*math.Cos(angle)),
			Y: center.Y + int64(float64(radius)*math.Sin(angle)),
		}
	}
	return points
}

// segmentHull returns a stadium (capsule) outline: two semicircular caps
// joined by two straight edges parallel to the segment's centerline.
func segmentHull(a, b Vec, radius int64) []Vec {
	dir := b.Sub(a)
	length := dir.EuclideanNorm()
	if length == 0 {
		return circlePoints(a, radius, circleSegments)
	}
	nx := -float64(dir.Y) / float64(length)
	ny := float64(dir.X) / float64(length)
	baseAngle := math.Atan2(ny, nx)

	points := make([]Vec, 0, circleSegments+2)
	half := circleSegments / 2
	for i := 0; i <= half; i++ {
		angle := baseAngle + float64(i)*math.Pi/float64(half)
		points = append(points, Vec{
			X: a.X + int64(float64(radius)*math.Cos(angle)),
			Y: a.Y + int64(float64(radius)*math.Sin(angle)),
		})
	}
	for i := 0; i <= half; i++ {
		angle := baseAngle + math.Pi + float64(i)*math.Pi/float64(half)
		points = append(points, Vec{
			X: b.X + int64(float64(radius)*math.Cos(angle)),
			Y: b.Y + int64(float64(radius)*math.Sin(angle)),
		})
	}
	return points
}

// polygonHull returns points expanded outward from the polygon's centroid
// by clearance along each vertex's radial direction. This is an
// approximation (not a true Minkowski sum) adequate for hit-testing and
// rendering an inflated keep-out outline.
func polygonHull(points []Vec, clearance int64) []Vec {
	if clearance == 0 || len(points) == 0 {
		return append([]Vec(nil), points...)
	}
	c := Centroid(points)
	out := make([]Vec, len(points))
	for i, p := range points {
		dir := p.Sub(c)
		norm := dir.EuclideanNorm()
		if norm == 0 {
			out[i] = p
			continue
		}
		scale := float64(norm+clearance) / float64(norm)
		out[i] = Vec{
			X: c.X + int64(float64(dir.X)*scale),
			Y: c.Y + int64(float64(dir.Y)*scale),
		}
	}
	return out
}

// Centroid computes the average position of a set of points.
func Centroid(points []Vec) Vec {
	if len(points) == 0 {
		return Vec{}
	}
	var sumX, sumY int64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := int64(len(points))
	return Vec{X: sumX / n, Y: sumY / n}
}
