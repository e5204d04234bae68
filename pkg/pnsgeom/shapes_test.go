package pnsgeom

import "testing"

func TestCircleCircleCollide(t *testing.T) {
	tests := []struct {
		name      string
		a, b      CircleShape
		clearance int64
		want      bool
	}{
		{
			name:      "far apart, no collision",
			a:         CircleShape{Center: Vec{X: 0, Y: 0}, Radius: 100},
			b:         CircleShape{Center: Vec{X: 1000, Y: 0}, Radius: 100},
			clearance: 50,
			want:      false,
		},
		{
			name:      "overlapping circles",
			a:         CircleShape{Center: Vec{X: 0, Y: 0}, Radius: 100},
			b:         CircleShape{Center: Vec{X: 150, Y: 0}, Radius: 100},
			clearance: 50,
			want:      true,
		},
		{
			name:      "clearance violated but not overlapping",
			a:         CircleShape{Center: Vec{X: 0, Y: 0}, Radius: 100},
			b:         CircleShape{Center: Vec{X: 220, Y: 0}, Radius: 100},
			clearance: 50,
			want:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Collide(tt.b, tt.clearance); got != tt.want {
				t.Fatalf("Collide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentSegmentCollide(t *testing.T) {
	s1 := SegmentShape{A: Vec{X: 0, Y: 0}, B: Vec{X: 1000, Y: 0}, Width: 100}
	s2 := SegmentShape{A: Vec{X: 500, Y: 200}, B: Vec{X: 500, Y: 1000}, Width: 100}

	if s1.Collide(s2, 50) {
		t.Fatalf("Collide() = true for clear segments, want false")
	}

	s3 := SegmentShape{A: Vec{X: 500, Y: -500}, B: Vec{X: 500, Y: 500}, Width: 100}
	if !s1.Collide(s3, 50) {
		t.Fatalf("Collide() = false for crossing segments, want true")
	}
}

func TestPolygonCollide(t *testing.T) {
	square := PolygonShape{Points: []Vec{
		{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 1000}, {X: 0, Y: 1000},
	}}
	inside := CircleShape{Center: Vec{X: 500, Y: 500}, Radius: 10}
	if !square.Collide(inside, 0) {
		t.Fatalf("Collide() = false for circle inside polygon, want true")
	}

	outside := CircleShape{Center: Vec{X: 2000, Y: 2000}, Radius: 10}
	if square.Collide(outside, 0) {
		t.Fatalf("Collide() = true for distant circle, want false")
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	if !PointInPolygon(Vec{X: 5, Y: 5}, square) {
		t.Fatalf("PointInPolygon() = false for center point, want true")
	}
	if PointInPolygon(Vec{X: 20, Y: 20}, square) {
		t.Fatalf("PointInPolygon() = true for outside point, want false")
	}
}

func TestSegmentsIntersect(t *testing.T) {
	if !SegmentsIntersect(Vec{X: 0, Y: 0}, Vec{X: 10, Y: 10}, Vec{X: 0, Y: 10}, Vec{X: 10, Y: 0}) {
		t.Fatalf("SegmentsIntersect() = false for crossing diagonals, want true")
	}
	if SegmentsIntersect(Vec{X: 0, Y: 0}, Vec{X: 10, Y: 0}, Vec{X: 0, Y: 5}, Vec{X: 10, Y: 5}) {
		t.Fatalf("SegmentsIntersect() = true for parallel segments, want false")
	}
}

func TestShapeBBox(t *testing.T) {
	c := CircleShape{Center: Vec{X: 0, Y: 0}, Radius: 50}
	box := c.BBox()
	if box.Min != (Vec{X: -50, Y: -50}) || box.Max != (Vec{X: 50, Y: 50}) {
		t.Fatalf("BBox() = %+v, want min (-50,-50) max (50,50)", box)
	}

	s := SegmentShape{A: Vec{X: 0, Y: 0}, B: Vec{X: 100, Y: 0}, Width: 20}
	sbox := s.BBox()
	if sbox.Min != (Vec{X: -10, Y: -10}) || sbox.Max != (Vec{X: 110, Y: 10}) {
		t.Fatalf("BBox() = %+v, want min (-10,-10) max (110,10)", sbox)
	}
}
