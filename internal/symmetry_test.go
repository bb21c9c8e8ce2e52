package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Shapes on a small integer grid. All coordinates are exactly representable,
// and so are all intermediate results, which makes equal answers for
// equivalent descriptions of the same shapes a fair expectation.

func gridSegments() []Line {
	var lines []Line
	for _, x := range []float32{-3, -1, 1, 3} {
		for _, y := range []float32{-3, -1, 1, 3} {
			for _, dx := range []float32{-4, -2, 0, 2, 4} {
				for _, dy := range []float32{-4, -2, 0, 2, 4} {
					lines = append(lines, Line{x, y, dx, dy})
				}
			}
		}
	}
	return lines
}

func gridCircles() []Circle {
	var circles []Circle
	for x := float32(-3); x <= 3; x++ {
		for y := float32(-3); y <= 3; y++ {
			for _, r := range []float32{0, 1, 2} {
				circles = append(circles, Circle{x, y, r})
			}
		}
	}
	return circles
}

var gridBoxes = []Box{
	{-2, -1, 3, 2},
	{0, 0, 2, 2},
	{-1, 1, 0, 3},
}

var gridTriangles = []Triangle{
	{0, 0, 3, 0, 0, 3},
	{1, -1, -2, 3, 2, 1},
	{-2, 2, 4, -1, 1, -3},
}

func reversed(l Line) Line {
	end := l.End()
	return Line{end.X, end.Y, -l.DX, -l.DY}
}

// The same triangle, described from each of its vertices and with both
// windings.
func equivalentTriangles(t Triangle) []Triangle {
	v := t.Vertices()
	return []Triangle{
		NewTriangle(v[1].X, v[1].Y, v[2].X, v[2].Y, v[0].X, v[0].Y),
		NewTriangle(v[2].X, v[2].Y, v[0].X, v[0].Y, v[1].X, v[1].Y),
		{t.X, t.Y, t.SXB, t.SYB, t.SXA, t.SYA},
	}
}

func TestSymmetry_PointAsDegenerateShape(t *testing.T) {
	for x := float32(-3); x <= 3; x++ {
		for y := float32(-3); y <= 3; y++ {
			for _, c := range gridCircles() {
				assert.Equal(t,
					CollisionPointCircle(x, y, c.X, c.Y, c.R),
					CollisionCircleCircle(x, y, 0, c.X, c.Y, c.R),
					"point (%v, %v) against %v", x, y, c)
			}
			for _, b := range gridBoxes {
				assert.Equal(t,
					CollisionPointBox(x, y, b.X, b.Y, b.W, b.H),
					CollisionBoxBox(x, y, 0, 0, b.X, b.Y, b.W, b.H),
					"point (%v, %v) against %v", x, y, b)
			}
		}
	}
}

func TestSymmetry_LineLineOrder(t *testing.T) {
	segments := gridSegments()
	for _, a := range segments {
		for _, b := range segments {
			if CollisionLineLine(a.X, a.Y, a.DX, a.DY, b.X, b.Y, b.DX, b.DY) != CollisionLineLine(b.X, b.Y, b.DX, b.DY, a.X, a.Y, a.DX, a.DY) {
				t.Errorf("%v and %v disagree depending on order", a, b)
			}
		}
	}
}

func TestSymmetry_LineDirection(t *testing.T) {
	for _, l := range gridSegments() {
		r := reversed(l)
		for _, c := range gridCircles() {
			assert.Equal(t,
				CollisionLineCircle(l.X, l.Y, l.DX, l.DY, c.X, c.Y, c.R),
				CollisionLineCircle(r.X, r.Y, r.DX, r.DY, c.X, c.Y, c.R),
				"%v against %v", l, c)
		}
		for _, b := range gridBoxes {
			assert.Equal(t,
				CollisionLineBox(l.X, l.Y, l.DX, l.DY, b.X, b.Y, b.W, b.H),
				CollisionLineBox(r.X, r.Y, r.DX, r.DY, b.X, b.Y, b.W, b.H),
				"%v against %v", l, b)
		}
	}
}

func TestSymmetry_TriangleDescription(t *testing.T) {
	for i, tri := range gridTriangles {
		t.Run(fmt.Sprintf("triangle %d", i), func(t *testing.T) {
			for _, other := range equivalentTriangles(tri) {
				for _, l := range gridSegments() {
					r := reversed(l)
					assert.Equal(t,
						CollisionLineTriangle(l.X, l.Y, l.DX, l.DY, tri.X, tri.Y, tri.SXA, tri.SYA, tri.SXB, tri.SYB),
						CollisionLineTriangle(r.X, r.Y, r.DX, r.DY, other.X, other.Y, other.SXA, other.SYA, other.SXB, other.SYB),
						"%v against %v", l, other)
				}

				for _, c := range gridCircles() {
					assert.Equal(t,
						CollisionCircleTriangle(c.X, c.Y, c.R, tri.X, tri.Y, tri.SXA, tri.SYA, tri.SXB, tri.SYB),
						CollisionCircleTriangle(c.X, c.Y, c.R, other.X, other.Y, other.SXA, other.SYA, other.SXB, other.SYB),
						"%v against %v", c, other)
				}

				for x := float32(-3); x <= 3; x++ {
					for y := float32(-3); y <= 3; y++ {
						assert.Equal(t,
							CollisionPointTriangle(x, y, tri.X, tri.Y, tri.SXA, tri.SYA, tri.SXB, tri.SYB),
							CollisionPointTriangle(x, y, other.X, other.Y, other.SXA, other.SYA, other.SXB, other.SYB),
							"point (%v, %v) against %v", x, y, other)
						assert.Equal(t,
							CollisionBoxTriangle(x, y, 2, 1, tri.X, tri.Y, tri.SXA, tri.SYA, tri.SXB, tri.SYB),
							CollisionBoxTriangle(x, y, 2, 1, other.X, other.Y, other.SXA, other.SYA, other.SXB, other.SYB),
							"box at (%v, %v) against %v", x, y, other)
					}
				}
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, CollisionCircleBox(1, -3, 1, -5, -2, 10, 4))
		assert.False(t, CollisionCircleBox(1, -3, 0.9, -5, -2, 10, 4))
		assert.True(t, CollisionLineLine(0, 0, 1, 1, 0, 1, 1, -1))
	}
}
