// Exact collision tests between simple 2D shapes.
//
// This package answers a single question: do two shapes overlap? Shapes are
// points, line segments, circles, axis aligned boxes and triangles, given as
// float32 coordinates. Every test is a pure function, so it is safe to call
// from any number of goroutines.
//
// Comparisons are exact. There is no epsilon anywhere, and touching shapes
// count as colliding. If you need tolerance, pad your shapes before testing.
//
// Divisions are avoided throughout. Where a test needs to know whether a line
// parameter lies between 0 and 1, it compares the signs and magnitudes of the
// nominator and denominator instead, which keeps full precision and has no
// special case for axis aligned segments.
package collishi

import (
	"github.com/shidacea/collishi/advanced"
	"github.com/shidacea/collishi/internal"
)

type Kind = advanced.Kind
type Shape = advanced.Shape
type Point = advanced.Point
type Line = advanced.Line
type Circle = advanced.Circle
type Box = advanced.Box
type Triangle = advanced.Triangle

const (
	KindPoint    = advanced.KindPoint
	KindLine     = advanced.KindLine
	KindCircle   = advanced.KindCircle
	KindBox      = advanced.KindBox
	KindTriangle = advanced.KindTriangle
)

// Build a triangle from three absolute vertices.
func NewTriangle(ax, ay, bx, by, cx, cy float32) Triangle {
	return internal.NewTriangle(ax, ay, bx, by, cx, cy)
}

// Test any two shapes against each other. The order of the arguments does not
// matter.
//
// Pointers to shapes are accepted too. The error is only ever set if one of
// the shapes is nil or not one of the types of this package.
func Collide(a, b Shape) (result bool, err error) {
	defer func() {
		recoveredErr := advanced.HandleCollidePanicRecover(recover())
		if recoveredErr != nil {
			result = false
			err = recoveredErr
		}
	}()
	return advanced.MustCollide(a, b), nil
}

// The flat tests below take the shapes as raw coordinates, in the order the
// function name gives them:
//
//	point:    x, y
//	line:     x, y, dx, dy (from (x, y) to (x+dx, y+dy))
//	circle:   x, y, r
//	box:      x, y, w, h (spanning [x, x+w] × [y, y+h])
//	triangle: x, y, sxa, sya, sxb, syb (vertices (x, y), (x+sxa, y+sya) and (x+sxb, y+syb))

func PointPoint(x1, y1, x2, y2 float32) bool {
	return internal.CollisionPointPoint(x1, y1, x2, y2)
}

func PointLine(x1, y1, x2, y2, dx2, dy2 float32) bool {
	return internal.CollisionPointLine(x1, y1, x2, y2, dx2, dy2)
}

func PointCircle(x1, y1, x2, y2, r2 float32) bool {
	return internal.CollisionPointCircle(x1, y1, x2, y2, r2)
}

func PointBox(x1, y1, x2, y2, w2, h2 float32) bool {
	return internal.CollisionPointBox(x1, y1, x2, y2, w2, h2)
}

func PointTriangle(x1, y1, x2, y2, sxa2, sya2, sxb2, syb2 float32) bool {
	return internal.CollisionPointTriangle(x1, y1, x2, y2, sxa2, sya2, sxb2, syb2)
}

// Collinear segments are only detected if the start point of one of them lies
// on the other.
func LineLine(x1, y1, dx1, dy1, x2, y2, dx2, dy2 float32) bool {
	return internal.CollisionLineLine(x1, y1, dx1, dy1, x2, y2, dx2, dy2)
}

func LineCircle(x1, y1, dx1, dy1, x2, y2, r2 float32) bool {
	return internal.CollisionLineCircle(x1, y1, dx1, dy1, x2, y2, r2)
}

func LineBox(x1, y1, dx1, dy1, x2, y2, w2, h2 float32) bool {
	return internal.CollisionLineBox(x1, y1, dx1, dy1, x2, y2, w2, h2)
}

func LineTriangle(x1, y1, dx1, dy1, x2, y2, sxa2, sya2, sxb2, syb2 float32) bool {
	return internal.CollisionLineTriangle(x1, y1, dx1, dy1, x2, y2, sxa2, sya2, sxb2, syb2)
}

func CircleCircle(x1, y1, r1, x2, y2, r2 float32) bool {
	return internal.CollisionCircleCircle(x1, y1, r1, x2, y2, r2)
}

func CircleBox(x1, y1, r1, x2, y2, w2, h2 float32) bool {
	return internal.CollisionCircleBox(x1, y1, r1, x2, y2, w2, h2)
}

func CircleTriangle(x1, y1, r1, x2, y2, sxa2, sya2, sxb2, syb2 float32) bool {
	return internal.CollisionCircleTriangle(x1, y1, r1, x2, y2, sxa2, sya2, sxb2, syb2)
}

func BoxBox(x1, y1, w1, h1, x2, y2, w2, h2 float32) bool {
	return internal.CollisionBoxBox(x1, y1, w1, h1, x2, y2, w2, h2)
}

func BoxTriangle(x1, y1, w1, h1, x2, y2, sxa2, sya2, sxb2, syb2 float32) bool {
	return internal.CollisionBoxTriangle(x1, y1, w1, h1, x2, y2, sxa2, sya2, sxb2, syb2)
}
