package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/shidacea/collishi/dbg"
)

// Shapes are plain values. They carry no identity, and nothing in this package
// keeps hold of them between calls.

type Kind int

// The order of the kinds matters: Collide always passes the lower kind first.
const (
	KindPoint Kind = iota
	KindLine
	KindCircle
	KindBox
	KindTriangle
)

var kindNames = [...]string{"point", "line", "circle", "box", "triangle"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

type Shape interface {
	Kind() Kind
}

type Point struct {
	X, Y float32
}

// A line segment from (X, Y) to (X+DX, Y+DY). A zero displacement is allowed
// and behaves like a point.
type Line struct {
	X, Y   float32
	DX, DY float32
}

type Circle struct {
	X, Y float32
	R    float32
}

// Axis aligned box spanning [X, X+W] × [Y, Y+H].
type Box struct {
	X, Y float32
	W, H float32
}

// A triangle given by its base vertex and the two sides leaving it. The other
// vertices are (X+SXA, Y+SYA) and (X+SXB, Y+SYB). The sides must not be
// collinear.
type Triangle struct {
	X, Y     float32
	SXA, SYA float32
	SXB, SYB float32
}

// Build a triangle from three absolute vertices, with the first one as the
// base.
func NewTriangle(ax, ay, bx, by, cx, cy float32) Triangle {
	return Triangle{X: ax, Y: ay, SXA: bx - ax, SYA: by - ay, SXB: cx - ax, SYB: cy - ay}
}

func (Point) Kind() Kind    { return KindPoint }
func (Line) Kind() Kind     { return KindLine }
func (Circle) Kind() Kind   { return KindCircle }
func (Box) Kind() Kind      { return KindBox }
func (Triangle) Kind() Kind { return KindTriangle }

func (l Line) End() Point {
	return Point{l.X + l.DX, l.Y + l.DY}
}

// Corners in counterclockwise order, starting at the origin corner (for
// non-negative extents).
func (b Box) Corners() [4]Point {
	return [4]Point{
		{b.X, b.Y},
		{b.X + b.W, b.Y},
		{b.X + b.W, b.Y + b.H},
		{b.X, b.Y + b.H},
	}
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{
		{t.X, t.Y},
		{t.X + t.SXA, t.Y + t.SYA},
		{t.X + t.SXB, t.Y + t.SYB},
	}
}

func (p Point) String() string {
	return fmt.Sprintf("point(%g, %g)", p.X, p.Y)
}

func (l Line) String() string {
	return fmt.Sprintf("line(%g, %g → %+g, %+g)", l.X, l.Y, l.DX, l.DY)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%g, %g r=%g)", c.X, c.Y, c.R)
}

func (b Box) String() string {
	return fmt.Sprintf("box(%g, %g %g×%g)", b.X, b.Y, b.W, b.H)
}

func (t Triangle) String() string {
	v := t.Vertices()
	return fmt.Sprintf("triangle(%g, %g | %g, %g | %g, %g)", v[0].X, v[0].Y, v[1].X, v[1].Y, v[2].X, v[2].Y)
}

// Readable name for a shape, colored by kind for terminal output.
func DbgName(s Shape) string {
	name := dbg.Name(s)
	if s == nil {
		return name
	}
	switch s.Kind() {
	case KindPoint:
		return aurora.Magenta(name).String()
	case KindLine:
		return aurora.Yellow(name).String()
	case KindCircle:
		return aurora.Cyan(name).String()
	case KindBox:
		return aurora.Blue(name).String()
	case KindTriangle:
		return aurora.Green(name).String()
	}
	return name
}

// Axis aligned bounds of any shape, as min and max corners.
func Bounds(s Shape) (minX, minY, maxX, maxY float32) {
	switch s := normalize(s).(type) {
	case Point:
		return s.X, s.Y, s.X, s.Y
	case Line:
		end := s.End()
		minX, maxX = minMax(s.X, end.X)
		minY, maxY = minMax(s.Y, end.Y)
		return
	case Circle:
		return s.X - s.R, s.Y - s.R, s.X + s.R, s.Y + s.R
	case Box:
		minX, maxX = minMax(s.X, s.X+s.W)
		minY, maxY = minMax(s.Y, s.Y+s.H)
		return
	case Triangle:
		v := s.Vertices()
		minX, maxX = minMaxOf([]float32{v[0].X, v[1].X, v[2].X})
		minY, maxY = minMaxOf([]float32{v[0].Y, v[1].Y, v[2].Y})
		return
	}
	fatalf("cannot compute bounds of %T", s)
	return
}
