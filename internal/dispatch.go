package internal

// Double dispatch over the closed set of shapes. Every unordered pair of kinds
// has exactly one predicate, which takes the lower kind first, so the
// arguments are swapped whenever they arrive in the other order.

func Collide(a, b Shape) bool {
	a = normalize(a)
	b = normalize(b)
	if a.Kind() > b.Kind() {
		a, b = b, a
	}

	switch first := a.(type) {
	case Point:
		return collidePoint(first, b)
	case Line:
		return collideLine(first, b)
	case Circle:
		return collideCircle(first, b)
	case Box:
		return collideBox(first, b)
	case Triangle:
		if second, ok := b.(Triangle); ok {
			return collideTriangleTriangle(first, second)
		}
	}
	fatalf("unsupported shape pair %T and %T", a, b)
	return false
}

func collidePoint(p Point, b Shape) bool {
	switch s := b.(type) {
	case Point:
		return CollisionPointPoint(p.X, p.Y, s.X, s.Y)
	case Line:
		return CollisionPointLine(p.X, p.Y, s.X, s.Y, s.DX, s.DY)
	case Circle:
		return CollisionPointCircle(p.X, p.Y, s.X, s.Y, s.R)
	case Box:
		return CollisionPointBox(p.X, p.Y, s.X, s.Y, s.W, s.H)
	case Triangle:
		return CollisionPointTriangle(p.X, p.Y, s.X, s.Y, s.SXA, s.SYA, s.SXB, s.SYB)
	}
	fatalf("unsupported shape pair %T and %T", p, b)
	return false
}

func collideLine(l Line, b Shape) bool {
	switch s := b.(type) {
	case Line:
		return CollisionLineLine(l.X, l.Y, l.DX, l.DY, s.X, s.Y, s.DX, s.DY)
	case Circle:
		return CollisionLineCircle(l.X, l.Y, l.DX, l.DY, s.X, s.Y, s.R)
	case Box:
		return CollisionLineBox(l.X, l.Y, l.DX, l.DY, s.X, s.Y, s.W, s.H)
	case Triangle:
		return CollisionLineTriangle(l.X, l.Y, l.DX, l.DY, s.X, s.Y, s.SXA, s.SYA, s.SXB, s.SYB)
	}
	fatalf("unsupported shape pair %T and %T", l, b)
	return false
}

func collideCircle(c Circle, b Shape) bool {
	switch s := b.(type) {
	case Circle:
		return CollisionCircleCircle(c.X, c.Y, c.R, s.X, s.Y, s.R)
	case Box:
		return CollisionCircleBox(c.X, c.Y, c.R, s.X, s.Y, s.W, s.H)
	case Triangle:
		return CollisionCircleTriangle(c.X, c.Y, c.R, s.X, s.Y, s.SXA, s.SYA, s.SXB, s.SYB)
	}
	fatalf("unsupported shape pair %T and %T", c, b)
	return false
}

func collideBox(box Box, b Shape) bool {
	switch s := b.(type) {
	case Box:
		return CollisionBoxBox(box.X, box.Y, box.W, box.H, s.X, s.Y, s.W, s.H)
	case Triangle:
		return CollisionBoxTriangle(box.X, box.Y, box.W, box.H, s.X, s.Y, s.SXA, s.SYA, s.SXB, s.SYB)
	}
	fatalf("unsupported shape pair %T and %T", box, b)
	return false
}

// Two triangles have no dedicated predicate. They touch iff a side of one
// touches the other, or one contains the other entirely, which is covered by
// testing one vertex of each against the other.
func collideTriangleTriangle(t1, t2 Triangle) bool {
	for _, side := range triangleSides(t1) {
		if CollisionLineTriangle(side.X, side.Y, side.DX, side.DY, t2.X, t2.Y, t2.SXA, t2.SYA, t2.SXB, t2.SYB) {
			return true
		}
	}
	if CollisionPointTriangle(t1.X, t1.Y, t2.X, t2.Y, t2.SXA, t2.SYA, t2.SXB, t2.SYB) {
		return true
	}
	return CollisionPointTriangle(t2.X, t2.Y, t1.X, t1.Y, t1.SXA, t1.SYA, t1.SXB, t1.SYB)
}

func triangleSides(t Triangle) [3]Line {
	return [3]Line{
		{t.X, t.Y, t.SXA, t.SYA},
		{t.X, t.Y, t.SXB, t.SYB},
		{t.X + t.SXA, t.Y + t.SYA, t.SXB - t.SXA, t.SYB - t.SYA},
	}
}

// Pointers to shapes are accepted as well, as long as they aren't nil.
func normalize(s Shape) Shape {
	switch s := s.(type) {
	case nil:
		fatalf("shape is nil")
	case *Point:
		if s == nil {
			fatalf("shape is a nil %T", s)
		}
		return *s
	case *Line:
		if s == nil {
			fatalf("shape is a nil %T", s)
		}
		return *s
	case *Circle:
		if s == nil {
			fatalf("shape is a nil %T", s)
		}
		return *s
	case *Box:
		if s == nil {
			fatalf("shape is a nil %T", s)
		}
		return *s
	case *Triangle:
		if s == nil {
			fatalf("shape is a nil %T", s)
		}
		return *s
	}
	return s
}
