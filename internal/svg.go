package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This reads shapes out of an SVG document. It is not a full SVG reader, and
// it does not apply transforms. It understands just enough to describe
// collision scenes, which makes fixtures easy to draw and look at:
//
//	<circle cx cy r>           a circle, or a point with data-shape="point"
//	<line x1 y1 x2 y2>         a line segment
//	<rect x y width height>    a box
//	<polygon points="...">     a triangle, which must have exactly three points
//
// Other elements are skipped. If the root element has a data-collide
// attribute, it is the expected collision result for the scene.

type Scene struct {
	Shapes []Shape
	Expect *bool
}

func ParseSVG(r io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	scene := &Scene{}
	if value, ok := root.Attributes["data-collide"]; ok {
		expect, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid data-collide %q", value)
		}
		scene.Expect = &expect
	}

	if err := scene.collect(root); err != nil {
		return nil, err
	}
	return scene, nil
}

// Walk the element tree in document order
func (scene *Scene) collect(el *svgparser.Element) error {
	shape, err := shapeFromElement(el)
	if err != nil {
		return errors.Wrapf(err, "<%s> element", el.Name)
	}
	if shape != nil {
		scene.Shapes = append(scene.Shapes, shape)
	}
	for _, child := range el.Children {
		if err := scene.collect(child); err != nil {
			return err
		}
	}
	return nil
}

func shapeFromElement(el *svgparser.Element) (Shape, error) {
	attrs := attributeReader{el.Attributes, nil}
	switch el.Name {
	case "circle":
		x, y := attrs.float("cx"), attrs.float("cy")
		if el.Attributes["data-shape"] == "point" {
			return Point{x, y}, attrs.err
		}
		r := attrs.float("r")
		return Circle{x, y, r}, attrs.err
	case "line":
		x1, y1 := attrs.float("x1"), attrs.float("y1")
		x2, y2 := attrs.float("x2"), attrs.float("y2")
		return Line{x1, y1, x2 - x1, y2 - y1}, attrs.err
	case "rect":
		x, y := attrs.float("x"), attrs.float("y")
		w, h := attrs.float("width"), attrs.float("height")
		return Box{x, y, w, h}, attrs.err
	case "polygon":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		if len(points) != 3 {
			return nil, errors.Errorf("polygon has %d points, only triangles are supported", len(points))
		}
		return NewTriangle(points[0].X, points[0].Y, points[1].X, points[1].Y, points[2].X, points[2].Y), nil
	}
	return nil, nil
}

// Reads float attributes, remembering the first error so a whole element can
// be read before checking.
type attributeReader struct {
	attributes map[string]string
	err        error
}

func (r *attributeReader) float(name string) float32 {
	if r.err != nil {
		return 0
	}
	value, ok := r.attributes[name]
	if !ok {
		r.err = errors.Errorf("missing attribute %q", name)
		return 0
	}
	f, err := parseFloat(value)
	if err != nil {
		r.err = errors.Wrapf(err, "attribute %q", name)
	}
	return f
}

// Points are listed as "x,y x,y ...", but SVG allows any mix of commas and
// whitespace between the numbers.
func parsePoints(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in points %q", s)
	}

	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseFloat(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseFloat(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, errors.Errorf("invalid number %q", s)
	}
	return float32(f), nil
}
