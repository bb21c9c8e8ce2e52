package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/shidacea/collishi/dbg"
)

// Padding around the scene, in pixels
const dbgDrawPadding = 20

// Radius points are drawn with, in pixels
const dbgPointRadius = 3

// Render a set of shapes, scaled by the given number of pixels per unit. The
// origin is at the bottom left. Shapes which touch any other shape in the set
// are filled red, the others blue, and each is labeled with its debug name.
func DrawScene(shapes []Shape, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, shape := range shapes {
		x0, y0, x1, y1 := Bounds(shape)
		minX = math.Min(minX, float64(x0))
		minY = math.Min(minY, float64(y0))
		maxX = math.Max(maxX, float64(x1))
		maxY = math.Max(maxY, float64(y1))
	}
	if len(shapes) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, shape := range shapes {
		colliding := false
		for j, other := range shapes {
			if i != j && Collide(shape, other) {
				colliding = true
				break
			}
		}
		drawShape(c, normalize(shape), scale, colliding)
	}
	return c
}

func drawShape(c *gg.Context, shape Shape, scale float64, colliding bool) {
	var labelX, labelY float64
	switch s := shape.(type) {
	case Point:
		c.DrawCircle(float64(s.X), float64(s.Y), dbgPointRadius/scale)
		labelX, labelY = float64(s.X), float64(s.Y)
	case Line:
		end := s.End()
		c.DrawLine(float64(s.X), float64(s.Y), float64(end.X), float64(end.Y))
		labelX, labelY = float64(s.X)+float64(s.DX)/2, float64(s.Y)+float64(s.DY)/2
	case Circle:
		c.DrawCircle(float64(s.X), float64(s.Y), float64(s.R))
		labelX, labelY = float64(s.X), float64(s.Y)
	case Box:
		c.DrawRectangle(float64(s.X), float64(s.Y), float64(s.W), float64(s.H))
		labelX, labelY = float64(s.X)+float64(s.W)/2, float64(s.Y)+float64(s.H)/2
	case Triangle:
		v := s.Vertices()
		c.MoveTo(float64(v[0].X), float64(v[0].Y))
		c.LineTo(float64(v[1].X), float64(v[1].Y))
		c.LineTo(float64(v[2].X), float64(v[2].Y))
		c.ClosePath()
		labelX = float64(v[0].X+v[1].X+v[2].X) / 3
		labelY = float64(v[0].Y+v[1].Y+v[2].Y) / 3
	}

	if colliding {
		c.SetRGBA(1, 0.2, 0.2, 0.5)
	} else {
		c.SetRGBA(0.3, 0.2, 1, 0.5)
	}
	c.FillPreserve()
	c.SetRGB(0, 1, 0)
	c.Stroke()

	// Text has to be drawn in pixel space, or it would come out mirrored
	labelX, labelY = c.TransformPoint(labelX, labelY)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(dbg.Name(shape), labelX, labelY, 0.5, 0.5)
	c.Pop()
}

func SaveScene(path string, shapes []Shape, scale float64) error {
	if err := DrawScene(shapes, scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving scene to %s", path)
	}
	return nil
}

// Save the scene and print it in the terminal (iTerm only), for debugging.
func DbgDrawScene(path string, shapes []Shape, scale float64) error {
	if err := SaveScene(path, shapes, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
