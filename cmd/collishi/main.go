package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/shidacea/collishi"
	"github.com/shidacea/collishi/dbg"
	"github.com/shidacea/collishi/internal"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Check every pair of a set of shapes for collisions. Shapes are read from an
// SVG file, or from stdin as one shape per line:
//
//	point x y
//	line x y dx dy
//	circle x y r
//	box x y w h
//	triangle x y sxa sya sxb syb
//
// Blank lines and lines starting with # are skipped.

var (
	app     = kingpin.New("collishi", "Check which of a set of 2D shapes collide.")
	svgPath = app.Flag("svg", "Read shapes from an SVG file instead of stdin.").Envar("COLLISHI_SVG").ExistingFile()
	draw    = app.Flag("draw", "Render the shapes and print the image to the terminal (iTerm only).").Envar("COLLISHI_DRAW").Bool()
	scale   = app.Flag("scale", "Pixels per unit when drawing.").Envar("COLLISHI_SCALE").Default("50").Float64()
	out     = app.Flag("out", "Where to save the rendered image.").Envar("COLLISHI_OUT").Default(filepath.Join(os.TempDir(), "collishi.png")).String()
	noColor = app.Flag("no-color", "Disable colored output.").Envar("COLLISHI_NO_COLOR").Bool()
)

func main() {
	// Settings may come from a .env file, but it doesn't have to exist
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to load .env: %v", err)
	}
	kingpin.MustParse(app.Parse(os.Args[1:]))

	shapes, err := loadShapes()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if len(shapes) < 2 {
		log.Fatalf("Need at least two shapes, got %d", len(shapes))
	}

	if err := report(os.Stdout, shapes, aurora.NewAurora(!*noColor)); err != nil {
		log.Fatalf("%+v", err)
	}

	if *draw {
		if *scale <= 0 {
			log.Fatalf("Scale must be positive, got %v", *scale)
		}
		legend(os.Stdout, shapes, !*noColor)
		if err := internal.DbgDrawScene(*out, shapes, *scale); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

func loadShapes() ([]collishi.Shape, error) {
	if *svgPath == "" {
		return readShapes(os.Stdin)
	}

	f, err := os.Open(*svgPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	scene, err := internal.ParseSVG(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", *svgPath)
	}
	return scene.Shapes, nil
}

// Print the result for every unordered pair of shapes
func report(w io.Writer, shapes []collishi.Shape, au aurora.Aurora) error {
	for i, a := range shapes {
		for _, b := range shapes[i+1:] {
			hit, err := collishi.Collide(a, b)
			if err != nil {
				return err
			}
			result := au.Red("apart")
			if hit {
				result = au.Green("collide")
			}
			if _, err := fmt.Fprintf(w, "%v × %v: %s\n", a, b, result); err != nil {
				return errors.Wrap(err, "writing report")
			}
		}
	}
	return nil
}

// The rendered scene labels shapes by their debug names, so print which is
// which.
func legend(w io.Writer, shapes []collishi.Shape, color bool) {
	for _, shape := range shapes {
		name := dbg.Name(shape)
		if color {
			name = internal.DbgName(shape)
		}
		fmt.Fprintf(w, "%s: %v\n", name, shape)
	}
}

func readShapes(r io.Reader) ([]collishi.Shape, error) {
	var shapes []collishi.Shape
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		shape, err := parseShape(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		shapes = append(shapes, shape)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading shapes")
	}
	return shapes, nil
}

var argumentCounts = map[string]int{
	"point":    2,
	"line":     4,
	"circle":   3,
	"box":      4,
	"triangle": 6,
}

func parseShape(line string) (collishi.Shape, error) {
	fields := strings.Fields(line)
	kind := strings.ToLower(fields[0])
	count, ok := argumentCounts[kind]
	if !ok {
		return nil, errors.Errorf("unknown shape %q", fields[0])
	}
	if len(fields)-1 != count {
		return nil, errors.Errorf("%s takes %d numbers, got %d", kind, count, len(fields)-1)
	}

	v := make([]float32, count)
	for i, field := range fields[1:] {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", field)
		}
		v[i] = float32(f)
	}

	switch kind {
	case "point":
		return collishi.Point{X: v[0], Y: v[1]}, nil
	case "line":
		return collishi.Line{X: v[0], Y: v[1], DX: v[2], DY: v[3]}, nil
	case "circle":
		return collishi.Circle{X: v[0], Y: v[1], R: v[2]}, nil
	case "box":
		return collishi.Box{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	}
	return collishi.Triangle{X: v[0], Y: v[1], SXA: v[2], SYA: v[3], SXB: v[4], SYB: v[5]}, nil
}
