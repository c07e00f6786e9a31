package piece

import (
	"fmt"
	"image/color"
	"strings"
)

const (
	// BoxSize is the edge length of every shape's bounding box.
	BoxSize = 4
	// CellCount is the number of occupied cells in every tetromino.
	CellCount = 4
)

// Shape is the occupancy grid of one rotation state, indexed [row][col].
type Shape [BoxSize][BoxSize]bool

// Each rotation state drawn as four rows of four cells, top row first.
var shapeArt = [NumTypes][]string{
	I: {
		"...." + "####" + "...." + "....",
		"..#." + "..#." + "..#." + "..#.",
		"...." + "...." + "####" + "....",
		".#.." + ".#.." + ".#.." + ".#..",
	},
	O: {
		".##." + ".##." + "...." + "....",
	},
	T: {
		".#.." + "###." + "...." + "....",
		".#.." + ".##." + ".#.." + "....",
		"...." + "###." + ".#.." + "....",
		".#.." + "##.." + ".#.." + "....",
	},
	S: {
		".##." + "##.." + "...." + "....",
		".#.." + ".##." + "..#." + "....",
		"...." + ".##." + "##.." + "....",
		"#..." + "##.." + ".#.." + "....",
	},
	Z: {
		"##.." + ".##." + "...." + "....",
		"..#." + ".##." + ".#.." + "....",
		"...." + "##.." + ".##." + "....",
		".#.." + "##.." + "#..." + "....",
	},
	J: {
		"#..." + "###." + "...." + "....",
		".##." + ".#.." + ".#.." + "....",
		"...." + "###." + "..#." + "....",
		".#.." + ".#.." + "##.." + "....",
	},
	L: {
		"..#." + "###." + "...." + "....",
		".#.." + ".#.." + ".##." + "....",
		"...." + "###." + "#..." + "....",
		"##.." + ".#.." + ".#.." + "....",
	},
}

var shapes = buildShapes()

func buildShapes() [NumTypes][]Shape {
	var out [NumTypes][]Shape
	for t, rotations := range shapeArt {
		for _, art := range rotations {
			out[t] = append(out[t], parseShape(art))
		}
	}
	return out
}

func parseShape(art string) Shape {
	var s Shape
	if len(art) != BoxSize*BoxSize || strings.Count(art, "#") != CellCount {
		panic("malformed shape: " + art)
	}
	for i, c := range art {
		s[i/BoxSize][i%BoxSize] = c == '#'
	}
	return s
}

// Rotations returns the number of rotation states of t.
func Rotations(t Type) int {
	mustValid(t)
	return len(shapes[t])
}

// ShapeAt returns the occupancy grid of t in the given rotation. The rotation index is
// reduced modulo the type's rotation count.
func ShapeAt(t Type, rotation int) Shape {
	mustValid(t)
	n := len(shapes[t])
	return shapes[t][(rotation%n+n)%n]
}

// SupportsSpin reports whether t is the pivot-capable type eligible for spin bonuses.
func SupportsSpin(t Type) bool {
	return t == T
}

var palette = [NumTypes]color.RGBA{
	I: {R: 102, G: 191, B: 255, A: 255},
	O: {R: 255, G: 203, B: 0, A: 255},
	T: {R: 135, G: 60, B: 190, A: 255},
	S: {R: 0, G: 228, B: 48, A: 255},
	Z: {R: 230, G: 41, B: 55, A: 255},
	J: {R: 0, G: 121, B: 241, A: 255},
	L: {R: 255, G: 161, B: 0, A: 255},
}

// GarbageColor is the color of attack rows.
var GarbageColor = color.RGBA{R: 130, G: 130, B: 130, A: 255}

// Color returns the display color of t.
func Color(t Type) color.RGBA {
	mustValid(t)
	return palette[t]
}

func mustValid(t Type) {
	if !t.Valid() {
		panic(fmt.Sprintf("piece: unknown type %d", int(t)))
	}
}
