package svgpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Epsilon is the tolerance used when comparing coordinates.
const Epsilon = 1e-10

// Precision is the number of significant digits used when writing numbers.
var Precision = 8

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale multiplies x by sx and y by sy.
func (p Point) Scale(sx, sy float64) Point {
	return Point{sx * p.X, sy * p.Y}
}

// Rot rotates P by deg degrees CCW around p0.
func (p Point) Rot(deg float64, p0 Point) Point {
	sinphi, cosphi := math.Sincos(deg * math.Pi / 180.0)
	return Point{
		p0.X + cosphi*(p.X-p0.X) - sinphi*(p.Y-p0.Y),
		p0.Y + sinphi*(p.X-p0.X) + cosphi*(p.Y-p0.Y),
	}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

type flag bool

func (f flag) String() string {
	if f {
		return "1"
	}
	return "0"
}
