package svgpath

import (
	"strings"
)

// Segment is a single SVG path command. Transformations mutate the segment in place and return it.
type Segment interface {
	// Scale multiplies the coordinates by sx and sy.
	Scale(sx, sy float64) Segment
	// Translate moves the end point by (dx,dy).
	Translate(dx, dy float64) Segment
	// Rotate rotates the end point by deg degrees CCW around (cx,cy).
	Rotate(deg, cx, cy float64) Segment
	// Pos returns the end point of the segment.
	Pos() Point
	// Copy returns an independent copy.
	Copy() Segment
	// String returns the SVG path command.
	String() string

	setPos(Point)
}

// MoveTo starts a new subpath at (X,Y).
type MoveTo struct {
	X, Y float64
}

// LineTo draws a straight line to (X,Y).
type LineTo struct {
	X, Y float64
}

// ClosePath draws a line back to the start of the path. It has no coordinates of its own.
type ClosePath struct{}

// ArcTo draws an elliptical arc to (X,Y) with radii RX and RY, with Rot the rotation of the x-axis of the ellipse in degrees. Large and Sweep select one of the four possible arcs.
type ArcTo struct {
	RX, RY       float64
	Rot          float64
	Large, Sweep bool
	X, Y         float64
}

func NewMoveTo(x, y float64) *MoveTo {
	return &MoveTo{x, y}
}

func NewLineTo(x, y float64) *LineTo {
	return &LineTo{x, y}
}

func NewClosePath() *ClosePath {
	return &ClosePath{}
}

// NewArcTo returns an arc with the argument order of the SVG A command.
func NewArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *ArcTo {
	return &ArcTo{rx, ry, rot, large, sweep, x, y}
}

////////////////////////////////////////////////////////////////

func (s *MoveTo) Scale(sx, sy float64) Segment {
	s.setPos(s.Pos().Scale(sx, sy))
	return s
}

func (s *MoveTo) Translate(dx, dy float64) Segment {
	s.setPos(s.Pos().Add(Point{dx, dy}))
	return s
}

func (s *MoveTo) Rotate(deg, cx, cy float64) Segment {
	s.setPos(s.Pos().Rot(deg, Point{cx, cy}))
	return s
}

func (s *MoveTo) Pos() Point {
	return Point{s.X, s.Y}
}

func (s *MoveTo) setPos(p Point) {
	s.X, s.Y = p.X, p.Y
}

func (s *MoveTo) Copy() Segment {
	c := *s
	return &c
}

func (s *MoveTo) String() string {
	return "M " + num(s.X).String() + " " + num(s.Y).String()
}

////////////////////////////////////////////////////////////////

func (s *LineTo) Scale(sx, sy float64) Segment {
	s.setPos(s.Pos().Scale(sx, sy))
	return s
}

func (s *LineTo) Translate(dx, dy float64) Segment {
	s.setPos(s.Pos().Add(Point{dx, dy}))
	return s
}

func (s *LineTo) Rotate(deg, cx, cy float64) Segment {
	s.setPos(s.Pos().Rot(deg, Point{cx, cy}))
	return s
}

func (s *LineTo) Pos() Point {
	return Point{s.X, s.Y}
}

func (s *LineTo) setPos(p Point) {
	s.X, s.Y = p.X, p.Y
}

func (s *LineTo) Copy() Segment {
	c := *s
	return &c
}

func (s *LineTo) String() string {
	return "L " + num(s.X).String() + " " + num(s.Y).String()
}

////////////////////////////////////////////////////////////////

func (s *ClosePath) Scale(float64, float64) Segment           { return s }
func (s *ClosePath) Translate(float64, float64) Segment       { return s }
func (s *ClosePath) Rotate(float64, float64, float64) Segment { return s }
func (s *ClosePath) Pos() Point                               { return Point{} }
func (s *ClosePath) setPos(Point)                             {}
func (s *ClosePath) Copy() Segment                            { return &ClosePath{} }
func (s *ClosePath) String() string                           { return "Z" }

////////////////////////////////////////////////////////////////

// Scale scales the end point and the radii. Negative factors flip the sign of the radii as well, see Path.Validate.
func (s *ArcTo) Scale(sx, sy float64) Segment {
	s.setPos(s.Pos().Scale(sx, sy))
	s.RX *= sx
	s.RY *= sy
	return s
}

// Translate moves the end point only, the radii are unaffected.
func (s *ArcTo) Translate(dx, dy float64) Segment {
	s.setPos(s.Pos().Add(Point{dx, dy}))
	return s
}

// Rotate rotates the end point only, Rot is not adjusted.
func (s *ArcTo) Rotate(deg, cx, cy float64) Segment {
	s.setPos(s.Pos().Rot(deg, Point{cx, cy}))
	return s
}

func (s *ArcTo) Pos() Point {
	return Point{s.X, s.Y}
}

func (s *ArcTo) setPos(p Point) {
	s.X, s.Y = p.X, p.Y
}

func (s *ArcTo) Copy() Segment {
	c := *s
	return &c
}

func (s *ArcTo) String() string {
	sb := strings.Builder{}
	sb.WriteString("A ")
	sb.WriteString(num(s.RX).String())
	sb.WriteByte(' ')
	sb.WriteString(num(s.RY).String())
	sb.WriteByte(' ')
	sb.WriteString(num(s.Rot).String())
	sb.WriteByte(' ')
	sb.WriteString(flag(s.Large).String())
	sb.WriteByte(' ')
	sb.WriteString(flag(s.Sweep).String())
	sb.WriteByte(' ')
	sb.WriteString(num(s.X).String())
	sb.WriteByte(' ')
	sb.WriteString(num(s.Y).String())
	return sb.String()
}
