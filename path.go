package svgpath

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Path is an ordered sequence of segments with a stroke and fill. The order of the segments is the stroke order. A Path owns its segments, segments added from another path are always copied.
type Path struct {
	segs []Segment

	Stroke      string
	StrokeWidth float64
	Fill        string
}

// NewPath returns an empty path with the given stroke and a transparent fill.
func NewPath(stroke string, strokeWidth float64) *Path {
	return &Path{
		Stroke:      stroke,
		StrokeWidth: strokeWidth,
		Fill:        "transparent",
	}
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segs)
}

// Empty returns true if p has no segments.
func (p *Path) Empty() bool {
	return len(p.segs) == 0
}

// Segments returns copies of the segments of p.
func (p *Path) Segments() []Segment {
	segs := make([]Segment, len(p.segs))
	for i, seg := range p.segs {
		segs[i] = seg.Copy()
	}
	return segs
}

// Add appends segments to p. The segments are owned by p afterwards.
func (p *Path) Add(segs ...Segment) *Path {
	for _, seg := range segs {
		if seg != nil {
			p.segs = append(p.segs, seg)
		}
	}
	return p
}

// Append flattens q into p by appending copies of all its segments. q is not modified.
func (p *Path) Append(q *Path) *Path {
	if q == nil {
		return p
	}
	for _, seg := range q.segs {
		p.segs = append(p.segs, seg.Copy())
	}
	return p
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) *Path {
	return p.Add(NewMoveTo(x, y))
}

// LineTo adds a straight line to (x,y).
func (p *Path) LineTo(x, y float64) *Path {
	return p.Add(NewLineTo(x, y))
}

// ArcTo adds an elliptical arc to (x,y) with radii rx and ry, with rot the rotation of the ellipse in degrees. large and sweep select one of the four possible arcs, see NewArcTo.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *Path {
	return p.Add(NewArcTo(rx, ry, rot, large, sweep, x, y))
}

// Close adds a line back to the start of the path.
func (p *Path) Close() *Path {
	return p.Add(NewClosePath())
}

// Rect adds a closed rectangle with its corner at (x,y).
func (p *Path) Rect(x, y, w, h float64) *Path {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	return p.Close()
}

// Ellipse adds a closed ellipse centered at (x,y) made of two arcs.
func (p *Path) Ellipse(x, y, rx, ry float64) *Path {
	p.MoveTo(x+rx, y)
	p.ArcTo(rx, ry, 0, false, false, x-rx, y)
	p.ArcTo(rx, ry, 0, false, false, x+rx, y)
	return p.Close()
}

////////////////////////////////////////////////////////////////

// Scale scales all segments by sx and sy.
func (p *Path) Scale(sx, sy float64) *Path {
	for _, seg := range p.segs {
		seg.Scale(sx, sy)
	}
	return p
}

// Translate moves all segments by (dx,dy).
func (p *Path) Translate(dx, dy float64) *Path {
	for _, seg := range p.segs {
		seg.Translate(dx, dy)
	}
	return p
}

// Rotate rotates all segments by deg degrees CCW around (cx,cy).
func (p *Path) Rotate(deg, cx, cy float64) *Path {
	for _, seg := range p.segs {
		seg.Rotate(deg, cx, cy)
	}
	return p
}

// Copy returns a deep copy of p.
func (p *Path) Copy() *Path {
	q := &Path{
		segs:        make([]Segment, 0, len(p.segs)),
		Stroke:      p.Stroke,
		StrokeWidth: p.StrokeWidth,
		Fill:        p.Fill,
	}
	return q.Append(p)
}

// Pos returns the position of the pen after drawing the path. When the path ends in a ClosePath this is the position of the first segment.
func (p *Path) Pos() Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	return p.posAt(p.segs, len(p.segs)-1)
}

// posAt returns the coordinate of segment i, where a ClosePath refers to the start of the path.
func (p *Path) posAt(segs []Segment, i int) Point {
	if _, ok := segs[i].(*ClosePath); ok {
		return segs[0].Pos()
	}
	return segs[i].Pos()
}

// Reverse changes the direction of the path so that it traces the same geometry from its end to its start. A trailing ClosePath becomes an explicit line and arcs have their sweep flipped. At least two segments are required.
func (p *Path) Reverse() (*Path, error) {
	if len(p.segs) < 2 {
		return p, fmt.Errorf("reverse path of %d segments: %w", len(p.segs), ErrInvalidReversal)
	}

	end := p.Pos()
	segs := p.segs
	if _, ok := segs[len(segs)-1].(*ClosePath); ok {
		segs[len(segs)-1] = NewLineTo(end.X, end.Y)
	}

	// every segment draws to its own coordinate, so when walking backwards it draws to its predecessor's
	rev := make([]Segment, 0, len(segs))
	rev = append(rev, NewMoveTo(end.X, end.Y))
	for i := len(segs) - 1; 0 < i; i-- {
		seg := segs[i]
		seg.setPos(p.posAt(segs, i-1))
		if arc, ok := seg.(*ArcTo); ok {
			arc.Sweep = !arc.Sweep
		}
		rev = append(rev, seg)
	}
	p.segs = rev

	Logger().Debug("reversed path", "segments", len(rev), "start", end.String())
	return p, nil
}

// Validate returns an error when p cannot be written as valid SVG, which is the case for arcs with negative radii.
func (p *Path) Validate() error {
	for i, seg := range p.segs {
		if arc, ok := seg.(*ArcTo); ok && (arc.RX < 0.0 || arc.RY < 0.0) {
			return fmt.Errorf("segment %d (%v): %w", i, arc, ErrNegativeRadius)
		}
	}
	return nil
}

// Equals returns true if p and q have the same styling and the same segments, with coordinates compared with tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if p.Stroke != q.Stroke || !equal(p.StrokeWidth, q.StrokeWidth) || p.Fill != q.Fill || len(p.segs) != len(q.segs) {
		return false
	}
	for i, seg := range p.segs {
		if !segmentEquals(seg, q.segs[i]) {
			return false
		}
	}
	return true
}

func segmentEquals(a, b Segment) bool {
	switch a := a.(type) {
	case *MoveTo:
		_, ok := b.(*MoveTo)
		return ok && a.Pos().Equals(b.Pos())
	case *LineTo:
		_, ok := b.(*LineTo)
		return ok && a.Pos().Equals(b.Pos())
	case *ClosePath:
		_, ok := b.(*ClosePath)
		return ok
	case *ArcTo:
		b, ok := b.(*ArcTo)
		return ok && equal(a.RX, b.RX) && equal(a.RY, b.RY) && equal(a.Rot, b.Rot) &&
			a.Large == b.Large && a.Sweep == b.Sweep && a.Pos().Equals(b.Pos())
	}
	return false
}

////////////////////////////////////////////////////////////////

// Data returns the path data, ie. the value of the d attribute.
func (p *Path) Data() string {
	cmds := make([]string, len(p.segs))
	for i, seg := range p.segs {
		cmds[i] = seg.String()
	}
	return strings.Join(cmds, " ")
}

// String returns the path as an SVG path element. It does not validate the path.
func (p *Path) String() string {
	sb := strings.Builder{}
	sb.WriteString(`<path d="`)
	sb.WriteString(p.Data())
	sb.WriteString(`" stroke="`)
	xml.EscapeText(&sb, []byte(p.Stroke))
	sb.WriteString(`" stroke-width="`)
	sb.WriteString(num(p.StrokeWidth).String())
	sb.WriteString(`" fill="`)
	xml.EscapeText(&sb, []byte(p.Fill))
	sb.WriteString(`"/>`)
	return sb.String()
}
