package svgpath

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestSegmentString(t *testing.T) {
	var tts = []struct {
		seg Segment
		s   string
	}{
		{NewMoveTo(3, 4), "M 3 4"},
		{NewLineTo(-1, 2.5), "L -1 2.5"},
		{NewClosePath(), "Z"},
		{NewArcTo(5, 2, 30, true, false, 10, 4), "A 5 2 30 1 0 10 4"},
		{NewArcTo(5, 5, 0, false, true, 1, 1), "A 5 5 0 0 1 1 1"},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			test.String(t, tt.seg.String(), tt.s)
		})
	}
}

func TestSegmentTransforms(t *testing.T) {
	var tts = []struct {
		seg Segment
		f   func(Segment) Segment
		s   string
	}{
		{NewMoveTo(1, 2), func(s Segment) Segment { return s.Scale(2, 3) }, "M 2 6"},
		{NewLineTo(1, 2), func(s Segment) Segment { return s.Translate(-1, 3) }, "L 0 5"},
		{NewLineTo(2, 1), func(s Segment) Segment { return s.Rotate(180, 1, 1) }, "L 0 1"},
		{NewArcTo(2, 3, 45, false, true, 4, 4), func(s Segment) Segment { return s.Scale(2, 3) }, "A 4 9 45 0 1 8 12"},
		{NewArcTo(2, 3, 45, false, true, 4, 4), func(s Segment) Segment { return s.Translate(1, 1) }, "A 2 3 45 0 1 5 5"},
		{NewArcTo(2, 3, 0, false, false, 4, 4), func(s Segment) Segment { return s.Scale(-1, 1) }, "A -2 3 0 0 0 -4 4"},
		{NewClosePath(), func(s Segment) Segment { return s.Scale(2, 2).Translate(5, 5).Rotate(90, 1, 1) }, "Z"},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			seg := tt.f(tt.seg)
			test.That(t, seg == tt.seg, "must return the receiver")
			test.String(t, seg.String(), tt.s)
		})
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	segs := []Segment{
		NewMoveTo(3, -7),
		NewLineTo(0.25, 12),
		NewArcTo(1.5, 2, 30, true, true, -4, 9),
	}
	for _, seg := range segs {
		t.Run(fmt.Sprintf("%T", seg), func(t *testing.T) {
			orig := seg.Copy()

			seg.Translate(4.5, -2).Translate(-4.5, 2)
			test.That(t, segmentEquals(seg, orig), "translate", seg, orig)

			seg.Rotate(37, 2, -3).Rotate(-37, 2, -3)
			test.That(t, segmentEquals(seg, orig), "rotate", seg, orig)

			seg.Scale(4, 0.5).Scale(1.0/4.0, 1.0/0.5)
			test.That(t, segmentEquals(seg, orig), "scale", seg, orig)
		})
	}
}

func TestSegmentCopy(t *testing.T) {
	arc := NewArcTo(1, 2, 0, false, false, 3, 4)
	c := arc.Copy().(*ArcTo)
	c.Scale(2, 2)
	c.Sweep = true
	test.String(t, arc.String(), "A 1 2 0 0 0 3 4")
	test.String(t, c.String(), "A 2 4 0 0 1 6 8")

	test.String(t, NewClosePath().Copy().String(), "Z")
	test.That(t, NewClosePath().Pos().IsZero())
}

func TestArcRotateKeepsRotation(t *testing.T) {
	arc := NewArcTo(2, 1, 15, false, false, 1, 0)
	arc.Rotate(90, 0, 0)
	test.Float(t, arc.Rot, 15)
	test.That(t, arc.Pos().Equals(Point{0, 1}))
}
