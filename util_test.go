package svgpath

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.That(t, !p.IsZero())
	test.That(t, Point{}.IsZero())
	test.That(t, p.Equals(Point{3, 4 + Epsilon/2}))
	test.That(t, !p.Equals(Point{3, 4.001}))
	test.That(t, p.Add(Point{1, -1}).Equals(Point{4, 3}))
	test.That(t, p.Scale(2, -1).Equals(Point{6, -4}))
	test.That(t, p.Rot(90, Point{}).Equals(Point{-4, 3}))
	test.That(t, p.Rot(90, p).Equals(p))
	test.That(t, Point{2, 1}.Rot(180, Point{1, 1}).Equals(Point{0, 1}))
	test.String(t, p.String(), "[3; 4]")
}

func TestNum(t *testing.T) {
	var tts = []struct {
		f float64
		s string
	}{
		{0, "0"},
		{2, "2"},
		{12, "12"},
		{-3, "-3"},
		{1.5, "1.5"},
		{2.25, "2.25"},
		{-16.75, "-16.75"},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			test.String(t, num(tt.f).String(), tt.s)
		})
	}
}

func TestFlag(t *testing.T) {
	test.String(t, flag(true).String(), "1")
	test.String(t, flag(false).String(), "0")
}
