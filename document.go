package svgpath

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Options are the options for writing a Document.
type Options struct {
	Width, Height int
	Unit          string
}

// DefaultOptions fill the whole viewport.
var DefaultOptions = Options{
	Width:  100,
	Height: 100,
	Unit:   "%",
}

// Document is an ordered collection of paths, written as a single SVG element. Later paths are drawn on top of earlier ones.
type Document struct {
	Title string

	paths []*Path
}

func NewDocument() *Document {
	return &Document{}
}

// Add appends paths to the document. The paths are owned by the document afterwards.
func (d *Document) Add(paths ...*Path) *Document {
	for _, p := range paths {
		if p != nil {
			d.paths = append(d.paths, p)
		}
	}
	return d
}

// Len returns the number of paths.
func (d *Document) Len() int {
	return len(d.paths)
}

// Paths returns the paths in insertion order.
func (d *Document) Paths() []*Path {
	return append([]*Path{}, d.paths...)
}

// Write validates all paths and writes the document as SVG to w. Nothing is written if any path is invalid.
func (d *Document) Write(w io.Writer, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	for i, p := range d.paths {
		if err := p.Validate(); err != nil {
			Logger().Warn("invalid path in document", "path", i, "error", err)
			return fmt.Errorf("path %d: %w", i, err)
		}
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startunit(opts.Width, opts.Height, opts.Unit)
	if d.Title != "" {
		canvas.Title(d.Title)
	}
	for _, p := range d.paths {
		fmt.Fprintln(canvas.Writer, p.String())
	}
	canvas.End()

	Logger().Debug("wrote document", "paths", len(d.paths), "bytes", ew.n)
	return ew.err
}

// String returns the document as SVG, see Write.
func (d *Document) String() string {
	sb := strings.Builder{}
	d.Write(&sb, nil)
	return sb.String()
}

// errWriter keeps the first write error, since svgo does not return any.
type errWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(b)
	w.n += int64(n)
	w.err = err
	return n, err
}
