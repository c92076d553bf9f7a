package eps

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type options struct {
	removeBoxes  bool
	groupSoft    bool
	combineAreas bool
	dashLineCap  bool
}

type Option func(*options)

// WithRemoveBoxes discards every block whose content draws a rectangle.
func WithRemoveBoxes() Option {
	return func(o *options) {
		o.removeBoxes = true
	}
}

// WithGroupSoft coalesces only runs of consecutive same-state blocks,
// flushing on every state change so that input z-order is preserved.
func WithGroupSoft() Option {
	return func(o *options) {
		o.groupSoft = true
	}
}

// WithCombineAreas merges adjacent filled polygons that share edges;
// without it, fills pass through untouched.
func WithCombineAreas() Option {
	return func(o *options) {
		o.combineAreas = true
	}
}

// WithDashLineCap restores the old behavior of normalizing the linecap
// even for dashed blocks.
func WithDashLineCap() Option {
	return func(o *options) {
		o.dashLineCap = true
	}
}

// Stats summarizes one cleaning run.
type Stats struct {
	Blocks    int
	BlocksOut int
	Segments  int
	Polylines int
	Outlines  int
}

type FileInfo struct {
	Title    string
	Creator  string
	For      string
	Created  string
	Level    string
	Box      [4]float64
	HasBox   bool
	Pages    int
	Fonts    []string
	Comments Header
}

type Document struct {
	inner  *Reader
	file   string
	header Header

	out     string
	cleaned bool
	stats   Stats
}

func Open(file string) (*Document, error) {
	buf, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %s", err)
	}
	doc := fromBytes(buf)
	doc.file = file
	return doc, nil
}

func Read(r io.Reader) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %s", err)
	}
	return fromBytes(buf), nil
}

func fromBytes(buf []byte) *Document {
	var (
		rs  = NewReader(buf)
		doc = Document{
			inner:  rs,
			header: parseHeader(rs),
		}
	)
	return &doc
}

func (d *Document) Close() error {
	return d.inner.Close()
}

// Clean runs the path reconstruction under the given options and keeps the
// transformed stream for WriteTo/WriteFile.
func (d *Document) Clean(opts ...Option) error {
	var (
		opt options
		out strings.Builder
	)
	for _, o := range opts {
		o(&opt)
	}
	run := newCleaner(d.inner, opt, &out)
	if err := run.run(); err != nil {
		return err
	}
	d.out = out.String()
	d.cleaned = true
	d.stats = run.stats
	return nil
}

// Walk iterates the document blocks in emission order, before any
// reconstruction, until fn returns false.
func (d *Document) Walk(fn func(Block) bool) {
	run := newCleaner(d.inner, options{}, nil)
	run.run()
	for _, b := range run.blocks {
		if !fn(*b) {
			break
		}
	}
}

func (d *Document) Stats() Stats {
	return d.stats
}

func (d *Document) Header() Header {
	return d.header
}

func (d *Document) Info() FileInfo {
	fi := FileInfo{
		Title:    d.header.GetString("Title"),
		Creator:  d.header.GetString("Creator"),
		For:      d.header.GetString("For"),
		Created:  d.header.GetString("CreationDate"),
		Level:    d.header.GetString("LanguageLevel"),
		Pages:    int(d.header.GetInt("Pages")),
		Fonts:    d.header.GetStrings("DocumentFonts"),
		Comments: d.header,
	}
	if len(fi.Fonts) == 0 {
		fi.Fonts = d.header.GetStrings("DocumentNeededFonts")
	}
	fi.Box, fi.HasBox = d.header.BoundingBox()
	return fi
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.output())
	return int64(n), err
}

// WriteFile stores the document at file, or back over its source when file
// is empty or equal to it. In-place writes go through a sibling temporary
// file and a rename so that a failed write leaves the original untouched.
func (d *Document) WriteFile(file string) error {
	if file == "" {
		file = d.file
	}
	if file == "" {
		return fmt.Errorf("no output file")
	}
	if file != d.file {
		return os.WriteFile(file, []byte(d.output()), 0644)
	}
	tmp, err := os.CreateTemp(filepath.Dir(file), filepath.Base(file)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %s", err)
	}
	if _, err := io.WriteString(tmp, d.output()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %s", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename over original: %s", err)
	}
	return nil
}

func (d *Document) output() string {
	if !d.cleaned {
		return d.inner.RawRange(1, 0)
	}
	return d.out
}

// Clean is the one-shot form: read an EPS stream from r, reconstruct its
// paths, write the result to w.
func Clean(r io.Reader, w io.Writer, opts ...Option) error {
	doc, err := Read(r)
	if err != nil {
		return err
	}
	defer doc.Close()
	if err := doc.Clean(opts...); err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}
