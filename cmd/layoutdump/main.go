// Command layoutdump lays out marked-up text on a monospace grid and prints
// the positioned items as JSON. It needs no window or font files.
//
// Usage:
//
//	layoutdump -width 300 -image img1=40x40 "Hello [img1] world"
//
// Text is read from stdin when no argument is given.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/showcase/specialtext"
)

// imageFlags collects repeated -image name=WxH flags.
type imageFlags map[string]specialtext.Size

func (f imageFlags) String() string {
	parts := make([]string, 0, len(f))
	for name, s := range f {
		parts = append(parts, fmt.Sprintf("%s=%gx%g", name, s.Width, s.Height))
	}
	return strings.Join(parts, ",")
}

func (f imageFlags) Set(v string) error {
	name, size, ok := strings.Cut(v, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=WxH, got %q", v)
	}
	ws, hs, ok := strings.Cut(size, "x")
	if !ok {
		return fmt.Errorf("want WxH, got %q", size)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil {
		return fmt.Errorf("height: %w", err)
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("negative size %q", size)
	}
	f[name] = specialtext.Size{Width: w, Height: h}
	return nil
}

func (f imageFlags) ImageSize(name string) (specialtext.Size, error) {
	s, ok := f[name]
	if !ok {
		return specialtext.Size{}, fmt.Errorf("%w: %q", specialtext.ErrUnresolvedAsset, name)
	}
	return s, nil
}

type item struct {
	Kind    string  `json:"kind"`
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Line    int     `json:"line"`
}

type output struct {
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Lines  int      `json:"lines"`
	Items  []item   `json:"items"`
	Issues []string `json:"issues,omitempty"`
}

type options struct {
	width  float64
	size   float64
	cell   float64
	line   float64
	strict bool
	images imageFlags
}

func dump(w io.Writer, text string, opts options) error {
	policy := specialtext.MarkupLiteral
	if opts.strict {
		policy = specialtext.MarkupStrict
	}
	env := specialtext.Env{
		Measurer: specialtext.CellMeasurer{CellWidth: opts.cell, LineHeight: opts.line, BaseSize: opts.size},
		Images:   opts.images,
		Policy:   policy,
	}
	style := specialtext.DefaultStyle().WithPatch(specialtext.FontSize(opts.size))
	t, err := specialtext.New(text, style, opts.width, env)
	if err != nil {
		return err
	}

	l := t.Layout()
	out := output{Width: l.Width, Height: l.Height, Lines: l.Lines, Items: make([]item, 0, len(l.Items))}
	for _, it := range l.Items {
		out.Items = append(out.Items, item{
			Kind:    it.Kind.String(),
			Content: it.Content,
			X:       it.X,
			Y:       it.Y,
			Width:   it.Width,
			Height:  it.Height,
			Line:    it.Line,
		})
	}
	for _, issue := range t.Issues() {
		out.Issues = append(out.Issues, issue.String())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func main() {
	opts := options{images: imageFlags{}}
	flag.Float64Var(&opts.width, "width", 900, "maximum line width")
	flag.Float64Var(&opts.size, "size", 26, "font size")
	flag.Float64Var(&opts.cell, "cell", 13, "cell width at -size")
	flag.Float64Var(&opts.line, "line", 30, "line height at -size")
	flag.BoolVar(&opts.strict, "strict", false, "fail on malformed markup")
	flag.Var(opts.images, "image", "image `name=WxH`; repeatable")
	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if flag.NArg() == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		text = string(b)
	}
	if err := dump(os.Stdout, text, opts); err != nil {
		log.Fatal(err)
	}
}
