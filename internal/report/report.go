// SPDX-License-Identifier: MIT

// Package report renders bench results for the terminal. Colors are
// dropped automatically when the writer is not a terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/bidir/bidijkstra"
	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/internal/bench"
)

// MaxPathVertices caps how many path vertices are printed.
const MaxPathVertices = 12

var (
	colorAccent = lipgloss.Color("#874BFD")
	colorGood   = lipgloss.Color("#00FF99")
	colorBad    = lipgloss.Color("#FF0055")
	colorDim    = lipgloss.Color("#64748B")
)

type styles struct {
	title, label, good, bad lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Foreground(colorAccent).Bold(true),
		label: r.NewStyle().Foreground(colorDim),
		good:  r.NewStyle().Foreground(colorGood).Bold(true),
		bad:   r.NewStyle().Foreground(colorBad).Bold(true),
	}
}

type printer struct {
	w   io.Writer
	st  styles
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, st: newStyles(lipgloss.NewRenderer(w))}
}

func (p *printer) line(s string) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, s)
	}
}

func (p *printer) field(label, value string) {
	p.line(p.st.label.Render(fmt.Sprintf("%-10s", label)) + value)
}

func (p *printer) status(s bidijkstra.Status) string {
	if s == bidijkstra.StatusOK || s.Has(bidijkstra.StatusNoPath) {
		return p.st.good.Render(fmt.Sprintf("%-8s", s))
	}
	return p.st.bad.Render(fmt.Sprintf("%-8s", s))
}

// Render writes the full benchmark report.
func Render(w io.Writer, res *bench.Result) error {
	p := newPrinter(w)

	p.line(p.st.title.Render("Bidirectional Dijkstra benchmark"))
	p.field("graph", res.Origin)
	if res.Seed != 0 {
		p.field("seed", fmt.Sprint(res.Seed))
	}
	p.field("size", fmt.Sprintf("%d vertices, %d edges", res.Vertices, res.Edges))
	p.field("build", duration(res.BuildTime))
	p.field("query", fmt.Sprintf("%d -> %d", res.Source, res.Target))
	p.line("")

	p.line(p.st.label.Render(fmt.Sprintf("%-16s%-8s%-12s%-10s%s", "algorithm", "status", "weight", "expanded", "time")))
	for _, s := range []bench.Search{res.Bidirectional, res.Unidirectional} {
		p.line(fmt.Sprintf("%-16s", s.Algorithm) + p.status(s.Status) +
			fmt.Sprintf("%-12s%-10d%s", weight(s), s.Stats.Expanded(), duration(s.Elapsed)))
	}
	p.line("")

	if len(res.Bidirectional.Path) > 0 {
		p.field("path", Path(res.Bidirectional.Path))
	}
	if res.Agree {
		p.field("agree", p.st.good.Render("yes"))
	} else {
		p.field("agree", p.st.bad.Render("no"))
	}

	if sw := res.Sweep; sw != nil {
		summary := fmt.Sprintf("%d queries, %d agreed (%d no path), %d disagreements in %s",
			sw.Queries, sw.Agreed, sw.NoPath, len(sw.Disagreements), duration(sw.Elapsed))
		p.field("sweep", summary)
		for _, q := range sw.Disagreements {
			p.field("", p.st.bad.Render(fmt.Sprintf("%d -> %d", q.Source, q.Target)))
		}
	}

	return p.err
}

// RenderSearch writes a single search outcome.
func RenderSearch(w io.Writer, s bench.Search) error {
	p := newPrinter(w)
	p.field("algorithm", s.Algorithm)
	p.field("status", p.status(s.Status))
	if s.Status == bidijkstra.StatusOK {
		p.field("weight", weight(s))
		p.field("path", Path(s.Path))
	}
	p.field("expanded", fmt.Sprintf("%d (forward %d, backward %d)",
		s.Stats.Expanded(), s.Stats.ExpandedForward, s.Stats.ExpandedBackward))
	p.field("time", duration(s.Elapsed))

	return p.err
}

// Path prints up to MaxPathVertices ids followed by the total count.
func Path(path []core.VertexID) string {
	var b strings.Builder
	for i, v := range path {
		if i == MaxPathVertices {
			fmt.Fprintf(&b, " ... +%d", len(path)-MaxPathVertices)
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	fmt.Fprintf(&b, " (%d vertices)", len(path))

	return b.String()
}

func weight(s bench.Search) string {
	if s.Status != bidijkstra.StatusOK {
		return "-"
	}
	return fmt.Sprintf("%.6f", s.Weight)
}

func duration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
