// Package render writes human-readable dumps of graphs, paths and path cache
// slots. Styling uses lipgloss and collapses to plain text when the writer is
// not a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hroute/multigraph"
	"github.com/katalvlaran/hroute/pathcache"
	"github.com/katalvlaran/hroute/routing"
)

// Printer renders to one writer with styles bound to that writer's profile.
type Printer struct {
	w io.Writer

	vertex    lipgloss.Style
	edge      lipgloss.Style
	occupied  lipgloss.Style
	tombstone lipgloss.Style
	empty     lipgloss.Style
	fault     lipgloss.Style
}

// New creates a Printer for w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:         w,
		vertex:    r.NewStyle().Bold(true),
		edge:      r.NewStyle().Foreground(lipgloss.Color("6")),
		occupied:  r.NewStyle().Foreground(lipgloss.Color("2")),
		tombstone: r.NewStyle().Foreground(lipgloss.Color("3")),
		empty:     r.NewStyle().Faint(true),
		fault:     r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Graph lists every vertex followed by its outgoing edges with raw weights:
//
//	A
//	    ----1----9-> C (fast)
func (p *Printer) Graph(g *multigraph.Graph) error {
	var b strings.Builder
	for i := 0; i < g.VertexCount(); i++ {
		b.WriteString(p.vertex.Render(g.Name(i)))
		b.WriteByte('\n')
		for _, e := range g.OutEdges(i) {
			to := g.Name(e.To)
			if e.Detached() {
				to = p.fault.Render("<removed>")
			}
			fmt.Fprintf(&b, "    -%s-%s-> %s (%s)\n",
				pad(e.Weight0), pad(e.Weight1), to, p.edge.Render(e.Name))
		}
	}
	_, err := io.WriteString(p.w, b.String())

	return err
}

// Path prints the vertex names of path joined by the blended weight of each
// hop. With sameLine the whole path is one line; otherwise each vertex starts
// a line. Paths shorter than one edge print nothing. An index that does not
// exist in g stops the output with a diagnostic.
func (p *Printer) Path(g *multigraph.Graph, path routing.Path, alpha float64, sameLine bool) error {
	if len(path) < 3 {
		return nil
	}
	var b strings.Builder
	for i := 0; i < len(path); i += 2 {
		v := path[i]
		if v < 0 || v >= g.VertexCount() {
			fmt.Fprintf(&b, "%s\n", p.fault.Render(fmt.Sprintf("VertexId %d not found!", v)))
			break
		}
		b.WriteString(p.vertex.Render(g.Name(v)))
		if !sameLine {
			b.WriteByte('\n')
		}
		if i == len(path)-1 {
			break
		}
		edges := g.OutEdges(v)
		if j := path[i+1]; j < 0 || j >= len(edges) {
			fmt.Fprintf(&b, "%s\n", p.fault.Render(fmt.Sprintf("EdgeId %d not found in %d!", j, v)))
			break
		}
		fmt.Fprintf(&b, "-%s->", pad(edges[path[i+1]].Cost(alpha)))
	}
	if sameLine && !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())

	return err
}

// Table prints a header and every slot of t in index order.
func (p *Printer) Table(t *pathcache.Table) error {
	var b strings.Builder
	b.WriteString("____________________\n")
	fmt.Fprintf(&b, "Elements %d\n", t.Len())
	b.WriteString("[IDX] - [LRU] | DATA\n")
	b.WriteString("____________________\n")
	for _, s := range t.Slots() {
		b.WriteString(p.slotLine(s))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())

	return err
}

// SortedEntries prints live slots in descending hit-count order.
func (p *Printer) SortedEntries(t *pathcache.Table) error {
	var b strings.Builder
	for _, e := range t.Entries() {
		b.WriteString(p.slotLine(pathcache.Slot{
			Index:   e.Index,
			State:   pathcache.Occupied,
			Key:     e.Key,
			Hits:    e.Hits,
			Payload: e.Payload,
		}))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())

	return err
}

func (p *Printer) slotLine(s pathcache.Slot) string {
	switch s.State {
	case pathcache.Empty:
		return fmt.Sprintf("[%03d]         : %s", s.Index, p.empty.Render(s.State.String()))
	case pathcache.Tombstone:
		return fmt.Sprintf("[%03d]         : %s", s.Index, p.tombstone.Render(s.State.String()))
	}
	mode := "False"
	if s.Key.CostMode {
		mode = "True"
	}

	return fmt.Sprintf("[%03d] - [%03d] : %s (%-5s) %s",
		s.Index, s.Hits, p.occupied.Render(s.State.String()), mode, Sequence(s.Payload))
}

// Sequence formats a path encoding as [v]-->/e/-->[v]: even positions are
// vertices in brackets and odd positions are edges between slashes.
func Sequence(seq []int) string {
	parts := make([]string, len(seq))
	for i, x := range seq {
		if i%2 == 0 {
			parts[i] = fmt.Sprintf("[%03d]", x)
		} else {
			parts[i] = fmt.Sprintf("/%03d/", x)
		}
	}

	return strings.Join(parts, "-->")
}

// pad right-aligns a weight in a four-character dash-filled field.
func pad(w float64) string {
	s := fmt.Sprintf("%g", w)
	if n := 4 - len(s); n > 0 {
		s = strings.Repeat("-", n) + s
	}

	return s
}
