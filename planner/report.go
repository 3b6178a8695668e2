package planner

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/dronepath/prim_kruskal"
	"github.com/katalvlaran/dronepath/tsp"
)

// Report is the outcome of one Run.
type Report struct {
	Mode Mode
	// Total is the tree weight (MST) or the closed tour length (TSP modes).
	Total float64
	// Edges holds the tree edges for ModeMST, smaller index first.
	Edges []prim_kruskal.Edge
	// Tour holds the visiting order for the TSP modes, starting at 0.
	Tour []int
	// Stats is filled for ModeOptTSP solved by branch and bound.
	Stats tsp.Stats
}

var _ io.WriterTo = Report{}

// WriteTo renders the report:
//
//	MST:     total on the first line, then one "u v" line per tree edge.
//	FASTTSP,
//	OPTTSP:  total on the first line, then the tour indices on one line,
//	         each followed by a single space.
//
// Totals are printed in fixed notation with two decimals.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(r.Total, 'f', 2, 64))
	b.WriteByte('\n')

	if r.Mode == ModeMST {
		for _, e := range r.Edges {
			b.WriteString(strconv.Itoa(e.U))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(e.V))
			b.WriteByte('\n')
		}
	} else {
		for _, v := range r.Tour {
			b.WriteString(strconv.Itoa(v))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	n, err := io.WriteString(w, b.String())

	return int64(n), err
}
