package design

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Row is one line of the row-oriented (x1, n, c) view of a design. The
// external search solver hands its chosen assignment back in this shape.
type Row struct {
	X1 int
	N  int
	C  CriticalValue
}

// Rows returns the design as (x1, n, c) triples in ascending x1 order.
func (d *Design) Rows() []Row {
	rows := make([]Row, len(d.n))
	for x1 := range d.n {
		rows[x1] = Row{X1: x1, N: d.n[x1], C: d.c[x1]}
	}
	return rows
}

// FromRows builds a design from solver output given as (x1, n, c) triples.
// Rows may arrive in any order but must cover x1 = 0..len(rows)-1 exactly
// once.
func FromRows(rows []Row) (*Design, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	n := make([]int, len(rows))
	c := make([]CriticalValue, len(rows))
	seen := make([]bool, len(rows))
	for _, r := range rows {
		if r.X1 < 0 || r.X1 >= len(rows) || seen[r.X1] {
			return nil, fmt.Errorf("%w: x1 = %d", ErrRowCoverage, r.X1)
		}
		seen[r.X1] = true
		n[r.X1] = r.N
		c[r.X1] = r.C
	}
	return New(n, c)
}

// WriteTable renders the design as an aligned (x1, n, c) table.
func (d *Design) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "x1\tn\tc")
	fmt.Fprintln(tw, "--\t-\t-")
	for _, r := range d.Rows() {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", r.X1, r.N, r.C)
	}
	return tw.Flush()
}
