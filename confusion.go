package depeval

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Confusion is a square gold-by-predicted count matrix over classes of
// type V. Classes are indexed through an internal Numberer, so the
// matrix grows as new classes are observed and is always square with
// dimension equal to the number of known classes.
//
// Ratios derived from the matrix use IEEE division: a class with a
// zero row or column sum yields NaN, not an error.
type Confusion[V comparable] struct {
	name     string
	counts   [][]int
	numberer *Numberer[V]
}

// NewConfusion creates an empty confusion matrix with the given
// display name.
func NewConfusion[V comparable](name string) *Confusion[V] {
	return &Confusion[V]{
		name:     name,
		numberer: NewNumberer[V](),
	}
}

// Insert numbers both classes, growing the matrix as needed, and
// increments the (gold, predicted) cell by one.
func (c *Confusion[V]) Insert(gold, predicted V) {
	goldIdx := c.numberer.Number(gold)
	predIdx := c.numberer.Number(predicted)
	c.growTo(c.numberer.Len())
	c.counts[goldIdx][predIdx]++
}

// growTo extends the matrix to an n-by-n square. New rows and columns
// are zero-filled; existing counts keep their cell positions.
func (c *Confusion[V]) growTo(n int) {
	for len(c.counts) < n {
		c.counts = append(c.counts, make([]int, len(c.counts)))
		for i := range c.counts {
			c.counts[i] = append(c.counts[i], 0)
		}
	}
}

// Numberer exposes the class numbering. A class numbered through it
// without a matching Insert stays at zero counts.
func (c *Confusion[V]) Numberer() *Numberer[V] {
	return c.numberer
}

// Count returns the recorded count for the (gold, predicted) cell, or
// zero when either class has not been observed.
func (c *Confusion[V]) Count(gold, predicted V) int {
	goldIdx, ok := c.numberer.Index(gold)
	if !ok || goldIdx >= len(c.counts) {
		return 0
	}
	predIdx, ok := c.numberer.Index(predicted)
	if !ok || predIdx >= len(c.counts) {
		return 0
	}
	return c.counts[goldIdx][predIdx]
}

// Accuracy returns the fraction of all counts that lie on the
// diagonal. NaN for an empty matrix.
func (c *Confusion[V]) Accuracy() float64 {
	correct := 0
	total := 0
	for i, row := range c.counts {
		correct += row[i]
		for _, n := range row {
			total += n
		}
	}
	return float64(correct) / float64(total)
}

// rowTotal is the gold-side frequency of class idx.
func (c *Confusion[V]) rowTotal(idx int) int {
	total := 0
	for _, n := range c.counts[idx] {
		total += n
	}
	return total
}

// precision is the diagonal count of class idx over everything
// predicted as idx (column sum). NaN when the column is empty.
func (c *Confusion[V]) precision(idx int) float64 {
	colSum := 0
	for j := range c.counts {
		colSum += c.counts[j][idx]
	}
	return float64(c.counts[idx][idx]) / float64(colSum)
}

// classNames returns the rendered class names in numbering order.
func (c *Confusion[V]) classNames() []string {
	names := make([]string, c.numberer.Len())
	for i := range names {
		v, _ := c.numberer.Value(i)
		names[i] = fmt.Sprint(v)
	}
	return names
}

// rowCells returns the counts of row idx rendered as decimal strings.
func (c *Confusion[V]) rowCells(idx int) []string {
	cells := make([]string, len(c.counts[idx]))
	for j, n := range c.counts[idx] {
		cells[j] = strconv.Itoa(n)
	}
	return cells
}

// WriteAccuracies writes one line per class in numbering order: class
// name, gold-side total, and accuracy to four decimal places,
// tab-separated.
func (c *Confusion[V]) WriteAccuracies(w io.Writer) error {
	c.growTo(c.numberer.Len())
	for idx, name := range c.classNames() {
		total := c.rowTotal(idx)
		acc := float64(c.counts[idx][idx]) / float64(total)
		if _, err := fmt.Fprintf(w, "%s\t%d\t%.4f\n", name, total, acc); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes the full tabular rendering: a header line with the
// matrix name and all class names, one line per gold class with its
// raw counts and row accuracy, a divider, one line of per-class
// precision values, and a final overall accuracy line.
func (c *Confusion[V]) WriteTable(w io.Writer) error {
	c.growTo(c.numberer.Len())
	names := c.classNames()
	if _, err := fmt.Fprintf(w, "%s\t%s\n", c.name, strings.Join(names, "\t")); err != nil {
		return err
	}

	for idx, name := range names {
		acc := float64(c.counts[idx][idx]) / float64(c.rowTotal(idx))
		row := strings.Join(c.rowCells(idx), "\t")
		if _, err := fmt.Fprintf(w, "%s\t%s\t%.4f\n", name, row, acc); err != nil {
			return err
		}
	}

	var delim, precs string
	for i := range c.counts {
		delim += "\t____"
		precs += fmt.Sprintf("\t%.4f", c.precision(i))
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", delim, precs); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "acc: %.4f\n", c.Accuracy())
	return err
}

// WriteCounts writes the compact machine-readable form: one header
// line of class names joined by sep, then the raw counts of each gold
// row joined by the same separator.
func (c *Confusion[V]) WriteCounts(w io.Writer, sep string) error {
	c.growTo(c.numberer.Len())
	if _, err := fmt.Fprintln(w, strings.Join(c.classNames(), sep)); err != nil {
		return err
	}
	for idx := range c.counts {
		if _, err := fmt.Fprintln(w, strings.Join(c.rowCells(idx), sep)); err != nil {
			return err
		}
	}
	return nil
}

// String renders the matrix as written by WriteTable.
func (c *Confusion[V]) String() string {
	var sb strings.Builder
	_ = c.WriteTable(&sb) // strings.Builder writes cannot fail
	return sb.String()
}
