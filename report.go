package depeval

import (
	"fmt"
	"io"
)

// Result holds the aggregate attachment counts of one scoring run.
type Result struct {
	CorrectHead      int
	CorrectHeadLabel int
	Total            int
}

// UAS returns the unlabeled attachment score: the fraction of tokens
// whose predicted head matches the gold head. NaN when Total is zero.
func (r Result) UAS() float64 {
	return float64(r.CorrectHead) / float64(r.Total)
}

// LAS returns the labeled attachment score: the fraction of tokens
// whose predicted head and relation label both match gold. NaN when
// Total is zero.
func (r Result) LAS() float64 {
	return float64(r.CorrectHeadLabel) / float64(r.Total)
}

// WriteSummary writes the two headline metrics to four decimal places,
// one per line.
func (r Result) WriteSummary(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "UAS: %.4f\n", r.UAS()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "LAS: %.4f\n", r.LAS())
	return err
}
