// Package depeval scores predicted dependency parses against a gold
// standard. For every token it compares the predicted head and
// relation label to the gold values, accumulating unlabeled and
// labeled attachment scores plus confusion matrices over relation
// labels and head distances.
//
// # Quick Start
//
//	scorer := depeval.NewScorer()
//	if err := scorer.Score(ctx, gold, predicted); err != nil {
//	    log.Fatal(err)
//	}
//
//	result := scorer.Result()
//	fmt.Printf("UAS: %.4f LAS: %.4f\n", result.UAS(), result.LAS())
//	fmt.Print(scorer.Deprels())
//
// # Inputs
//
// Score consumes two SentenceReader streams that must yield the same
// sentences with identical surface forms; misaligned inputs stop the
// run with ErrAlignment. The internal/treebank package adapts CoNLL-X
// files to the SentenceReader interface.
//
// # Concurrency
//
// A Scorer accumulates the state of a single run and is not safe for
// concurrent use. Score feeds it strictly sequentially.
package depeval
