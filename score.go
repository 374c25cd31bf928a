package depeval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Scorer compares a predicted dependency parse against a gold
// standard. It accumulates head and label attachment counts plus
// confusion matrices over relation labels and head distances. A Scorer
// holds the state of exactly one run and is not safe for concurrent
// use; all mutation happens inside the sequential per-token loop.
type Scorer struct {
	deprels   *Confusion[string]
	distances *Confusion[int]
	fields    *Confusion[string]

	keep      func(Token) bool
	goldField string
	predField string
	logger    *slog.Logger

	correctHead      int
	correctHeadLabel int
	total            int
	sentences        int
}

// NewScorer creates a Scorer ready for one scoring run.
func NewScorer(opts ...Option) *Scorer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Scorer{
		deprels:   NewConfusion[string]("Deprels"),
		distances: NewConfusion[int]("Dists"),
		fields:    NewConfusion[string]("Fields"),
		keep:      cfg.keep,
		goldField: cfg.goldField,
		predField: cfg.predField,
		logger:    cfg.logger,
	}
}

// Score walks both streams in lock step, scoring one sentence pair per
// iteration until both are exhausted. The streams must yield the same
// number of sentences; one stream ending before the other is an
// alignment error. The context is checked between sentence pairs.
func (s *Scorer) Score(ctx context.Context, gold, predicted SentenceReader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		goldSent, goldErr := gold.ReadSentence()
		predSent, predErr := predicted.ReadSentence()

		goldDone := errors.Is(goldErr, io.EOF)
		predDone := errors.Is(predErr, io.EOF)
		switch {
		case goldDone && predDone:
			s.logger.Debug("scoring complete",
				"sentences", s.sentences,
				"tokens", s.total)
			return nil
		case goldErr != nil && !goldDone:
			return fmt.Errorf("reading gold sentence %d: %w", s.sentences+1, goldErr)
		case predErr != nil && !predDone:
			return fmt.Errorf("reading predicted sentence %d: %w", s.sentences+1, predErr)
		case goldDone:
			return fmt.Errorf("%w: gold input ended after %d sentences, predicted input continues", ErrAlignment, s.sentences)
		case predDone:
			return fmt.Errorf("%w: predicted input ended after %d sentences, gold input continues", ErrAlignment, s.sentences)
		}

		if err := s.ScoreSentences(goldSent, predSent); err != nil {
			return fmt.Errorf("sentence %d: %w", s.sentences+1, err)
		}
	}
}

// ScoreSentences scores one aligned sentence pair. Both sentences are
// first reduced by the configured token filter; the reduced sentences
// must have equal length and identical surface forms position by
// position. Counters and matrices are updated per token at 1-based
// position idx: head distance |head-idx| feeds the distance matrix,
// the relation labels feed the label matrix, and the head and
// head-plus-label matches feed the attachment counters.
func (s *Scorer) ScoreSentences(gold, predicted Sentence) error {
	gold = s.filter(gold)
	predicted = s.filter(predicted)

	if len(gold) != len(predicted) {
		return fmt.Errorf("%w: gold has %d tokens, predicted has %d", ErrAlignment, len(gold), len(predicted))
	}

	for i := range gold {
		idx := i + 1
		g, p := gold[i], predicted[i]

		if g.Form != p.Form {
			return fmt.Errorf("%w: token %d: gold form %q, predicted form %q", ErrAlignment, idx, g.Form, p.Form)
		}
		if !g.HasDep {
			return fmt.Errorf("%w: gold token %d (%s)", ErrMissingHead, idx, g.Form)
		}
		if !p.HasDep {
			return fmt.Errorf("%w: predicted token %d (%s)", ErrMissingHead, idx, p.Form)
		}

		s.distances.Insert(dist(g.Head, idx), dist(p.Head, idx))
		s.deprels.Insert(g.DepRel, p.DepRel)

		if s.goldField != "" {
			if err := s.scoreFields(g, p, idx); err != nil {
				return err
			}
		}

		if p.Head == g.Head {
			s.correctHead++
			if p.DepRel == g.DepRel {
				s.correctHeadLabel++
			}
		}
		s.total++
	}

	s.sentences++
	return nil
}

// scoreFields feeds the field confusion matrix for one token pair.
func (s *Scorer) scoreFields(g, p Token, idx int) error {
	goldField, ok := g.Feature(s.goldField)
	if !ok {
		return fmt.Errorf("%w: gold token %d (%s) has no %q feature", ErrMissingFeature, idx, g.Form, s.goldField)
	}
	predField, ok := p.Feature(s.predField)
	if !ok {
		return fmt.Errorf("%w: predicted token %d (%s) has no %q feature", ErrMissingFeature, idx, p.Form, s.predField)
	}
	s.fields.Insert(goldField, predField)
	return nil
}

func (s *Scorer) filter(sent Sentence) Sentence {
	if s.keep == nil {
		return sent
	}
	kept := make(Sentence, 0, len(sent))
	for _, t := range sent {
		if s.keep(t) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Result returns the attachment counters accumulated so far.
func (s *Scorer) Result() Result {
	return Result{
		CorrectHead:      s.correctHead,
		CorrectHeadLabel: s.correctHeadLabel,
		Total:            s.total,
	}
}

// Deprels returns the relation label confusion matrix.
func (s *Scorer) Deprels() *Confusion[string] {
	return s.deprels
}

// Distances returns the head distance confusion matrix.
func (s *Scorer) Distances() *Confusion[int] {
	return s.distances
}

// Fields returns the topological field confusion matrix. It stays
// empty unless field scoring was enabled with WithFieldScoring.
func (s *Scorer) Fields() *Confusion[string] {
	return s.fields
}

// dist is the absolute distance between a token position and its head.
func dist(head, idx int) int {
	d := head - idx
	if d < 0 {
		d = -d
	}
	return d
}
