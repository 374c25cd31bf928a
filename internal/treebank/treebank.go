// Package treebank reads CoNLL-X dependency treebanks and adapts them
// to the scorer's sentence stream interface.
package treebank

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/danieldk/conllx"

	"github.com/depeval/depeval"
)

// Reader decodes CoNLL-X input into scorer sentences.
type Reader struct {
	next func() (conllx.Sentence, error)
}

// NewReader creates a Reader over CoNLL-X input.
func NewReader(r io.Reader) *Reader {
	conll := conllx.NewReader(bufio.NewReader(r))
	return &Reader{next: conll.ReadSentence}
}

// ReadSentence returns the next sentence of the input, mapped to
// scorer tokens. It returns io.EOF after the final sentence.
func (r *Reader) ReadSentence() (depeval.Sentence, error) {
	tokens, err := r.next()
	if err != nil {
		return nil, err
	}

	sent := make(depeval.Sentence, 0, len(tokens))
	for _, tok := range tokens {
		sent = append(sent, mapToken(tok))
	}
	return sent, nil
}

// mapToken converts one CoNLL-X token. A row without both a head and a
// relation yields a token without a dependency, which the scorer
// rejects if it is ever scored.
func mapToken(tok conllx.Token) depeval.Token {
	var t depeval.Token

	if form, ok := tok.Form(); ok {
		t.Form = form
	}
	if head, ok := tok.Head(); ok {
		if rel, ok := tok.HeadRel(); ok {
			t.Head = int(head)
			t.DepRel = rel
			t.HasDep = true
		}
	}
	if features, ok := tok.Features(); ok {
		t.Feats = features.FeaturesMap()
	}

	return t
}

// File is a file-backed sentence reader.
type File struct {
	*Reader
	f *os.File
}

// Open opens a CoNLL-X treebank file for reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening treebank: %w", err)
	}

	return &File{Reader: NewReader(f), f: f}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}
