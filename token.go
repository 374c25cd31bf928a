package depeval

// Token is a single syntactic word consumed by the scorer. Head is the
// 1-based sentence position of the token's governor, 0 for the
// artificial root. HasDep is false when the underlying corpus row
// carries no head relation at all, which makes the token unscorable.
type Token struct {
	Form   string
	Head   int
	DepRel string
	HasDep bool
	Feats  map[string]string
}

// Feature returns the named token feature. ok is false when the token
// has no such feature.
func (t Token) Feature(name string) (value string, ok bool) {
	value, ok = t.Feats[name]
	return value, ok
}

// Sentence is an ordered sequence of tokens.
type Sentence []Token

// SentenceReader yields the sentences of one input, in order.
// Implementations return io.EOF after the final sentence.
type SentenceReader interface {
	ReadSentence() (Sentence, error)
}
