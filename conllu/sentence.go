package conllu

import (
	"fmt"
	"strconv"
	"strings"
)

// Token is one real node of a dependency-tree sentence. Unset string
// columns are empty; nil Feats and Misc maps are treated as empty.
type Token struct {
	Form   string
	Lemma  string
	UPos   string
	XPos   string
	Feats  Features
	Misc   Misc
	Head   int
	DepRel string
}

// Sentence is a dependency-tree sentence with a synthetic root node at
// index 0 and tokens at indices 1..Len()-1. Head references use the same
// index space, with 0 pointing at the root.
type Sentence struct {
	tokens []*Token
}

// NewSentence returns a sentence over the given tokens, which occupy
// indices 1..len(tokens).
func NewSentence(tokens ...*Token) *Sentence {
	return &Sentence{tokens: tokens}
}

// Append adds a token at the end of the sentence.
func (s *Sentence) Append(tok *Token) {
	s.tokens = append(s.tokens, tok)
}

// Len returns the node count including the root.
func (s *Sentence) Len() int {
	return len(s.tokens) + 1
}

// IsRoot reports whether idx addresses the synthetic root.
func (s *Sentence) IsRoot(idx int) bool {
	return idx == 0
}

// Token returns the token at idx. Addressing the root is a caller bug and
// panics; so does an out of range index.
func (s *Sentence) Token(idx int) *Token {
	if s.IsRoot(idx) {
		panic("conllu: attempt to access the root node")
	}
	if idx < 0 || idx >= s.Len() {
		panic(fmt.Sprintf("conllu: node index %d out of range for sentence of length %d", idx, s.Len()))
	}

	return s.tokens[idx-1]
}

// String renders the sentence as CoNLL-U rows, one token per line. Unset
// columns render to the "_" placeholder.
func (s *Sentence) String() string {
	var sb strings.Builder
	for i, tok := range s.tokens {
		fields := []string{
			strconv.Itoa(i + 1),
			tok.Form,
			tok.Lemma,
			tok.UPos,
			tok.XPos,
			tok.Feats.String(),
			strconv.Itoa(tok.Head),
			tok.DepRel,
			Placeholder, // enhanced dependencies are not carried
			tok.Misc.String(),
		}
		for j, field := range fields {
			if field == "" {
				fields[j] = Placeholder
			}
		}
		sb.WriteString(strings.Join(fields, "\t"))
		sb.WriteByte('\n')
	}

	return sb.String()
}
