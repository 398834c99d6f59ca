// Package lemma defines the form/lemma capability of sentence
// representations. It is separate from the layer capability because
// lemmatization consumers only need form and lemma access, not generic
// slot addressing.
package lemma

// Lemmas is implemented by sentence representations that expose per-token
// lemmas. As with layer.LayerValue, node 0 is the synthetic root and
// addressing it panics.
type Lemmas interface {
	// Form returns the surface form of the token at idx.
	Form(idx int) string

	// Len returns the node count including the root.
	Len() int

	// Lemma returns the lemma of the token at idx and whether one is set.
	Lemma(idx int) (string, bool)

	// SetLemma sets the lemma of the token at idx.
	SetLemma(idx int, lemma string)
}
