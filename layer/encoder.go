package layer

import (
	"fmt"

	"github.com/seqlab/layertag/errs"
)

// EncodingProb is one ranked label candidate for a token position, as
// produced by a tagging model.
type EncodingProb struct {
	// Encoding is the candidate label.
	Encoding string
	// Prob is the model's confidence for this candidate.
	Prob float64
}

// SentenceEncoder encodes a sentence into one label per real token.
type SentenceEncoder interface {
	Encode(sentence LayerValue) ([]string, error)
}

// SentenceDecoder applies per-position ranked label candidates to a
// sentence.
type SentenceDecoder interface {
	Decode(labels [][]EncodingProb, sentence LayerValue) error
}

// LayerEncoder encodes and decodes one annotation layer. It is an immutable
// value wrapping exactly one Layer; its equality derives from that layer,
// and it is safe to share across concurrent Encode calls on different
// sentences.
type LayerEncoder struct {
	layer Layer
}

var (
	_ SentenceEncoder = LayerEncoder{}
	_ SentenceDecoder = LayerEncoder{}
)

// NewLayerEncoder returns an encoder for the given layer.
func NewLayerEncoder(layer Layer) LayerEncoder {
	return LayerEncoder{layer: layer}
}

// Layer returns the wrapped layer.
func (e LayerEncoder) Layer() Layer { return e.layer }

// Encode returns one label per real token, in ascending index order. A
// sentence of n nodes yields exactly n-1 labels.
//
// When a token resolves to no value for the layer, Encode fails with an
// error wrapping errs.ErrMissingLabel that names the token's surface form:
// a silently skipped token would corrupt positional alignment with the
// label sequence.
func (e LayerEncoder) Encode(sentence LayerValue) ([]string, error) {
	labels := make([]string, 0, sentence.Len()-1)

	for idx := 1; idx < sentence.Len(); idx++ {
		label, ok := sentence.Value(idx, e.layer)
		if !ok {
			return nil, fmt.Errorf("%w: token %q has no value for layer %s",
				errs.ErrMissingLabel, sentence.Form(idx), e.layer)
		}
		labels = append(labels, label)
	}

	return labels, nil
}

// Decode writes the top-ranked candidate of each position into the
// sentence. labels must hold exactly one candidate list per real token;
// Decode panics on a length mismatch, since label/token alignment is an
// invariant the caller upholds, not a data condition. A position with an
// empty candidate list is left unmodified: the model abstained.
//
// Candidates beyond the first are not consulted here; the ranking is
// carried for consumers that re-score or search over label sequences.
func (e LayerEncoder) Decode(labels [][]EncodingProb, sentence LayerValue) error {
	if len(labels) != sentence.Len()-1 {
		panic(fmt.Sprintf("layer: labels and sentence length mismatch: %d labels for %d tokens",
			len(labels), sentence.Len()-1))
	}

	for idx, candidates := range labels {
		if len(candidates) == 0 {
			continue
		}
		if err := sentence.SetValue(idx+1, e.layer, candidates[0].Encoding); err != nil {
			return err
		}
	}

	return nil
}
