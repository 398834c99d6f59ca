package vocab

import "github.com/seqlab/layertag/layer"

// IndexProb is one ranked label-index candidate for a token position, the
// index-space counterpart of layer.EncodingProb.
type IndexProb struct {
	Index int
	Prob  float64
}

// Coder is the string-label encoder/decoder a CategoricalEncoder wraps.
// layer.LayerEncoder satisfies it.
type Coder interface {
	layer.SentenceEncoder
	layer.SentenceDecoder
}

// CategoricalEncoder translates between the wrapped coder's string labels
// and dense vocabulary indices. Encoding with an unfrozen numberer extends
// the vocabulary (training); with a frozen one, unseen labels fail.
type CategoricalEncoder struct {
	inner    Coder
	numberer *Numberer
}

// NewCategoricalEncoder wraps inner with the given vocabulary.
func NewCategoricalEncoder(inner Coder, numberer *Numberer) *CategoricalEncoder {
	return &CategoricalEncoder{inner: inner, numberer: numberer}
}

// Numberer returns the wrapped vocabulary.
func (c *CategoricalEncoder) Numberer() *Numberer {
	return c.numberer
}

// Encode encodes the sentence through the inner coder and numbers each
// label, yielding one index per real token.
func (c *CategoricalEncoder) Encode(sentence layer.LayerValue) ([]int, error) {
	labels, err := c.inner.Encode(sentence)
	if err != nil {
		return nil, err
	}

	indices := make([]int, len(labels))
	for i, label := range labels {
		idx, err := c.numberer.Number(label)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}

	return indices, nil
}

// Decode maps ranked index candidates back to string labels and applies
// them through the inner coder. Candidates with indices outside the
// vocabulary are dropped; a position whose candidates are all unknown is
// treated like an abstained position and left unmodified.
func (c *CategoricalEncoder) Decode(labels [][]IndexProb, sentence layer.LayerValue) error {
	decoded := make([][]layer.EncodingProb, len(labels))
	for i, candidates := range labels {
		position := make([]layer.EncodingProb, 0, len(candidates))
		for _, candidate := range candidates {
			label, ok := c.numberer.Label(candidate.Index)
			if !ok {
				continue
			}
			position = append(position, layer.EncodingProb{Encoding: label, Prob: candidate.Prob})
		}
		decoded[i] = position
	}

	return c.inner.Decode(decoded, sentence)
}
