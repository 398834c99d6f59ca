package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seqlab/layertag/conllu"
	"github.com/seqlab/layertag/errs"
	"github.com/seqlab/layertag/layer"
	"github.com/seqlab/layertag/vocab"
)

func posSentence() *conllu.Sentence {
	return conllu.NewSentence(
		&conllu.Token{Form: "the", UPos: "DET"},
		&conllu.Token{Form: "dog", UPos: "NOUN"},
		&conllu.Token{Form: "barks", UPos: "VERB"},
		&conllu.Token{Form: "loudly", UPos: "ADV"},
	)
}

func TestCategoricalEncoder_Encode_AssignsDenseIndices(t *testing.T) {
	enc := vocab.NewCategoricalEncoder(
		layer.NewLayerEncoder(layer.UPos()), vocab.NewNumberer())

	indices, err := enc.Encode(posSentence())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, indices)

	// Repeated labels reuse their index.
	indices, err = enc.Encode(conllu.NewSentence(
		&conllu.Token{Form: "cats", UPos: "NOUN"},
		&conllu.Token{Form: "purr", UPos: "VERB"},
	))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, indices)
	require.Equal(t, 4, enc.Numberer().Len())
}

func TestCategoricalEncoder_Encode_FrozenUnknownLabel(t *testing.T) {
	numberer := vocab.NewNumberer()
	_, err := numberer.Number("DET")
	require.NoError(t, err)
	numberer.Freeze()

	enc := vocab.NewCategoricalEncoder(layer.NewLayerEncoder(layer.UPos()), numberer)

	_, err = enc.Encode(posSentence())
	require.ErrorIs(t, err, errs.ErrUnknownLabel)
}

func TestCategoricalEncoder_Decode_RoundTrip(t *testing.T) {
	numberer := vocab.NewNumberer()
	enc := vocab.NewCategoricalEncoder(layer.NewLayerEncoder(layer.UPos()), numberer)

	indices, err := enc.Encode(posSentence())
	require.NoError(t, err)
	numberer.Freeze()

	bare := conllu.NewSentence(
		&conllu.Token{Form: "the"},
		&conllu.Token{Form: "dog"},
		&conllu.Token{Form: "barks"},
		&conllu.Token{Form: "loudly"},
	)

	labels := make([][]vocab.IndexProb, len(indices))
	for i, idx := range indices {
		labels[i] = []vocab.IndexProb{{Index: idx, Prob: 1.0}}
	}
	require.NoError(t, enc.Decode(labels, bare))

	require.Equal(t, "DET", bare.Token(1).UPos)
	require.Equal(t, "NOUN", bare.Token(2).UPos)
	require.Equal(t, "VERB", bare.Token(3).UPos)
	require.Equal(t, "ADV", bare.Token(4).UPos)
}

func TestCategoricalEncoder_Decode_UnknownIndexSkipped(t *testing.T) {
	numberer := vocab.NewNumberer()
	_, err := numberer.Number("NOUN")
	require.NoError(t, err)
	numberer.Freeze()

	enc := vocab.NewCategoricalEncoder(layer.NewLayerEncoder(layer.UPos()), numberer)

	sent := conllu.NewSentence(
		&conllu.Token{Form: "the", UPos: "DET"},
		&conllu.Token{Form: "dog"},
	)

	// Position 1 only has an out-of-vocabulary candidate and behaves like an
	// abstained position; position 2 falls back to its second candidate.
	err = enc.Decode([][]vocab.IndexProb{
		{{Index: 99, Prob: 1.0}},
		{{Index: 42, Prob: 0.6}, {Index: 0, Prob: 0.4}},
	}, sent)
	require.NoError(t, err)

	require.Equal(t, "DET", sent.Token(1).UPos)
	require.Equal(t, "NOUN", sent.Token(2).UPos)
}
