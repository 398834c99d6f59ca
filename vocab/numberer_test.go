package vocab

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seqlab/layertag/errs"
)

func TestNumberer_Number_DenseInsertionOrder(t *testing.T) {
	n := NewNumberer()

	for i, label := range []string{"NOUN", "VERB", "DET"} {
		idx, err := n.Number(label)
		require.NoError(t, err)
		require.Equal(t, i, idx)
	}

	// Numbering a known label does not grow the vocabulary.
	idx, err := n.Number("VERB")
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Equal(t, 3, n.Len())
}

func TestNumberer_Label(t *testing.T) {
	n := NewNumberer()
	_, err := n.Number("NOUN")
	require.NoError(t, err)

	label, ok := n.Label(0)
	require.True(t, ok)
	require.Equal(t, "NOUN", label)

	_, ok = n.Label(1)
	require.False(t, ok)
	_, ok = n.Label(-1)
	require.False(t, ok)
}

func TestNumberer_Frozen_UnknownLabel(t *testing.T) {
	n := NewNumberer()
	_, err := n.Number("NOUN")
	require.NoError(t, err)

	n.Freeze()
	require.True(t, n.Frozen())

	idx, err := n.Number("NOUN")
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	_, err = n.Number("VERB")
	require.ErrorIs(t, err, errs.ErrUnknownLabel)
	require.Equal(t, 1, n.Len())
}

func TestNumberer_JSONRoundTrip(t *testing.T) {
	n := NewNumberer()
	for _, label := range []string{"NOUN", "VERB", "DET"} {
		_, err := n.Number(label)
		require.NoError(t, err)
	}

	data, err := json.Marshal(n)
	require.NoError(t, err)

	loaded := NewNumberer()
	require.NoError(t, json.Unmarshal(data, loaded))
	require.True(t, loaded.Frozen())
	require.Equal(t, 3, loaded.Len())

	idx, ok := loaded.Index("DET")
	require.True(t, ok)
	require.Equal(t, 2, idx)

	label, ok := loaded.Label(1)
	require.True(t, ok)
	require.Equal(t, "VERB", label)
}

func TestNumberer_UnmarshalJSON_ChecksumMismatch(t *testing.T) {
	n := NewNumberer()
	_, err := n.Number("NOUN")
	require.NoError(t, err)

	data, err := json.Marshal(n)
	require.NoError(t, err)

	// Tamper with the label list, keeping the stored checksum.
	tampered := strings.Replace(string(data), "NOUN", "VERB", 1)

	loaded := NewNumberer()
	err = json.Unmarshal([]byte(tampered), loaded)
	require.ErrorIs(t, err, errs.ErrVocabChecksum)
}

func TestNumberer_UnmarshalJSON_BadChecksumField(t *testing.T) {
	loaded := NewNumberer()
	err := json.Unmarshal([]byte(`{"labels":["NOUN"],"checksum":"not-hex"}`), loaded)
	require.ErrorIs(t, err, errs.ErrVocabChecksum)
}
