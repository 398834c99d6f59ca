package conllu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentence_Len(t *testing.T) {
	require.Equal(t, 1, NewSentence().Len())

	sent := NewSentence(&Token{Form: "a"}, &Token{Form: "b"})
	require.Equal(t, 3, sent.Len())
}

func TestSentence_Append(t *testing.T) {
	sent := NewSentence()
	sent.Append(&Token{Form: "a"})
	sent.Append(&Token{Form: "b"})

	require.Equal(t, 3, sent.Len())
	require.Equal(t, "b", sent.Token(2).Form)
}

func TestSentence_Token_RootPanics(t *testing.T) {
	sent := NewSentence(&Token{Form: "a"})

	require.True(t, sent.IsRoot(0))
	require.Panics(t, func() { sent.Token(0) })
}

func TestSentence_Token_OutOfRangePanics(t *testing.T) {
	sent := NewSentence(&Token{Form: "a"})

	require.Panics(t, func() { sent.Token(2) })
	require.Panics(t, func() { sent.Token(-1) })
}

func TestSentence_String_Rows(t *testing.T) {
	feats, err := ParseFeatures("Case=Nom")
	require.NoError(t, err)

	sent := NewSentence(
		&Token{Form: "dogs", Lemma: "dog", UPos: "NOUN", XPos: "NNS", Feats: feats, Head: 2, DepRel: "nsubj"},
		&Token{Form: "bark", UPos: "VERB", Head: 0, DepRel: "root", Misc: ParseMisc("SpaceAfter=No")},
	)

	want := "1\tdogs\tdog\tNOUN\tNNS\tCase=Nom\t2\tnsubj\t_\t_\n" +
		"2\tbark\t_\tVERB\t_\t_\t0\troot\t_\tSpaceAfter=No\n"
	require.Equal(t, want, sent.String())
}
