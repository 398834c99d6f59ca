package conllu

import (
	"fmt"

	"github.com/seqlab/layertag/layer"
	"github.com/seqlab/layertag/lemma"
)

// Sentence implements the generic capabilities so that layer encoders and
// lemmatizers can operate on it without knowing the concrete type.
var (
	_ layer.LayerValue = (*Sentence)(nil)
	_ lemma.Lemmas     = (*Sentence)(nil)
)

// Form returns the surface form of the token at idx.
func (s *Sentence) Form(idx int) string {
	return s.Token(idx).Form
}

// Value reads the slot selected by l at idx, per the layer.LayerValue
// contract.
func (s *Sentence) Value(idx int, l layer.Layer) (string, bool) {
	tok := s.Token(idx)

	switch l.Kind() {
	case layer.KindUPos:
		return tok.UPos, tok.UPos != ""
	case layer.KindXPos:
		return tok.XPos, tok.XPos != ""
	case layer.KindFeatureString:
		return tok.Feats.String(), true
	case layer.KindFeature:
		if value, ok := tok.Feats[l.FeatureName()]; ok {
			return value, true
		}
		return l.Default()
	case layer.KindMisc:
		value, hasValue, ok := tok.Misc.Lookup(l.FeatureName())
		switch {
		case !ok:
			return l.Default()
		case !hasValue:
			// A bare flag has no value to read; the default only covers
			// absent keys.
			return "", false
		default:
			return value, true
		}
	default:
		panic(fmt.Sprintf("conllu: unhandled layer kind %d", l.Kind()))
	}
}

// SetValue writes value into the slot selected by l at idx, per the
// layer.LayerValue contract.
func (s *Sentence) SetValue(idx int, l layer.Layer, value string) error {
	tok := s.Token(idx)

	switch l.Kind() {
	case layer.KindUPos:
		tok.UPos = value
	case layer.KindXPos:
		tok.XPos = value
	case layer.KindFeature:
		if tok.Feats == nil {
			tok.Feats = Features{}
		}
		tok.Feats[l.FeatureName()] = value
	case layer.KindFeatureString:
		feats, err := ParseFeatures(value)
		if err != nil {
			return err
		}
		tok.Feats = feats
	case layer.KindMisc:
		if tok.Misc == nil {
			tok.Misc = Misc{}
		}
		tok.Misc.Set(l.FeatureName(), value)
	default:
		panic(fmt.Sprintf("conllu: unhandled layer kind %d", l.Kind()))
	}

	return nil
}

// Lemma returns the lemma of the token at idx and whether one is set.
func (s *Sentence) Lemma(idx int) (string, bool) {
	tok := s.Token(idx)
	return tok.Lemma, tok.Lemma != ""
}

// SetLemma sets the lemma of the token at idx.
func (s *Sentence) SetLemma(idx int, value string) {
	s.Token(idx).Lemma = value
}
