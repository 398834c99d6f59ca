package layer

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/seqlab/layertag/errs"
)

// Kind discriminates the closed set of layer variants. Switches over Kind
// should be exhaustive so that adding a variant is a compile-visible change
// at every consumption site.
type Kind uint8

const (
	// KindUPos selects the universal part-of-speech tag.
	KindUPos Kind = iota + 1
	// KindXPos selects the language-specific part-of-speech tag.
	KindXPos
	// KindFeature selects one named entry of the morphological feature map.
	KindFeature
	// KindFeatureString selects the whole feature map as one string.
	KindFeatureString
	// KindMisc selects one named entry of the miscellaneous map.
	KindMisc
)

// Serialized tags, shared by the JSON and YAML forms.
const (
	tagUPos          = "upos"
	tagXPos          = "xpos"
	tagFeature       = "feature"
	tagFeatureString = "feature_string"
	tagMisc          = "misc"
)

func (k Kind) String() string {
	switch k {
	case KindUPos:
		return tagUPos
	case KindXPos:
		return tagXPos
	case KindFeature:
		return tagFeature
	case KindFeatureString:
		return tagFeatureString
	case KindMisc:
		return tagMisc
	default:
		return "unknown"
	}
}

// Layer selects one annotation slot of a token. It is an immutable,
// comparable value; construct it with UPos, XPos, FeatureString, Feature,
// FeatureWithDefault, Misc or MiscWithDefault. The zero Layer is invalid.
//
// The Feature and Misc variants carry a key into the token's feature or
// miscellaneous map plus an optional default, returned when the key is
// absent. For Misc the default is not substituted for a key that is present
// as a bare flag; a flag without value reads as "no value" regardless of the
// default.
type Layer struct {
	kind       Kind
	feature    string
	defaultVal string
	hasDefault bool
}

// UPos returns the universal part-of-speech tag layer.
func UPos() Layer { return Layer{kind: KindUPos} }

// XPos returns the language-specific part-of-speech tag layer.
func XPos() Layer { return Layer{kind: KindXPos} }

// FeatureString returns the layer addressing the entire morphological
// feature map rendered as a single delimited string.
func FeatureString() Layer { return Layer{kind: KindFeatureString} }

// Feature returns the layer for one named morphological feature with no
// default; an absent key reads as no value.
func Feature(feature string) Layer {
	return Layer{kind: KindFeature, feature: feature}
}

// FeatureWithDefault returns the layer for one named morphological feature,
// reading def when the key is absent.
func FeatureWithDefault(feature, def string) Layer {
	return Layer{kind: KindFeature, feature: feature, defaultVal: def, hasDefault: true}
}

// Misc returns the layer for one named miscellaneous entry with no default.
func Misc(feature string) Layer {
	return Layer{kind: KindMisc, feature: feature}
}

// MiscWithDefault returns the layer for one named miscellaneous entry,
// reading def when the key is absent. A key present as a bare flag still
// reads as no value.
func MiscWithDefault(feature, def string) Layer {
	return Layer{kind: KindMisc, feature: feature, defaultVal: def, hasDefault: true}
}

// Kind returns the variant of the layer.
func (l Layer) Kind() Kind { return l.kind }

// FeatureName returns the map key addressed by a Feature or Misc layer. It
// is empty for the other variants.
func (l Layer) FeatureName() string { return l.feature }

// Default returns the fallback value of a Feature or Misc layer and whether
// one was configured.
func (l Layer) Default() (string, bool) { return l.defaultVal, l.hasDefault }

func (l Layer) String() string {
	switch l.kind {
	case KindFeature, KindMisc:
		return fmt.Sprintf("%s(%s)", l.kind, l.feature)
	default:
		return l.kind.String()
	}
}

// layerPayload is the serialized body of the Feature and Misc variants.
type layerPayload struct {
	Feature string  `json:"feature" yaml:"feature"`
	Default *string `json:"default,omitempty" yaml:"default,omitempty"`
}

func (l Layer) payload() layerPayload {
	p := layerPayload{Feature: l.feature}
	if l.hasDefault {
		def := l.defaultVal
		p.Default = &def
	}
	return p
}

func fromPayload(kind Kind, p layerPayload) Layer {
	l := Layer{kind: kind, feature: p.Feature}
	if p.Default != nil {
		l.defaultVal = *p.Default
		l.hasDefault = true
	}
	return l
}

// MarshalJSON renders the layer in its externally tagged configuration
// form: plain strings "upos", "xpos" and "feature_string" for the unit
// variants, and single-key objects {"feature": {...}} / {"misc": {...}} for
// the parameterized ones.
func (l Layer) MarshalJSON() ([]byte, error) {
	switch l.kind {
	case KindUPos, KindXPos, KindFeatureString:
		return json.Marshal(l.kind.String())
	case KindFeature, KindMisc:
		return json.Marshal(map[string]layerPayload{l.kind.String(): l.payload()})
	default:
		return nil, fmt.Errorf("%w: invalid layer kind %d", errs.ErrUnknownLayer, l.kind)
	}
}

// UnmarshalJSON parses the form produced by MarshalJSON.
func (l *Layer) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		return l.fromTag(tag, nil)
	}

	var tagged map[string]layerPayload
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrUnknownLayer, data)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("%w: expected a single layer tag, got %d", errs.ErrUnknownLayer, len(tagged))
	}
	for tag, p := range tagged {
		payload := p
		return l.fromTag(tag, &payload)
	}

	return nil
}

// MarshalYAML mirrors the JSON form for YAML configuration files.
func (l Layer) MarshalYAML() (any, error) {
	switch l.kind {
	case KindUPos, KindXPos, KindFeatureString:
		return l.kind.String(), nil
	case KindFeature, KindMisc:
		return map[string]layerPayload{l.kind.String(): l.payload()}, nil
	default:
		return nil, fmt.Errorf("%w: invalid layer kind %d", errs.ErrUnknownLayer, l.kind)
	}
}

// UnmarshalYAML parses the form produced by MarshalYAML.
func (l *Layer) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var tag string
		if err := node.Decode(&tag); err != nil {
			return err
		}
		return l.fromTag(tag, nil)
	}

	var tagged map[string]layerPayload
	if err := node.Decode(&tagged); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnknownLayer, err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("%w: expected a single layer tag, got %d", errs.ErrUnknownLayer, len(tagged))
	}
	for tag, p := range tagged {
		payload := p
		return l.fromTag(tag, &payload)
	}

	return nil
}

func (l *Layer) fromTag(tag string, p *layerPayload) error {
	switch tag {
	case tagUPos:
		*l = UPos()
	case tagXPos:
		*l = XPos()
	case tagFeatureString:
		*l = FeatureString()
	case tagFeature, tagMisc:
		if p == nil {
			return fmt.Errorf("%w: %s requires a feature field", errs.ErrUnknownLayer, tag)
		}
		kind := KindFeature
		if tag == tagMisc {
			kind = KindMisc
		}
		*l = fromPayload(kind, *p)
	default:
		return fmt.Errorf("%w: %q", errs.ErrUnknownLayer, tag)
	}

	return nil
}
