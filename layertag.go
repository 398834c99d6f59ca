// Package layertag converts between structured annotation on
// dependency-tree sentences and the flat per-token string labels a
// sequence-tagging model consumes and produces.
//
// A sentence carries part-of-speech tags, a morphological feature map and a
// miscellaneous map per token; a model only sees one label per position.
// The layer package selects which annotation slot is being tagged and
// implements the encode/decode contract; the conllu package provides a
// CoNLL-U sentence representation implementing the required capabilities;
// the vocab package maps labels to dense indices at the model boundary.
//
// # Basic Usage
//
// Encoding the universal part-of-speech layer of a sentence:
//
//	import (
//		"github.com/seqlab/layertag"
//		"github.com/seqlab/layertag/layer"
//	)
//
//	enc := layertag.NewEncoder(layer.UPos())
//	labels, err := enc.Encode(sent)
//
// Applying ranked model predictions back onto a sentence:
//
//	err := enc.Decode(predictions, sent)
//
// Layers usually come from configuration. The serialized form uses the tags
// upos, xpos, feature, feature_string and misc:
//
//	enc, err := layertag.EncoderFromYAML([]byte(`feature: {feature: Case, default: Nom}`))
//
// This package provides convenient top-level wrappers around the layer
// package; for fine-grained control, use the subpackages directly.
package layertag

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/seqlab/layertag/layer"
)

// NewEncoder returns a layer encoder for the given layer.
func NewEncoder(l layer.Layer) layer.LayerEncoder {
	return layer.NewLayerEncoder(l)
}

// EncoderFromJSON constructs a layer encoder from a serialized layer
// selector in JSON form.
func EncoderFromJSON(data []byte) (layer.LayerEncoder, error) {
	var l layer.Layer
	if err := json.Unmarshal(data, &l); err != nil {
		return layer.LayerEncoder{}, err
	}

	return layer.NewLayerEncoder(l), nil
}

// EncoderFromYAML constructs a layer encoder from a serialized layer
// selector in YAML form.
func EncoderFromYAML(data []byte) (layer.LayerEncoder, error) {
	var l layer.Layer
	if err := yaml.Unmarshal(data, &l); err != nil {
		return layer.LayerEncoder{}, err
	}

	return layer.NewLayerEncoder(l), nil
}
