// Package layer implements annotation-layer selectors and the encode/decode
// contract between dependency-tree sentences and flat per-token labels.
//
// A sequence-tagging model consumes and produces one plain string label per
// token position, while a real sentence carries structured annotation: part
// of speech tags, a morphological feature map, and an open miscellaneous
// map. A Layer selects one of those annotation slots; a LayerEncoder encodes
// the selected slot of every token into a label sequence, and decodes ranked
// label predictions back into the sentence.
//
// The encoder is written against the LayerValue interface rather than a
// concrete sentence type, so any sentence representation that can expose
// per-token slot access can be tagged. The conllu package provides one such
// implementation.
//
// # Basic Usage
//
//	enc := layer.NewLayerEncoder(layer.UPos())
//
//	// Sentence -> labels, one per real token.
//	labels, err := enc.Encode(sent)
//
//	// Ranked model predictions -> sentence mutation.
//	err = enc.Decode(predictions, sent)
//
// Layer and LayerEncoder are immutable values; they can be shared freely
// across goroutines encoding different sentences. A single sentence must not
// be decoded into concurrently.
package layer
