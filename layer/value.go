package layer

// LayerValue is the capability a sentence representation must provide for
// layer encoding and decoding. Node 0 is a synthetic root; real tokens live
// at indices 1..Len()-1. Addressing the root through any of these methods is
// a caller bug and implementations must panic rather than return data.
type LayerValue interface {
	// Form returns the surface form of the token at idx.
	Form(idx int) string

	// Len returns the node count including the root, so real tokens occupy
	// indices 1..Len()-1.
	Len() int

	// Value reads the slot selected by layer at idx. The second result
	// reports whether a value was resolved, after applying the layer's
	// default fallback:
	//
	//   - UPos/XPos: the stored tag, absent when unset.
	//   - FeatureString: the feature map rendered as one string; always
	//     present, an empty map renders to the representation's canonical
	//     empty marker.
	//   - Feature: the named key's value, else the layer default.
	//   - Misc: the named key's value when present with a value; no value
	//     when present as a bare flag; the layer default when absent.
	Value(idx int, layer Layer) (string, bool)

	// SetValue writes value into the slot selected by layer at idx. For
	// FeatureString the value is parsed as a full feature map and an error
	// wrapping errs.ErrMalformedFeatures is returned when it does not
	// parse. Feature and Misc insert or overwrite the single named key;
	// UPos and XPos overwrite the tag.
	SetValue(idx int, layer Layer, value string) error
}
