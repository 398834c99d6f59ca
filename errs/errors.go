// Package errs defines the sentinel errors returned by layertag packages.
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") to add context
// such as the offending token form or label value, so callers can test with
// errors.Is while still getting a descriptive message.
package errs

import "errors"

var (
	// ErrMissingLabel is returned by encoding when a token has no value for
	// the configured layer and the layer carries no default. A missing label
	// would break positional alignment between tokens and labels, so the
	// whole encode call is aborted.
	ErrMissingLabel = errors.New("missing label")

	// ErrMalformedFeatures is returned when a string written through the
	// feature-string layer cannot be parsed back into a feature map.
	ErrMalformedFeatures = errors.New("malformed feature string")

	// ErrUnknownLabel is returned by a frozen vocabulary when asked to
	// number a label it has never seen.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrVocabChecksum is returned when a serialized vocabulary fails its
	// integrity check on load, indicating the vocabulary does not match the
	// model it was saved with.
	ErrVocabChecksum = errors.New("vocabulary checksum mismatch")

	// ErrUnknownLayer is returned when a serialized layer selector carries a
	// tag outside the closed set upos, xpos, feature, feature_string, misc.
	ErrUnknownLayer = errors.New("unknown layer")
)
