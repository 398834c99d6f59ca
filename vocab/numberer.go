// Package vocab maps string labels to dense indices at the model boundary.
//
// Tagging models work over a fixed label vocabulary: training assigns each
// distinct label a dense index, and the frozen vocabulary ships with the
// model. Numberer is that mapping; CategoricalEncoder composes it with a
// layer encoder so sentences encode straight to index sequences and model
// output decodes straight back.
package vocab

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/seqlab/layertag/errs"
)

// Numberer assigns dense indices to labels in insertion order. It grows on
// demand until frozen; a frozen numberer reports unknown labels instead of
// growing, so that inference cannot silently extend a vocabulary the model
// was not trained with.
//
// Numberer is not safe for concurrent use while unfrozen.
type Numberer struct {
	indices map[string]int
	labels  []string
	frozen  bool
}

// NewNumberer returns an empty, unfrozen numberer.
func NewNumberer() *Numberer {
	return &Numberer{indices: map[string]int{}}
}

// Number returns the index of label, assigning the next dense index when
// the label is new and the numberer is unfrozen. On a frozen numberer an
// unknown label yields an error wrapping errs.ErrUnknownLabel.
func (n *Numberer) Number(label string) (int, error) {
	if idx, ok := n.indices[label]; ok {
		return idx, nil
	}
	if n.frozen {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownLabel, label)
	}

	idx := len(n.labels)
	n.indices[label] = idx
	n.labels = append(n.labels, label)

	return idx, nil
}

// Index returns the index of label without assigning one.
func (n *Numberer) Index(label string) (int, bool) {
	idx, ok := n.indices[label]
	return idx, ok
}

// Label returns the label at idx.
func (n *Numberer) Label(idx int) (string, bool) {
	if idx < 0 || idx >= len(n.labels) {
		return "", false
	}

	return n.labels[idx], true
}

// Len returns the number of distinct labels.
func (n *Numberer) Len() int {
	return len(n.labels)
}

// Freeze stops the numberer from assigning new indices. Freezing is
// idempotent and cannot be undone.
func (n *Numberer) Freeze() {
	n.frozen = true
}

// Frozen reports whether the numberer is frozen.
func (n *Numberer) Frozen() bool {
	return n.frozen
}

// numbererJSON is the serialized vocabulary. The checksum covers the label
// list, so a vocabulary edited or truncated after training fails to load.
type numbererJSON struct {
	Labels   []string `json:"labels"`
	Checksum string   `json:"checksum"`
}

// checksum folds the label list into a stable 64-bit digest. Labels are
// length-prefixed so that list boundaries cannot be forged by relabeling.
func checksum(labels []string) uint64 {
	digest := xxhash.New()
	var buf [8]byte
	for _, label := range labels {
		n := len(label)
		for i := range buf {
			buf[i] = byte(n >> (8 * i))
		}
		_, _ = digest.Write(buf[:])
		_, _ = digest.WriteString(label)
	}

	return digest.Sum64()
}

// MarshalJSON serializes the vocabulary with its checksum. Frozenness is
// not serialized: a loaded vocabulary is always frozen, since it represents
// a finished label set.
func (n *Numberer) MarshalJSON() ([]byte, error) {
	return json.Marshal(numbererJSON{
		Labels:   n.labels,
		Checksum: strconv.FormatUint(checksum(n.labels), 16),
	})
}

// UnmarshalJSON loads a serialized vocabulary, verifying its checksum. A
// mismatch yields an error wrapping errs.ErrVocabChecksum. The loaded
// numberer is frozen.
func (n *Numberer) UnmarshalJSON(data []byte) error {
	var serialized numbererJSON
	if err := json.Unmarshal(data, &serialized); err != nil {
		return err
	}

	stored, err := strconv.ParseUint(serialized.Checksum, 16, 64)
	if err != nil {
		return fmt.Errorf("%w: unparseable checksum %q", errs.ErrVocabChecksum, serialized.Checksum)
	}
	if computed := checksum(serialized.Labels); computed != stored {
		return fmt.Errorf("%w: stored %016x, computed %016x", errs.ErrVocabChecksum, stored, computed)
	}

	n.labels = serialized.Labels
	n.indices = make(map[string]int, len(serialized.Labels))
	for idx, label := range serialized.Labels {
		n.indices[label] = idx
	}
	n.frozen = true

	return nil
}
