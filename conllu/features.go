package conllu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seqlab/layertag/errs"
)

const (
	// Placeholder marks an empty column in CoNLL-U, including an empty
	// feature or miscellaneous map.
	Placeholder = "_"

	entrySeparator    = "|"
	keyValueSeparator = "="
)

// Features is a morphological feature map. The canonical string form joins
// key=value entries with "|" in sorted key order; an empty map renders to
// the "_" placeholder.
type Features map[string]string

// ParseFeatures parses the CoNLL-U feature column. The "_" placeholder
// yields an empty map. Entries without a "=" separator are rejected with an
// error wrapping errs.ErrMalformedFeatures.
func ParseFeatures(s string) (Features, error) {
	feats := Features{}
	if s == Placeholder {
		return feats, nil
	}

	for _, entry := range strings.Split(s, entrySeparator) {
		key, value, found := strings.Cut(entry, keyValueSeparator)
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", errs.ErrMalformedFeatures, s)
		}
		feats[key] = value
	}

	return feats, nil
}

// String renders the map in its canonical form. The rendering is stable:
// parsing it back yields an equal map.
func (f Features) String() string {
	if len(f) == 0 {
		return Placeholder
	}

	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(entrySeparator)
		}
		sb.WriteString(key)
		sb.WriteString(keyValueSeparator)
		sb.WriteString(f[key])
	}

	return sb.String()
}
