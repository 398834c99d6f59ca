package conllu

import (
	"sort"
	"strings"
)

// Misc is the open-ended miscellaneous annotation map. Unlike Features, an
// entry can be a bare flag: present in the map without an associated value.
// Each key is therefore in one of three states: absent, present as a flag,
// or present with a value.
type Misc map[string]MiscValue

// MiscValue is the payload of one miscellaneous entry. The zero MiscValue
// marks a bare flag.
type MiscValue struct {
	Value    string
	HasValue bool
}

// ParseMisc parses the CoNLL-U miscellaneous column. Entries without a "="
// separator become bare flags; the "_" placeholder yields an empty map.
func ParseMisc(s string) Misc {
	misc := Misc{}
	if s == Placeholder || s == "" {
		return misc
	}

	for _, entry := range strings.Split(s, entrySeparator) {
		key, value, found := strings.Cut(entry, keyValueSeparator)
		if found {
			misc[key] = MiscValue{Value: value, HasValue: true}
		} else {
			misc[key] = MiscValue{}
		}
	}

	return misc
}

// Set inserts or overwrites key with an associated value.
func (m Misc) Set(key, value string) {
	m[key] = MiscValue{Value: value, HasValue: true}
}

// SetFlag inserts or overwrites key as a bare flag.
func (m Misc) SetFlag(key string) {
	m[key] = MiscValue{}
}

// Lookup reports the state of key: ok is false when the key is absent;
// hasValue is false when it is present as a bare flag.
func (m Misc) Lookup(key string) (value string, hasValue, ok bool) {
	entry, ok := m[key]
	if !ok {
		return "", false, false
	}

	return entry.Value, entry.HasValue, true
}

// String renders the map with flags as bare keys and valued entries as
// key=value, joined by "|" in sorted key order. An empty map renders to the
// "_" placeholder.
func (m Misc) String() string {
	if len(m) == 0 {
		return Placeholder
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(entrySeparator)
		}
		sb.WriteString(key)
		if entry := m[key]; entry.HasValue {
			sb.WriteString(keyValueSeparator)
			sb.WriteString(entry.Value)
		}
	}

	return sb.String()
}
