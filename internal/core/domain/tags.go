package domain

import (
	"sort"
	"strings"
)

// Tags is a set of tag key/value pairs. Keys are unique by construction.
type Tags map[string]string

func (t Tags) Clone() Tags {
	out := make(Tags, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge returns defaults overlaid with overrides. Overrides win on key
// collision; neither input is modified.
func Merge(defaults, overrides Tags) Tags {
	out := make(Tags, len(defaults)+len(overrides))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func (t Tags) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ReservedPrefix marks provider-managed tag keys. They can be read but
// never written back.
const ReservedPrefix = "aws:"

func IsReserved(key string) bool {
	return strings.HasPrefix(strings.ToLower(key), ReservedPrefix)
}

// WithoutReserved returns a copy of t with provider-managed keys removed.
func (t Tags) WithoutReserved() Tags {
	out := make(Tags, len(t))
	for k, v := range t {
		if !IsReserved(k) {
			out[k] = v
		}
	}
	return out
}
