package builders

import "sort"

// defaultIfAbsent implements the shared set-if-present convention for scalar
// setters: an empty value is treated as absent and leaves current unchanged.
func defaultIfAbsent(value, current string) string {
	if value == "" {
		return current
	}
	return value
}

// stringSet is a deduplicating collection of strings used for media types
// and protocols.
type stringSet map[string]struct{}

func newStringSet() stringSet {
	return make(stringSet)
}

// addAll inserts every value of in; a nil slice is treated as empty.
func (s stringSet) addAll(in []string) {
	for _, v := range in {
		s[v] = struct{}{}
	}
}

// replaced returns a fresh set holding exactly the values of in.
func replaced(in []string) stringSet {
	out := make(stringSet, len(in))
	out.addAll(in)
	return out
}

// sorted returns the set contents as a sorted slice, or nil when empty.
// Sorting keeps built snapshots deterministic across calls.
func (s stringSet) sorted() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// copyStrings returns a copy of in, or nil for an empty input.
func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}
