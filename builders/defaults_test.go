package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIfAbsent(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		current string
		want    string
	}{
		{"empty keeps current", "", "prior", "prior"},
		{"present overwrites", "next", "prior", "next"},
		{"both empty", "", "", ""},
		{"present over empty", "next", "", "next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultIfAbsent(tt.value, tt.current))
		})
	}
}

func TestStringSet_Sorted(t *testing.T) {
	s := newStringSet()
	assert.Nil(t, s.sorted(), "empty set yields nil")

	s.addAll([]string{"b", "a", "b"})
	assert.Equal(t, []string{"a", "b"}, s.sorted())
}

func TestReplaced(t *testing.T) {
	s := replaced([]string{"x", "x", "y"})
	assert.Equal(t, []string{"x", "y"}, s.sorted())

	in := []string{"z"}
	s = replaced(in)
	in[0] = "mutated"
	assert.Equal(t, []string{"z"}, s.sorted(), "replaced copies its input")
}

func TestCopyStrings(t *testing.T) {
	assert.Nil(t, copyStrings(nil))
	assert.Nil(t, copyStrings([]string{}))

	in := []string{"a"}
	out := copyStrings(in)
	in[0] = "mutated"
	assert.Equal(t, []string{"a"}, out)
}
