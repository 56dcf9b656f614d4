package service

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DescriptionOrdering is a comparison strategy for ApiDescription values.
// It reports a negative number when a sorts before b, zero when they are
// equivalent, and a positive number when a sorts after b.
//
// A nil ordering is valid and preserves input order.
type DescriptionOrdering func(a, b *ApiDescription) int

// SortedCopy returns a stably sorted copy of in. The input slice is never
// mutated. A nil ordering yields a plain copy in the original order.
func (o DescriptionOrdering) SortedCopy(in []*ApiDescription) []*ApiDescription {
	out := make([]*ApiDescription, len(in))
	copy(out, in)
	if o != nil {
		slices.SortStableFunc(out, o)
	}
	return out
}

// ByPath orders descriptions by their path using locale-aware,
// case-insensitive collation.
func ByPath() DescriptionOrdering {
	c := collate.New(language.English, collate.IgnoreCase)
	return func(a, b *ApiDescription) int {
		return c.CompareString(a.Path, b.Path)
	}
}

// ByDescription orders descriptions by their description text. Ties are
// left to a chained ordering; see Ordered.
func ByDescription() DescriptionOrdering {
	c := collate.New(language.English, collate.IgnoreCase)
	return func(a, b *ApiDescription) int {
		return c.CompareString(a.Description, b.Description)
	}
}

// ByPathBytewise orders descriptions by raw byte comparison of their paths.
// Faster than ByPath and stable across locales, at the cost of natural
// ordering for non-ASCII path segments.
func ByPathBytewise() DescriptionOrdering {
	return func(a, b *ApiDescription) int {
		return strings.Compare(a.Path, b.Path)
	}
}

// Ordered chains orderings: each subsequent ordering breaks ties left by the
// previous ones. Nil entries are skipped.
func Ordered(orderings ...DescriptionOrdering) DescriptionOrdering {
	return func(a, b *ApiDescription) int {
		for _, o := range orderings {
			if o == nil {
				continue
			}
			if r := o(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}
