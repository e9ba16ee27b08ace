package category

import (
	"fmt"
	"sort"
	"strings"
)

// Pair addresses one classifier in the registry.
type Pair struct {
	Category   int
	Classifier int
}

// Filter is a set of selected (category, classifier) pairs.
type Filter struct {
	pairs map[Pair]struct{}
}

// NewFilter builds a filter from explicit pairs.
func NewFilter(pairs ...Pair) *Filter {
	f := &Filter{pairs: make(map[Pair]struct{}, len(pairs))}
	for _, p := range pairs {
		f.pairs[p] = struct{}{}
	}
	return f
}

// ParseFilter reads a comma separated selection such as
// "Angle/Equal,Channel". A category without a classifier selects all of its
// classifiers. Labels may be display labels or shape names.
func (r *Registry) ParseFilter(selection string) (*Filter, error) {
	f := NewFilter()
	for _, item := range strings.Split(selection, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		catLabel, clsLabel, hasCls := strings.Cut(item, "/")
		ci, ok := r.ByLabel(strings.TrimSpace(catLabel))
		if !ok {
			return nil, fmt.Errorf("unknown category %q", catLabel)
		}
		info := r.categories[ci]
		if !hasCls {
			for ki := range info.Classifiers {
				f.pairs[Pair{ci, ki}] = struct{}{}
			}
			continue
		}
		_, ki, ok := r.Index(info.Shape, strings.TrimSpace(clsLabel))
		if !ok {
			return nil, fmt.Errorf("category %s has no classifier %q", info.Label, clsLabel)
		}
		f.pairs[Pair{ci, ki}] = struct{}{}
	}
	return f, nil
}

// Len is the number of selected pairs.
func (f *Filter) Len() int { return len(f.pairs) }

// Contains reports whether a pair is selected.
func (f *Filter) Contains(p Pair) bool {
	_, ok := f.pairs[p]
	return ok
}

// Pairs returns the selection sorted by category then classifier.
func (f *Filter) Pairs() []Pair {
	out := make([]Pair, 0, len(f.pairs))
	for p := range f.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Classifier < out[j].Classifier
	})
	return out
}

// Matches reports whether text locates to a selected pair. An empty filter
// matches nothing.
func (f *Filter) Matches(r *Registry, text string) bool {
	ci, ki, ok := r.Locate(text)
	if !ok {
		return false
	}
	return f.Contains(Pair{ci, ki})
}
