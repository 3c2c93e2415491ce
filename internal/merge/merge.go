// Package merge folds translation fragments into a combined tree.
package merge

import "git.home.luguber.info/inful/i18nbuilder/internal/tree"

// Merge absorbs source into target and returns target.
//
// Mapping values are merged recursively. When target holds anything other
// than a mapping at that key, it is replaced by an empty mapping first. Every
// other value, sequences and null included, overwrites the target entry
// as-is, so a later scalar replaces an earlier mapping.
func Merge(target, source *tree.Mapping) *tree.Mapping {
	for key, value := range source.All() {
		src, ok := value.(*tree.Mapping)
		if !ok || src == nil {
			target.Set(key, value)
			continue
		}

		dst, _ := target.Get(key)
		nested, ok := dst.(*tree.Mapping)
		if !ok || nested == nil {
			nested = tree.NewMapping()
			target.Set(key, nested)
		}
		Merge(nested, src)
	}
	return target
}

// All folds fragments left to right into a fresh mapping.
func All(fragments ...*tree.Mapping) *tree.Mapping {
	acc := tree.NewMapping()
	for _, f := range fragments {
		Merge(acc, f)
	}
	return acc
}
