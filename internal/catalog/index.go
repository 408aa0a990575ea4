package catalog

import (
	"github.com/sahilm/fuzzy"

	"laudos/internal"
	"laudos/internal/util"
)

// RegionGroup is one body region under a modality, with its exams in
// declaration order.
type RegionGroup struct {
	RegionName string
	Exams      []internal.CatalogEntry
}

// Index is the read-only runtime search structure over catalog entries.
// It is built wholesale and never mutated; a rebuild produces a fresh Index
// the caller swaps in.
type Index struct {
	groups    map[string][]RegionGroup
	flattened map[string][]internal.CatalogEntry
}

// BuildIndex groups entries by modality and region, preserving declaration
// order within each group. The US/USG spelling fold applies to the modality
// key so both spellings address the same bucket.
func BuildIndex(entries []internal.CatalogEntry) *Index {
	idx := &Index{
		groups:    map[string][]RegionGroup{},
		flattened: map[string][]internal.CatalogEntry{},
	}

	groupPos := map[string]map[string]int{}
	for _, entry := range entries {
		mod := util.NormalizeModality(entry.Modality)
		if _, ok := groupPos[mod]; !ok {
			groupPos[mod] = map[string]int{}
		}

		pos, ok := groupPos[mod][entry.RegionName]
		if !ok {
			pos = len(idx.groups[mod])
			groupPos[mod][entry.RegionName] = pos
			idx.groups[mod] = append(idx.groups[mod], RegionGroup{RegionName: entry.RegionName})
		}
		idx.groups[mod][pos].Exams = append(idx.groups[mod][pos].Exams, entry)
		idx.flattened[mod] = append(idx.flattened[mod], entry)
	}

	return idx
}

// RegionsFor returns the region groups of a modality in declaration order.
func (idx *Index) RegionsFor(modality string) []RegionGroup {
	return idx.groups[util.NormalizeModality(modality)]
}

// Search runs a case-insensitive substring match of the query against exam
// names under the modality, restricted to one region when given. Results come
// back in catalog declaration order; an empty result set means the caller is
// looking at a custom exam name, not a failure.
func (idx *Index) Search(modality, query, region string) []internal.CatalogEntry {
	candidates := idx.candidates(modality, region)

	out := []internal.CatalogEntry{}
	for _, entry := range candidates {
		if util.ContainsFold(entry.Name, query) {
			out = append(out, entry)
		}
	}
	return out
}

// Suggest ranks autocomplete candidates for a partial query with fuzzy
// matching, best matches first.
func (idx *Index) Suggest(modality, query string, limit int) []internal.CatalogEntry {
	candidates := idx.flattened[util.NormalizeModality(modality)]

	names := make([]string, len(candidates))
	for i, entry := range candidates {
		names[i] = entry.Name
	}

	matches := fuzzy.Find(query, names)
	out := make([]internal.CatalogEntry, 0, len(matches))
	for _, match := range matches {
		out = append(out, candidates[match.Index])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Find returns the entry whose name matches exactly (case-insensitive),
// searching the whole modality.
func (idx *Index) Find(modality, name string) (internal.CatalogEntry, bool) {
	for _, entry := range idx.flattened[util.NormalizeModality(modality)] {
		if util.ContainsFold(entry.Name, name) && util.ContainsFold(name, entry.Name) {
			return entry, true
		}
	}
	return internal.CatalogEntry{}, false
}

func (idx *Index) candidates(modality, region string) []internal.CatalogEntry {
	mod := util.NormalizeModality(modality)
	if region == "" {
		return idx.flattened[mod]
	}
	for _, group := range idx.groups[mod] {
		if group.RegionName == region {
			return group.Exams
		}
	}
	return nil
}
