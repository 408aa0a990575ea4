package pipeline

import (
	"sort"
	"strings"

	"laudos/internal"
	"laudos/internal/util"
)

type dedupKey struct {
	Modality string
	Title    string
}

func keyFor(rec internal.TemplateRecord) dedupKey {
	return dedupKey{
		Modality: util.NormalizeModality(rec.Modality),
		Title:    util.NormalizeTitle(rec.Title),
	}
}

// richness approximates a template's level of detail. Richer duplicates
// survive; sparser ones are removed.
func richness(rec internal.TemplateRecord) int {
	return rec.SectionContentLength() + len(rec.Title)
}

// Deduplicate scans records richest-first and clusters near-duplicates by
// symmetric title containment within the same folded modality. The first
// accepted match wins, so the survivor of a cluster is always the richest
// record. Records with an empty normalized title will cluster with anything
// sharing their modality; that matches the historical behavior and is left
// as-is.
func Deduplicate(records []internal.TemplateRecord) (canonical []internal.TemplateRecord, removedIDs []int) {
	sorted := make([]internal.TemplateRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return richness(sorted[i]) > richness(sorted[j])
	})

	canonical = make([]internal.TemplateRecord, 0, len(sorted))
	accepted := make([]dedupKey, 0, len(sorted))
	removedIDs = []int{}

	for _, rec := range sorted {
		key := keyFor(rec)
		if matchesAccepted(accepted, key) {
			removedIDs = append(removedIDs, rec.ID)
			continue
		}
		accepted = append(accepted, key)
		canonical = append(canonical, rec)
	}

	return canonical, removedIDs
}

// matchesAccepted walks the accepted keys in acceptance order and reports the
// first containment hit. Containment is symmetric: "tc tórax" and "tc tórax
// bilateral" land in the same cluster regardless of which arrived first.
func matchesAccepted(accepted []dedupKey, key dedupKey) bool {
	for _, seen := range accepted {
		if seen.Modality != key.Modality {
			continue
		}
		if strings.Contains(seen.Title, key.Title) || strings.Contains(key.Title, seen.Title) {
			return true
		}
	}
	return false
}
