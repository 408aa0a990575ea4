package intake

import (
	"laudos/internal"
	"laudos/internal/catalog"
	"laudos/internal/util"
)

// Resolver turns free-text or catalog-selected exam requests into the
// canonical identity handed to the exam-creation collaborator. It only reads
// the catalog index; creating the request itself happens elsewhere.
type Resolver struct {
	index *catalog.Index
}

func NewResolver(index *catalog.Index) *Resolver {
	return &Resolver{index: index}
}

// ResolveFreeText strips laterality from a typed exam name and annotates the
// result with the owning catalog region when the base name is known. An
// unknown name is a legitimate custom exam, not an error: the region stays
// empty and the name passes through as cleaned.
func (r *Resolver) ResolveFreeText(modality, rawName string) internal.ResolvedExam {
	cleanName, side := catalog.ExtractLaterality(rawName)

	resolved := internal.ResolvedExam{
		ExamName:   cleanName,
		Modality:   util.NormalizeModality(modality),
		Laterality: side,
	}
	if entry, ok := r.index.Find(modality, cleanName); ok {
		resolved.ExamName = entry.Name
		resolved.RegionName = entry.RegionName
	}
	return resolved
}

// ResolveCatalogSelection builds the final exam identity from a catalog entry
// and a user-chosen side. The side label is appended back onto the entry name
// only when the entry is a lateral exam.
func (r *Resolver) ResolveCatalogSelection(entry internal.CatalogEntry, side internal.Laterality) internal.ResolvedExam {
	name := entry.Name
	if entry.HasLaterality {
		name = catalog.AppendSide(name, side)
	}
	return internal.ResolvedExam{
		ExamName:   name,
		Modality:   util.NormalizeModality(entry.Modality),
		RegionName: entry.RegionName,
		Laterality: side,
	}
}
