package pipeline

import (
	"testing"

	"laudos/internal"
)

func tmpl(id int, title, modality, content string) internal.TemplateRecord {
	return internal.TemplateRecord{
		ID:       id,
		Title:    title,
		Modality: modality,
		Sections: []internal.TemplateSection{
			{Label: "Achados", DefaultContent: content},
		},
		Complexity: 1,
		IsActive:   true,
	}
}

func TestDeduplicateContainmentCluster(t *testing.T) {
	sparse := tmpl(1, "TC Tórax", "TC", "Achados breves.")
	rich := tmpl(2, "TC Tórax - Sem Contraste", "TC", "Parênquima pulmonar com atenuação preservada, sem consolidações ou nódulos suspeitos.")

	for _, order := range [][]internal.TemplateRecord{
		{sparse, rich},
		{rich, sparse},
	} {
		canonical, removed := Deduplicate(order)
		if len(canonical) != 1 {
			t.Fatalf("got %d canonical records, want 1", len(canonical))
		}
		if canonical[0].ID != 2 {
			t.Fatalf("survivor id = %d, want the richer record (2)", canonical[0].ID)
		}
		if len(removed) != 1 || removed[0] != 1 {
			t.Fatalf("removed = %v, want [1]", removed)
		}
	}
}

func TestDeduplicateModalityFolding(t *testing.T) {
	a := tmpl(1, "USG Abdome Total", "US", "Fígado, vesícula, pâncreas, baço e rins avaliados de forma sistemática.")
	b := tmpl(2, "USG Abdome Total", "USG", "Curto.")

	canonical, removed := Deduplicate([]internal.TemplateRecord{a, b})
	if len(canonical) != 1 {
		t.Fatalf("US and USG should fold into one cluster, got %d survivors", len(canonical))
	}
	if canonical[0].ID != 1 {
		t.Fatalf("survivor id = %d, want 1", canonical[0].ID)
	}
	if len(removed) != 1 || removed[0] != 2 {
		t.Fatalf("removed = %v, want [2]", removed)
	}
}

func TestDeduplicateDistinctTitlesSurvive(t *testing.T) {
	records := []internal.TemplateRecord{
		tmpl(1, "RX Tórax (PA/Lateral)", "RX", "Campos pulmonares livres."),
		tmpl(2, "RX Coluna Lombar", "RX", "Alinhamento vertebral preservado."),
		tmpl(3, "TC Crânio", "TC", "Sem coleções extra-axiais."),
	}

	canonical, removed := Deduplicate(records)
	if len(canonical) != 3 {
		t.Fatalf("got %d canonical records, want 3", len(canonical))
	}
	if len(removed) != 0 {
		t.Fatalf("removed = %v, want none", removed)
	}
}

func TestDeduplicateDifferentModalitiesNeverCluster(t *testing.T) {
	records := []internal.TemplateRecord{
		tmpl(1, "Crânio", "TC", "Estudo tomográfico do crânio sem contraste endovenoso."),
		tmpl(2, "Crânio", "RM", "Estudo por ressonância."),
	}

	canonical, removed := Deduplicate(records)
	if len(canonical) != 2 || len(removed) != 0 {
		t.Fatalf("cross-modality cluster: canonical=%d removed=%v", len(canonical), removed)
	}
}

func TestDeduplicateNormalizedEquivalence(t *testing.T) {
	long := tmpl(1, "Tomografia Computadorizada de Crânio", "TC", "Estudo detalhado com descrição completa das estruturas encefálicas.")
	short := tmpl(2, "TC Crânio", "TC", "Breve.")

	canonical, removed := Deduplicate([]internal.TemplateRecord{short, long})
	if len(canonical) != 1 {
		t.Fatalf("got %d survivors, want 1", len(canonical))
	}
	if canonical[0].ID != 1 {
		t.Fatalf("survivor id = %d, want the richer record (1)", canonical[0].ID)
	}
	if len(removed) != 1 || removed[0] != 2 {
		t.Fatalf("removed = %v, want [2]", removed)
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	records := []internal.TemplateRecord{
		tmpl(1, "TC Tórax", "TC", "Curto."),
		tmpl(2, "TC Tórax - Sem Contraste", "TC", "Descrição longa e detalhada do parênquima pulmonar e mediastino."),
		tmpl(3, "RX Tórax", "RX", "Campos pulmonares livres."),
	}

	canonical, removed := Deduplicate(records)
	if len(removed) == 0 {
		t.Fatal("first pass removed nothing")
	}

	again, removedAgain := Deduplicate(canonical)
	if len(removedAgain) != 0 {
		t.Fatalf("second pass removed %v, want none", removedAgain)
	}
	if len(again) != len(canonical) {
		t.Fatalf("second pass changed survivor count: %d != %d", len(again), len(canonical))
	}
}
