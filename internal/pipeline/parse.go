package pipeline

import (
	"regexp"
	"strings"

	"laudos/internal"
)

const (
	fallbackTitle  = "Sem Título"
	fallbackRegion = "Geral"
)

var (
	// `## 2.1.1 RX – Crânio`: optional numeric id, modality token, dash
	// (en dash or hyphen), free text.
	reBlockHeader = regexp.MustCompile(`(?m)^##\s*(?:[0-9][0-9.]*\s+)?([A-Za-z]{2,4})\s*[–-]\s*(.+)$`)
	reBoldLabel   = regexp.MustCompile(`\*\*\s*([^*]+?)\s*\*\*\s*:?`)
	reRegionDash  = regexp.MustCompile(`\s*[–-]\s*`)
)

// modalityTable canonicalizes raw header tokens. Tokens not in the table pass
// through uppercased rather than being rejected.
var modalityTable = map[string]string{
	"RX":  internal.ModalityRX,
	"TC":  internal.ModalityTC,
	"RM":  internal.ModalityRM,
	"US":  internal.ModalityUS,
	"USG": internal.ModalityUS,
	"MG":  internal.ModalityMG,
	"OT":  internal.ModalityOT,
}

// ParseDocument splits a template document into blocks and extracts one
// TemplateRecord per parseable block. A malformed block never aborts the
// document: it is skipped and counted.
func ParseDocument(doc, sourceHint string) ([]internal.TemplateRecord, int) {
	blocks := splitBlocks(doc)
	records := make([]internal.TemplateRecord, 0, len(blocks))
	skipped := 0
	for _, block := range blocks {
		rec, ok := parseBlock(block, sourceHint)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

// splitBlocks cuts the document on lines consisting solely of `---`.
func splitBlocks(doc string) []string {
	lines := strings.Split(doc, "\n")
	var blocks []string
	var current []string

	flush := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	for _, line := range lines {
		if strings.TrimRight(line, "\r") == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

func parseBlock(block, sourceHint string) (internal.TemplateRecord, bool) {
	modality, region := parseHeader(block, sourceHint)
	fields := extractFields(block)

	title := strings.TrimSpace(fields["titulo"])
	if title == "" {
		title = fallbackTitle
	}

	metodo := strings.TrimSpace(fields["metodo"])
	achados := strings.TrimSpace(fields["achados"])
	conclusao := strings.TrimSpace(fields["conclusao"])

	if title == fallbackTitle && metodo == "" && achados == "" {
		return internal.TemplateRecord{}, false
	}

	return internal.TemplateRecord{
		Title:      title,
		Modality:   modality,
		BodyRegion: region,
		Sections: []internal.TemplateSection{
			{Label: "Método", DefaultContent: metodo},
			{Label: "Achados", DefaultContent: achados},
			{Label: "Conclusão", DefaultContent: conclusao},
		},
		Complexity: 1,
		IsActive:   true,
	}, true
}

// parseHeader finds the `## <id> <MODALITY> – <region>` line. When the block
// has no such line, the modality comes from the source hint alone and the
// region falls back to "Geral".
func parseHeader(block, sourceHint string) (modality, region string) {
	m := reBlockHeader.FindStringSubmatch(block)
	if m == nil {
		return modalityFromHint(sourceHint), fallbackRegion
	}

	modality = canonicalModality(m[1])

	// `Ombro – Direito` keeps only `Ombro`: the laterality suffix is not
	// part of the body region.
	parts := reRegionDash.Split(strings.TrimSpace(m[2]), 2)
	region = strings.TrimSpace(parts[0])
	if region == "" {
		region = fallbackRegion
	}
	return modality, region
}

func canonicalModality(token string) string {
	upper := strings.ToUpper(strings.TrimSpace(token))
	if canonical, ok := modalityTable[upper]; ok {
		return canonical
	}
	return upper
}

// modalityFromHint derives the modality from a filename or tag when no block
// header matched. Combined-modality files land on TC.
func modalityFromHint(hint string) string {
	lower := strings.ToLower(hint)
	switch {
	case strings.Contains(lower, "rx"):
		return internal.ModalityRX
	case strings.Contains(lower, "usg"):
		return internal.ModalityUS
	case strings.Contains(lower, "tc"):
		return internal.ModalityTC
	default:
		return internal.ModalityOT
	}
}

// extractFields scans the block for the four bold-labeled fields. Content of
// a field runs until the next bold label or the end of the block. Missing
// fields are present with an empty value.
func extractFields(block string) map[string]string {
	fields := map[string]string{
		"titulo":    "",
		"metodo":    "",
		"achados":   "",
		"conclusao": "",
	}

	matches := reBoldLabel.FindAllStringSubmatchIndex(block, -1)
	for i, m := range matches {
		label := foldLabel(block[m[2]:m[3]])
		if _, known := fields[label]; !known {
			continue
		}
		start := m[1]
		end := len(block)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		fields[label] = strings.TrimSpace(block[start:end])
	}
	return fields
}

var labelFolder = strings.NewReplacer(
	"á", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u",
	"ç", "c",
)

func foldLabel(label string) string {
	return labelFolder.Replace(strings.ToLower(strings.TrimSpace(label)))
}
