package internal

// TemplateSection is one labeled block of a report template. Order matters:
// sections are rendered in sequence.
type TemplateSection struct {
	Label          string `json:"label"`
	DefaultContent string `json:"defaultContent"`
}

// TemplateRecord is a parsed or stored report template. Modality is an open
// set: the canonical codes are listed below, but unknown codes coming out of
// a document header are preserved as-is.
type TemplateRecord struct {
	ID         int
	Title      string
	Modality   string
	BodyRegion string
	Sections   []TemplateSection
	Complexity int
	IsActive   bool
	Variants   []string
	TargetSex  string
}

const (
	ModalityRX  = "RX"
	ModalityTC  = "TC"
	ModalityRM  = "RM"
	ModalityUS  = "US"
	ModalityUSG = "USG"
	ModalityMG  = "MG"
	ModalityOT  = "OT"
)

// SectionContentLength sums the default content of all sections. Together
// with the title length this is the richness score used to pick the survivor
// of a duplicate cluster.
func (r TemplateRecord) SectionContentLength() int {
	total := 0
	for _, s := range r.Sections {
		total += len(s.DefaultContent)
	}
	return total
}

// CatalogEntry is one static exam listing used for search and autocomplete
// at request-intake time. Entries are grouped by modality and region and are
// never touched by deduplication.
type CatalogEntry struct {
	Name          string `json:"name" yaml:"name"`
	HasLaterality bool   `json:"hasLaterality" yaml:"hasLaterality"`
	RegionName    string `json:"regionName" yaml:"region"`
	Modality      string `json:"modality" yaml:"modality"`
}

// Laterality is the detected side of a paired anatomical structure.
type Laterality int

const (
	SideNone Laterality = iota
	SideLeft
	SideRight
	SideBilateral
)

func (l Laterality) String() string {
	switch l {
	case SideLeft:
		return "Esquerdo"
	case SideRight:
		return "Direito"
	case SideBilateral:
		return "Bilateral"
	default:
		return ""
	}
}

// ResolvedExam is what the intake workflow hands to the exam-creation
// collaborator. RegionName is empty for custom exam names not present in
// the catalog.
type ResolvedExam struct {
	ExamName   string
	Modality   string
	RegionName string
	Laterality Laterality
}

type ImportResult struct {
	Imported int
	Skipped  int
}

type DedupResult struct {
	Deleted []int
}
