package review

// Section is a part of a research paper.
type Section string

const (
	SectionAbstract     Section = "Abstract"
	SectionIntroduction Section = "Introduction"
	SectionMethods      Section = "Methods"
	SectionResults      Section = "Results"
	SectionConclusion   Section = "Conclusion"
	SectionFigures      Section = "Figures"
)

// Sections lists every section in manuscript order.
var Sections = []Section{
	SectionAbstract,
	SectionIntroduction,
	SectionMethods,
	SectionResults,
	SectionConclusion,
	SectionFigures,
}

// ParseSection matches a section name case-insensitively.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if equalFold(string(sec), s) {
			return sec, true
		}
	}
	return "", false
}

// Severity grades a violation.
type Severity string

const (
	SeverityMinor    Severity = "Minor"
	SeverityMajor    Severity = "Major"
	SeverityCritical Severity = "Critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityMajor, SeverityCritical:
		return true
	}
	return false
}

type Violation struct {
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Result is the structured review of one section. QualityScore runs from 1
// (poor) to 5 (excellent).
type Result struct {
	GuidelinesTitle        string      `json:"guidelinesTitle"`
	QualityScore           float64     `json:"qualityScore"`
	Violations             []Violation `json:"violations"`
	Strengths              []string    `json:"strengths"`
	ClarificationQuestions []string    `json:"clarificationQuestions"`
	Recommendations        []string    `json:"recommendations"`
	RevisedText            string      `json:"revisedText"`
}

// --- UseCase Inputs ---

type AnalyzeInput struct {
	Text    string
	Section Section
	// Format is the target publication. Empty selects the configured default.
	Format string
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Section Section
	Format  string
	Result  Result
}
