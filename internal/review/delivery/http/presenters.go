package http

import (
	"physics-writing-assistant/internal/review"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text    string `json:"text"`
	Section string `json:"section" binding:"required"`
	Format  string `json:"format"`
}

func (r analyzeReq) toInput() review.AnalyzeInput {
	return review.AnalyzeInput{
		Text:    r.Text,
		Section: review.Section(r.Section),
		Format:  r.Format,
	}
}

// --- Response DTOs ---

type violationResp struct {
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

type analyzeResp struct {
	Section                string          `json:"section"`
	Format                 string          `json:"format"`
	GuidelinesTitle        string          `json:"guidelines_title"`
	QualityScore           float64         `json:"quality_score"`
	Violations             []violationResp `json:"violations"`
	Strengths              []string        `json:"strengths"`
	ClarificationQuestions []string        `json:"clarification_questions"`
	Recommendations        []string        `json:"recommendations"`
	RevisedText            string          `json:"revised_text"`
}

func newAnalyzeResp(out review.AnalyzeOutput) analyzeResp {
	violations := make([]violationResp, len(out.Result.Violations))
	for i, v := range out.Result.Violations {
		violations[i] = violationResp{Description: v.Description, Severity: string(v.Severity)}
	}
	return analyzeResp{
		Section:                string(out.Section),
		Format:                 out.Format,
		GuidelinesTitle:        out.Result.GuidelinesTitle,
		QualityScore:           out.Result.QualityScore,
		Violations:             violations,
		Strengths:              out.Result.Strengths,
		ClarificationQuestions: out.Result.ClarificationQuestions,
		Recommendations:        out.Result.Recommendations,
		RevisedText:            out.Result.RevisedText,
	}
}

type sectionsResp struct {
	Sections []string `json:"sections"`
}

func newSectionsResp() sectionsResp {
	out := make([]string, len(review.Sections))
	for i, s := range review.Sections {
		out[i] = string(s)
	}
	return sectionsResp{Sections: out}
}

type formatsResp struct {
	Formats []string `json:"formats"`
	Default string   `json:"default"`
}

type exampleResp struct {
	Section string `json:"section"`
	Text    string `json:"text"`
}
