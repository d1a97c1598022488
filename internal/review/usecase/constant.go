package usecase

const (
	reviewTemperature = 0.4

	reviewPromptTemplate = `You are an expert scientific paper reviewer for top-tier physics journals.
Your task is to analyze the following section of a research paper and provide a structured review.

**Publication Target:** %s
**Paper Section:** %s

**Input Text:**
---
%s
---

**Instructions:**
1. **Analyze the text critically** based on the standards of the target publication.
2. **Provide a Quality Score** from 1 (poor) to 5 (excellent).
3. **Identify Violations:** List specific issues, categorizing their severity as 'Minor', 'Major', or 'Critical'. These should be actionable criticisms.
4. **List Strengths:** Identify at least 2-3 key strengths of the text.
5. **Pose Clarification Questions:** Ask questions that would help the author clarify ambiguous points.
6. **Give Recommendations:** Suggest concrete changes to improve the text.
7. **Provide a Revised Text:** Offer a rewritten version of a key paragraph or the full text that implements your most important feedback.
8. **Format your entire response as a single JSON object** that adheres to the provided schema. Do not include any markdown formatting or explanatory text outside of the JSON structure.`
)

// resultSchema constrains the model to review.Result.
var resultSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"guidelinesTitle": map[string]interface{}{"type": "STRING"},
		"qualityScore": map[string]interface{}{
			"type":        "NUMBER",
			"description": "A score from 1 to 5, where 5 is best.",
		},
		"violations": map[string]interface{}{
			"type": "ARRAY",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"description": map[string]interface{}{"type": "STRING"},
					"severity": map[string]interface{}{
						"type": "STRING",
						"enum": []string{"Minor", "Major", "Critical"},
					},
				},
				"required": []string{"description", "severity"},
			},
		},
		"strengths":              stringArray(),
		"clarificationQuestions": stringArray(),
		"recommendations":        stringArray(),
		"revisedText":            map[string]interface{}{"type": "STRING"},
	},
	"required": []string{
		"guidelinesTitle",
		"qualityScore",
		"violations",
		"strengths",
		"clarificationQuestions",
		"recommendations",
		"revisedText",
	},
}

func stringArray() map[string]interface{} {
	return map[string]interface{}{
		"type":  "ARRAY",
		"items": map[string]interface{}{"type": "STRING"},
	}
}
