package memory

// Principle is a writing rule seeded into every session.
type Principle struct {
	Name        string
	Explanation string
}

// WritingPrinciples is the fixed knowledge base loaded by LoadKnowledgeBase.
var WritingPrinciples = []Principle{
	{
		Name:        "Clarity Above All",
		Explanation: "The primary goal of scientific writing is the clear communication of complex ideas. Elegance and jargon are secondary to a reader's comprehension. A result that is not understood is a result that was not communicated.",
	},
	{
		Name:        "Falsifiability of Claims",
		Explanation: "Every central claim must be presented in a way that it can be, in principle, proven false. Theoretical work must connect to conceivable experiments or observations. Without this, it is not science.",
	},
	{
		Name:        "Principle of Parsimony (Occam's Razor)",
		Explanation: "When presented with two competing explanations for the same phenomenon, the simpler one is to be preferred. Do not introduce new entities or complexities without absolute necessity.",
	},
	{
		Name:        "Reproducibility of Method",
		Explanation: "The 'Methods' section must be sufficiently detailed that a competent peer in the field could reproduce the experiment or calculation and verify the result. All assumptions and approximations must be explicitly stated.",
	},
	{
		Name:        "Honest Representation of Uncertainty",
		Explanation: "Acknowledge the limitations of the work, the sources of error, and the domains where the theory may break down. True scientific confidence is built on a rigorous understanding of what is not known.",
	},
}

// KnowledgeRecords converts principles into Knowledge records.
func KnowledgeRecords(principles []Principle) []Record {
	out := make([]Record, len(principles))
	for i, p := range principles {
		out[i] = Knowledge{Principle: p.Name, Explanation: p.Explanation}
	}
	return out
}
