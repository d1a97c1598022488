package usecase

import "time"

// Configuration
const (
	DefaultMaxIterations   = 2
	DefaultRunTimeout      = 5 * time.Minute
	DefaultResultCacheSize = 128
	DefaultResultTTL       = 30 * time.Minute

	// planExcerptLen is how much of the manuscript the planner sees.
	planExcerptLen = 100
)

// Memory query hints
const (
	hintKnowledge = "Retrieve writing principles."
	hintContext   = "Get all context for discussion"
)

// Run status labels
const (
	statusSuccess    = "success"
	statusInvalid    = "invalid"
	statusGeneration = "generation_error"
	statusTimeout    = "timeout"
	statusError      = "error"
)

// extraIteration tags every entry a stage writes with the loop iteration.
const extraIteration = "iteration"

// Prompt templates
const (
	planPromptTemplate = `You are an orchestrator for a multi-agent AI system. Your role is to create a clear, concise plan for a panel of simulated physicists who will analyze a piece of text.

**Panelists:** %s
**Core Principles:**
%s
**User's Text (first %d chars):** "%s..."

**Task:** Generate a short, numbered plan for the discussion. The plan should guide the agents to provide a multi-faceted critique, leveraging their unique perspectives. Keep the plan to 3-4 steps.`

	turnPromptTemplate = `**Your Persona:**
%s

**Your Task:**
You are part of a round-table discussion with other physicists. Analyze the user's text below based on your unique perspective as %s. Keep your response concise (one paragraph). Engage with the plan and what others have said.

**Full Discussion Context (Plan & Previous Turns):**
---
%s
---

**User's Text to Analyze:**
---
%s
---

Now, provide your analysis as %s:`

	reflectPromptTemplate = `You are a reflector agent, acting as a moderator for a discussion among physicists. Your goal is to ensure the discussion is deep, synergistic, and not just a collection of separate opinions.

**Discussion So Far:**
---
%s
---

**Task:**
Analyze the discussion. Has it achieved a meaningful synthesis? Or is it still superficial and in need of another round of debate?

**Respond with a single word followed by a brief reason.**
- If more debate is needed, respond with "CONTINUE: [Your reason]".
- If the discussion is sufficient, respond with "FINISH: [Your reason]".`

	contextSeparator = "\n---\n"
)
