package http

import (
	"physics-writing-assistant/internal/discussion"
	"physics-writing-assistant/internal/persona"
	"physics-writing-assistant/pkg/response"
)

// --- Request DTOs ---

type runReq struct {
	Text          string   `json:"text"`
	Personas      []string `json:"personas"`
	MaxIterations int      `json:"max_iterations" binding:"min=0,max=10"`
}

func (r runReq) toInput() discussion.RunInput {
	ids := make([]persona.ID, len(r.Personas))
	for i, p := range r.Personas {
		ids[i] = persona.ParseID(p)
	}
	return discussion.RunInput{
		Text:          r.Text,
		Personas:      ids,
		MaxIterations: r.MaxIterations,
	}
}

// --- Response DTOs ---

type turnResp struct {
	PersonaID   string `json:"persona_id"`
	PersonaName string `json:"persona_name"`
	Text        string `json:"text"`
}

type runResp struct {
	ID         string            `json:"id"`
	Turns      []turnResp        `json:"turns"`
	Iterations int               `json:"iterations"`
	Personas   []string          `json:"personas"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newRunResp(out discussion.RunOutput) runResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{
			PersonaID:   string(t.PersonaID),
			PersonaName: t.PersonaName,
			Text:        t.Text,
		}
	}
	ids := make([]string, len(out.Personas))
	for i, id := range out.Personas {
		ids[i] = string(id)
	}
	return runResp{
		ID:         out.ID,
		Turns:      turns,
		Iterations: out.Iterations,
		Personas:   ids,
		CreatedAt:  response.DateTime(out.CreatedAt),
	}
}

type personaResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
}

type listPersonasResp struct {
	Personas []personaResp `json:"personas"`
}

func newListPersonasResp(list []persona.Persona) listPersonasResp {
	out := make([]personaResp, len(list))
	for i, p := range list {
		out[i] = personaResp{ID: string(p.ID), Name: p.Name, Expertise: p.Expertise}
	}
	return listPersonasResp{Personas: out}
}
