package persona

// ID identifies one of the fixed panelists.
type ID string

const (
	Einstein    ID = "EINSTEIN"
	Feynman     ID = "FEYNMAN"
	Schrodinger ID = "SCHRODINGER"
	Dirac       ID = "DIRAC"
	Heisenberg  ID = "HEISENBERG"
)

// Persona is a named analytical viewpoint. Directive is the prompt fragment
// that defines how the persona reads a text.
type Persona struct {
	ID        ID
	Name      string
	Expertise string
	Directive string
}
