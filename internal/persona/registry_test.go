package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ListOrder(t *testing.T) {
	reg := Default()

	list := reg.List()
	require.Len(t, list, 5)

	ids := make([]ID, len(list))
	for i, p := range list {
		ids[i] = p.ID
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Expertise)
		assert.NotEmpty(t, p.Directive)
	}
	assert.Equal(t, []ID{Einstein, Feynman, Schrodinger, Dirac, Heisenberg}, ids)
}

func TestRegistry_Get(t *testing.T) {
	reg := Default()

	p, ok := reg.Get(Feynman)
	require.True(t, ok)
	assert.Equal(t, "Richard Feynman", p.Name)

	_, ok = reg.Get(ID("BOHR"))
	assert.False(t, ok)
}

func TestRegistry_Resolve(t *testing.T) {
	reg := Default()

	tests := []struct {
		name    string
		ids     []ID
		want    []ID
		wantErr error
	}{
		{name: "keeps caller order", ids: []ID{Heisenberg, Einstein}, want: []ID{Heisenberg, Einstein}},
		{name: "empty selection", ids: nil, want: []ID{}},
		{name: "unknown id", ids: []ID{Einstein, "BOHR"}, wantErr: ErrUnknownPersona},
		{name: "duplicate id", ids: []ID{Dirac, Dirac}, wantErr: ErrDuplicatePersona},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Resolve(tt.ids)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			gotIDs := make([]ID, len(got))
			for i, p := range got {
				gotIDs[i] = p.ID
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestRegistry_ParseID(t *testing.T) {
	assert.Equal(t, Schrodinger, ParseID("  schrodinger "))
	assert.Equal(t, Feynman, ParseID("Feynman"))

	_, err := Default().Resolve([]ID{ParseID("bohr")})
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestNewRegistry_IgnoresDuplicates(t *testing.T) {
	reg := NewRegistry(
		Persona{ID: "A", Name: "first"},
		Persona{ID: "A", Name: "second"},
	)
	list := reg.List()
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].Name)
}

func TestDefault_DirectivesKeepEachStance(t *testing.T) {
	reg := Default()

	tests := []struct {
		id      ID
		phrases []string
	}{
		{Einstein, []string{"'God does not play dice'", "the 'Old One,'", "EPR paradox"}},
		{Feynman, []string{"Can you draw a simple diagram for the key interaction?", "The game is to predict, not just to philosophize."}},
		{Schrodinger, []string{"the role of consciousness", "Verschränkung"}},
		{Dirac, []string{"A theory that is not beautiful cannot possibly be correct.", "discovery of antimatter"}},
		{Heisenberg, []string{"the elements of the S-matrix", "All else is unhelpful philosophy."}},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			p, ok := reg.Get(tt.id)
			require.True(t, ok)
			for _, phrase := range tt.phrases {
				assert.Contains(t, p.Directive, phrase)
			}
		})
	}
}
