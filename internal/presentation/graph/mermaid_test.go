package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/ppda/internal/presentation/graph"
	"github.com/aretw0/ppda/pkg/catalog"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid(t *testing.T) {
	dyck, err := catalog.Dyck()
	require.NoError(t, err)

	out := graph.GenerateMermaid(dyck, nil)

	assert.True(t, strings.HasPrefix(out, "stateDiagram-v2\n"))
	assert.Contains(t, out, "[*] --> q_init")
	assert.Contains(t, out, "q_final --> [*]")
	assert.Contains(t, out, "q_init --> q_init : (, ⊥ / push ( (1/2)")
	assert.Contains(t, out, "q_init --> q_final : $, ⊥ / noop (1/2)")
	assert.Contains(t, out, "q_init --> q_init : ), ( / pop (2/3)")
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	anbn, err := catalog.AnBn()
	require.NoError(t, err)

	current := domain.State(1)
	out := graph.GenerateMermaid(anbn, &graph.GraphOverlay{
		VisitedStates: []domain.State{domain.Initial, domain.Initial, 1},
		CurrentState:  &current,
	})

	assert.Contains(t, out, "classDef visited")
	assert.Equal(t, 1, strings.Count(out, "class q_init visited"), "visited states are deduplicated")
	assert.Contains(t, out, "class q1 visited")
	assert.Contains(t, out, "class q1 current")
}

func TestGenerateMermaid_SanitizesLabels(t *testing.T) {
	m := stubModel{transitions: []domain.Transition{
		{Key: domain.Key{State: domain.Initial, Top: domain.Bottom, Input: "a:b"}, To: domain.Final},
	}}
	out := graph.GenerateMermaid(m, nil)
	assert.Contains(t, out, "a#58;b, ⊥ / noop (?)")
}

func TestGenerateMermaid_EscapesEachCharacterOnce(t *testing.T) {
	tests := []struct {
		input domain.Symbol
		want  string
	}{
		{input: ":", want: "#58;, ⊥ / noop (?)"},
		{input: ";", want: "#59;, ⊥ / noop (?)"},
		{input: "x:;y", want: "x#58;#59;y, ⊥ / noop (?)"},
		{input: `"q"`, want: "'q', ⊥ / noop (?)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			m := stubModel{transitions: []domain.Transition{
				{Key: domain.Key{State: domain.Initial, Top: domain.Bottom, Input: tt.input}, To: domain.Final},
			}}
			out := graph.GenerateMermaid(m, nil)
			assert.Contains(t, out, "q_init --> q_final : "+tt.want)
			assert.NotContains(t, out, "#58#59;")
		})
	}
}

type stubModel struct {
	transitions []domain.Transition
}

func (s stubModel) States() []domain.State { return []domain.State{domain.Initial, domain.Final} }

func (s stubModel) Transitions() []domain.Transition { return s.transitions }
