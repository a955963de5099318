package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ppda/pkg/domain"
)

// Model is the read-only view of an automaton needed to draw it.
type Model interface {
	States() []domain.State
	Transitions() []domain.Transition
}

// GraphOverlay contains dynamic run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.State
	CurrentState  *domain.State
}

// NewOverlay highlights the visited states and marks current.
func NewOverlay(visited []domain.State, current domain.State) *GraphOverlay {
	return &GraphOverlay{
		VisitedStates: append([]domain.State(nil), visited...),
		CurrentState:  &current,
	}
}

// GenerateMermaid produces a Mermaid stateDiagram-v2 for m.
// The initial state is entered from [*] and the final state exits to it.
// Each edge is labelled "input, top / stack ops (weight)".
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(m Model, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	for _, q := range m.States() {
		sb.WriteString(fmt.Sprintf("    state \"%s\" as %s\n", q, stateID(q)))
	}
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", stateID(domain.Initial)))

	for _, t := range m.Transitions() {
		sb.WriteString(fmt.Sprintf("    %s --> %s : %s\n", stateID(t.State), stateID(t.To), edgeLabel(t)))
	}
	sb.WriteString(fmt.Sprintf("    %s --> [*]\n", stateID(domain.Final)))

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")

		seen := make(map[domain.State]bool)
		for _, q := range overlay.VisitedStates {
			if seen[q] {
				continue
			}
			seen[q] = true
			sb.WriteString(fmt.Sprintf("    class %s visited\n", stateID(q)))
		}
		if overlay.CurrentState != nil {
			sb.WriteString(fmt.Sprintf("    class %s current\n", stateID(*overlay.CurrentState)))
		}
	}

	return sb.String()
}

func stateID(q domain.State) string {
	switch q {
	case domain.Initial:
		return "q_init"
	case domain.Final:
		return "q_final"
	}
	if q < 0 {
		return fmt.Sprintf("q_m%d", -int(q))
	}
	return fmt.Sprintf("q%d", int(q))
}

func edgeLabel(t domain.Transition) string {
	var ops []string
	if t.Action == domain.Pop {
		ops = append(ops, "pop")
	}
	if !t.Push.IsNone() {
		ops = append(ops, "push "+sanitizeLabel(string(t.Push)))
	}
	if len(ops) == 0 {
		ops = append(ops, "noop")
	}
	w := "?"
	if t.Weight != nil {
		w = t.Weight.RatString()
	}
	return fmt.Sprintf("%s, %s / %s (%s)", sanitizeLabel(string(t.Input)), sanitizeLabel(string(t.Top)), strings.Join(ops, " "), w)
}

// labelEscaper rewrites characters that end a Mermaid edge label.
// A single Replacer pass keeps the inserted entity codes from being escaped again.
var labelEscaper = strings.NewReplacer(":", "#58;", ";", "#59;", "\"", "'", "\n", " ")

func sanitizeLabel(s string) string {
	return labelEscaper.Replace(s)
}
