package tui

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/ppda/pkg/domain"
)

// ModelView is the part of an automaton a report describes.
type ModelView interface {
	Alphabet() []domain.Symbol
	StackAlphabet() []domain.Symbol
	States() []domain.State
	Transitions() []domain.Transition
	CheckNormalized() error
}

// DefaultTopK is the number of distinct strings listed by a report.
const DefaultTopK = 10

// Report builds a markdown summary of a model and a set of its samples.
// Samples with the same text are grouped and the topK most frequent are
// listed with their exact weight next to the empirical frequency.
// The mass line sums the exact weights of all distinct strings seen.
func Report(name string, m ModelView, samples []domain.Sample, topK int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", name)
	fmt.Fprintf(&sb, "- **Σ**: %s\n", joinSymbols(m.Alphabet()))
	fmt.Fprintf(&sb, "- **Γ**: %s\n", joinSymbols(m.StackAlphabet()))
	fmt.Fprintf(&sb, "- **States**: %d\n", len(m.States()))
	fmt.Fprintf(&sb, "- **Transitions**: %d\n", len(m.Transitions()))
	if err := m.CheckNormalized(); err != nil {
		fmt.Fprintf(&sb, "- **Normalized**: no (%s)\n", err)
	} else {
		sb.WriteString("- **Normalized**: yes\n")
	}

	if len(samples) == 0 {
		return sb.String()
	}

	type row struct {
		text   string
		weight string
		count  int
	}
	rows := make(map[string]*row)
	var order []string
	total := 0
	mass := new(big.Rat)
	sep := symbolSeparator(samples)
	for _, s := range samples {
		// Symbols may span several characters, so group by the symbol
		// sequence rather than the concatenated text.
		key := domain.NewString(s.Symbols...).Join("\x00")
		r, ok := rows[key]
		if !ok {
			r = &row{text: domain.NewString(s.Symbols...).Join(sep), weight: s.Weight}
			rows[key] = r
			order = append(order, key)
			if w, ok := new(big.Rat).SetString(s.Weight); ok {
				mass.Add(mass, w)
			}
		}
		r.count++
		total += len(s.Symbols)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rows[order[i]].count > rows[order[j]].count
	})
	if topK > 0 && len(order) > topK {
		order = order[:topK]
	}

	fmt.Fprintf(&sb, "\n## Samples\n\n")
	fmt.Fprintf(&sb, "- **Count**: %d\n", len(samples))
	fmt.Fprintf(&sb, "- **Distinct**: %d\n", len(rows))
	fmt.Fprintf(&sb, "- **Mean length**: %s\n", meanLength(total, len(samples)))
	fmt.Fprintf(&sb, "- **Mass**: %s (%s)\n\n", mass.RatString(), mass.FloatString(4))
	sb.WriteString("| String | Weight | Count | Frequency |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, key := range order {
		r := rows[key]
		fmt.Fprintf(&sb, "| `%s` | %s | %d | %.3f |\n", escapeCell(r.text), r.weight, r.count, float64(r.count)/float64(len(samples)))
	}
	return sb.String()
}

func meanLength(total, n int) string {
	return big.NewRat(int64(total), int64(n)).FloatString(2)
}

func joinSymbols(syms []domain.Symbol) string {
	quoted := make([]string, len(syms))
	for i, s := range syms {
		quoted[i] = "`" + string(s) + "`"
	}
	return strings.Join(quoted, ", ")
}

// symbolSeparator is "" when every symbol is a single character and " "
// otherwise, so distinct sequences stay distinguishable in the table.
func symbolSeparator(samples []domain.Sample) string {
	for _, s := range samples {
		for _, sym := range s.Symbols {
			if utf8.RuneCountInString(string(sym)) > 1 {
				return " "
			}
		}
	}
	return ""
}

func escapeCell(s string) string {
	if s == "" {
		return "ε"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}
