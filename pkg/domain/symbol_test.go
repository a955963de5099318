package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/ppda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		sep  string
		want domain.String
	}{
		{name: "Runes", text: "ab(", sep: "", want: domain.String{"a", "b", "("}},
		{name: "Empty", text: "", sep: "", want: domain.String{}},
		{name: "Separator", text: "foo bar  baz", sep: " ", want: domain.String{"foo", "bar", "baz"}},
		{name: "Comma", text: "x, y ,z", sep: ",", want: domain.String{"x", "y", "z"}},
		{name: "Unicode", text: "⊥a", sep: "", want: domain.String{"⊥", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Tokenize(tt.text, tt.sep))
		})
	}
}

func TestString_AppendAndDisplay(t *testing.T) {
	var s domain.String
	assert.Equal(t, "", s.String())

	s.Append("a")
	s.Append("bc")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "abc", s.String())
	assert.Equal(t, "a bc", s.Join(" "))
}

func TestNewString_Copies(t *testing.T) {
	src := []domain.Symbol{"a", "b"}
	s := domain.NewString(src...)
	src[0] = "z"
	assert.Equal(t, domain.Symbol("a"), s[0])
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "init", domain.Initial.String())
	assert.Equal(t, "final", domain.Final.String())
	assert.Equal(t, "q3", domain.State(3).String())
	assert.True(t, domain.Final.IsTerminal())
	assert.False(t, domain.Initial.IsTerminal())
}

func TestAction_TextRoundTrip(t *testing.T) {
	raw, err := json.Marshal(struct {
		A domain.Action `json:"a"`
	}{A: domain.Pop})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"pop"}`, string(raw))

	var back struct {
		A domain.Action `json:"a"`
	}
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, domain.Pop, back.A)

	var bad domain.Action
	assert.Error(t, bad.UnmarshalText([]byte("push")))
}
