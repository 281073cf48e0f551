package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerJSON(t *testing.T) {
	out, err := json.Marshal([]Answer{NumberAnswer(7), SymbolAnswer(SymbolLess)})
	require.NoError(t, err)
	assert.JSONEq(t, `[7, "<"]`, string(out))

	var in struct {
		Answers []Answer `json:"answers"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"answers": [12, ">", "=", " 4 "]}`), &in))
	assert.Equal(t, []Answer{
		NumberAnswer(12),
		SymbolAnswer(SymbolGreater),
		SymbolAnswer(SymbolEqual),
		NumberAnswer(4),
	}, in.Answers)
}

func TestAnswerJSONRejectsGarbage(t *testing.T) {
	var a Answer
	assert.Error(t, json.Unmarshal([]byte(`"seven"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`true`), &a))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &a))
}

func TestParseAnswer(t *testing.T) {
	a, err := ParseAnswer("<")
	require.NoError(t, err)
	assert.True(t, a.IsSymbol())
	assert.Equal(t, "<", a.String())

	a, err = ParseAnswer("-3")
	require.NoError(t, err)
	assert.Equal(t, NumberAnswer(-3), a)

	_, err = ParseAnswer("")
	assert.Error(t, err)
}
