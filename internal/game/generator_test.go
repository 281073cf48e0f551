package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAnswerIsAlwaysAnOption(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		gen := NewGenerator(NewSource(seed))
		for _, topic := range Topics {
			for _, difficulty := range Difficulties {
				q := gen.Generate(topic, difficulty)
				name := fmt.Sprintf("seed=%d %s/%s", seed, topic, difficulty)

				require.False(t, q.IsSentinel(), name)
				assert.Equal(t, topic, q.Topic, name)
				assert.Equal(t, difficulty, q.Difficulty, name)
				assert.NotEmpty(t, q.Prompt, name)
				assert.NotEmpty(t, q.Visual.Text, name)
				require.Len(t, q.Options, 3, name)
				assert.True(t, q.HasOption(q.Answer), name)

				distinct := map[Answer]bool{}
				for _, o := range q.Options {
					distinct[o] = true
				}
				assert.Len(t, distinct, 3, name)
			}
		}
	}
}

func TestGenerateProblemShapes(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		gen := NewGenerator(NewSource(seed))
		for _, difficulty := range Difficulties {
			r := RangeFor(TopicSubtraction, difficulty)
			sub := gen.Generate(TopicSubtraction, difficulty).Problem.(SubtractionProblem)
			assert.GreaterOrEqual(t, sub.B, 0)
			assert.Less(t, sub.B, sub.A)
			assert.LessOrEqual(t, sub.A, r.Max)
			assert.Equal(t, sub.A-sub.B, sub.Answer().Number)

			div := gen.Generate(TopicDivision, difficulty).Problem.(DivisionProblem)
			assert.GreaterOrEqual(t, div.Divisor, 1)
			assert.GreaterOrEqual(t, div.Quotient, 1)
			assert.Equal(t, div.Divisor*div.Quotient, div.Dividend)
			assert.Zero(t, div.Dividend%div.Divisor)

			seq := gen.Generate(TopicSequence, difficulty).Problem.(SequenceProblem)
			terms := seq.Terms()
			step := terms[1] - terms[0]
			assert.Equal(t, step, terms[2]-terms[1])
			assert.Equal(t, seq.Start+step*3, seq.Answer().Number)

			count := gen.Generate(TopicCounting, difficulty)
			c := count.Problem.(CountingProblem)
			assert.GreaterOrEqual(t, c.Count, 1)
			assert.LessOrEqual(t, c.Count, RangeFor(TopicCounting, difficulty).Max)
			if c.LineStop {
				assert.Equal(t, RenderLineStopCounting, count.RenderMode)
				assert.Equal(t, c.Count, count.Visual.Marks())
			} else {
				assert.Equal(t, RenderItemCounting, count.RenderMode)
			}
		}
	}
}

func TestGenerateDivisionScripted(t *testing.T) {
	// divisor draw 1 -> 2, quotient draw 2 -> 3
	gen := NewGenerator(newScriptedSource(1, 2))

	q := gen.Generate(TopicDivision, DifficultyEasy)

	div, ok := q.Problem.(DivisionProblem)
	require.True(t, ok)
	assert.Equal(t, 6, div.Dividend)
	assert.Equal(t, 2, div.Divisor)
	assert.Equal(t, NumberAnswer(3), q.Answer)
	assert.Equal(t, "6 ÷ 2 = ?", q.Prompt)
	assert.Equal(t, RenderPlain, q.RenderMode)
	assert.True(t, q.HasOption(NumberAnswer(3)))
}

func TestGenerateComparisonScripted(t *testing.T) {
	// medium range is [1,10]: draws 3 and 6 give 4 and 7
	gen := NewGenerator(newScriptedSource(3, 6))

	q := gen.Generate(TopicComparison, DifficultyMedium)

	assert.Equal(t, SymbolAnswer(SymbolLess), q.Answer)
	assert.Equal(t, "4 ? 7", q.Visual.Text)
	assert.ElementsMatch(t, []Answer{
		SymbolAnswer(SymbolGreater),
		SymbolAnswer(SymbolLess),
		SymbolAnswer(SymbolEqual),
	}, q.Options)
}

func TestGenerateMultiplicationVisual(t *testing.T) {
	// a draw 2 -> 3 groups, b draw 1 -> 2 marks each
	gen := NewGenerator(newScriptedSource(2, 1))

	q := gen.Generate(TopicMultiplication, DifficultyEasy)

	p := q.Problem.(MultiplicationProblem)
	assert.Equal(t, []int{2, 2, 2}, q.Visual.Groups)
	assert.Equal(t, 6, q.Visual.Marks())
	assert.Equal(t, 5, p.MarkIndex(2, 1))
	assert.Equal(t, NumberAnswer(6), q.Answer)
}

func TestGenerateUnknownTopic(t *testing.T) {
	gen := NewGenerator(NewSource(7))

	q := gen.Generate(Topic("geometry"), DifficultyHard)

	assert.True(t, q.IsSentinel())
	assert.Equal(t, "Unknown Game", q.Prompt)
	assert.Equal(t, "?", q.Visual.Text)
	assert.Equal(t, NumberAnswer(0), q.Answer)
	assert.Empty(t, q.Options)
}

func TestGenerateInvalidDifficultyFallsBackToEasy(t *testing.T) {
	gen := NewGenerator(NewSource(3))

	q := gen.Generate(TopicAddition, Difficulty("expert"))

	assert.Equal(t, DifficultyEasy, q.Difficulty)
	p := q.Problem.(AdditionProblem)
	assert.LessOrEqual(t, p.A, 5)
	assert.LessOrEqual(t, p.B, 5)
}
