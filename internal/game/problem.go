package game

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderMode tells the client how to draw a question.
type RenderMode string

const (
	RenderPlain                  RenderMode = "plain"
	RenderItemCounting           RenderMode = "item-counting"
	RenderLineStopCounting       RenderMode = "line-stop-counting"
	RenderLineStopAddition       RenderMode = "line-stop-addition"
	RenderLineStopSubtraction    RenderMode = "line-stop-subtraction"
	RenderLineStopMultiplication RenderMode = "line-stop-multiplication"
)

// LineStop reports whether the mode presents tappable marks.
func (m RenderMode) LineStop() bool {
	switch m {
	case RenderLineStopCounting, RenderLineStopAddition, RenderLineStopSubtraction, RenderLineStopMultiplication:
		return true
	}
	return false
}

// Visual is the displayable part of a question. Groups holds the number of
// marks in each group for line-stop modes; Target is how many marks the
// player has to cross out (subtraction only).
type Visual struct {
	Text   string `json:"text"`
	Groups []int  `json:"groups,omitempty"`
	Target int    `json:"target,omitempty"`
}

// Marks is the total number of tappable marks.
func (v Visual) Marks() int {
	total := 0
	for _, g := range v.Groups {
		total += g
	}
	return total
}

// Problem is the per-topic variant behind a Question. The set of
// implementations is closed; see the concrete types below.
type Problem interface {
	Topic() Topic
	Prompt() string
	Visual() Visual
	Mode() RenderMode
	Answer() Answer

	problem()
}

var countingIcons = []string{"🍎", "🍌", "🎈", "🚗", "⭐"}

type CountingProblem struct {
	Count    int
	Icon     string
	LineStop bool
}

func (CountingProblem) Topic() Topic     { return TopicCounting }
func (CountingProblem) Prompt() string   { return "Count the items!" }
func (p CountingProblem) Answer() Answer { return NumberAnswer(p.Count) }
func (CountingProblem) problem()         {}

func (p CountingProblem) Mode() RenderMode {
	if p.LineStop {
		return RenderLineStopCounting
	}
	return RenderItemCounting
}

func (p CountingProblem) Visual() Visual {
	if p.LineStop {
		return Visual{Text: repeatJoin("|", p.Count), Groups: []int{p.Count}}
	}
	return Visual{Text: repeatJoin(p.Icon, p.Count)}
}

type AdditionProblem struct {
	A, B int
}

func (AdditionProblem) Topic() Topic     { return TopicAddition }
func (p AdditionProblem) Prompt() string { return fmt.Sprintf("%d + %d = ?", p.A, p.B) }
func (AdditionProblem) Mode() RenderMode { return RenderLineStopAddition }
func (p AdditionProblem) Answer() Answer { return NumberAnswer(p.A + p.B) }
func (AdditionProblem) problem()         {}

func (p AdditionProblem) Visual() Visual {
	return Visual{Text: fmt.Sprintf("%d + %d", p.A, p.B), Groups: []int{p.A, p.B}}
}

// SubtractionProblem always has 0 <= B < A.
type SubtractionProblem struct {
	A, B int
}

func (SubtractionProblem) Topic() Topic     { return TopicSubtraction }
func (p SubtractionProblem) Prompt() string { return fmt.Sprintf("%d - %d = ?", p.A, p.B) }
func (SubtractionProblem) Mode() RenderMode { return RenderLineStopSubtraction }
func (p SubtractionProblem) Answer() Answer { return NumberAnswer(p.A - p.B) }
func (SubtractionProblem) problem()         {}

func (p SubtractionProblem) Visual() Visual {
	return Visual{Text: fmt.Sprintf("%d - %d", p.A, p.B), Groups: []int{p.A}, Target: p.B}
}

// MultiplicationProblem is drawn as A groups of B marks.
type MultiplicationProblem struct {
	A, B int
}

func (MultiplicationProblem) Topic() Topic     { return TopicMultiplication }
func (p MultiplicationProblem) Prompt() string { return fmt.Sprintf("%d x %d = ?", p.A, p.B) }
func (MultiplicationProblem) Mode() RenderMode { return RenderLineStopMultiplication }
func (p MultiplicationProblem) Answer() Answer { return NumberAnswer(p.A * p.B) }
func (MultiplicationProblem) problem()         {}

func (p MultiplicationProblem) Visual() Visual {
	groups := make([]int, p.A)
	for i := range groups {
		groups[i] = p.B
	}
	return Visual{Text: fmt.Sprintf("%d x %d", p.A, p.B), Groups: groups}
}

// MarkIndex maps a (group, line) position to its global mark index.
func (p MultiplicationProblem) MarkIndex(group, line int) int {
	return group*p.B + line
}

// DivisionProblem is built from divisor and quotient so it always divides exactly.
type DivisionProblem struct {
	Dividend, Divisor, Quotient int
}

func (DivisionProblem) Topic() Topic     { return TopicDivision }
func (DivisionProblem) Mode() RenderMode { return RenderPlain }
func (p DivisionProblem) Answer() Answer { return NumberAnswer(p.Quotient) }
func (DivisionProblem) problem()         {}

func (p DivisionProblem) Prompt() string {
	return fmt.Sprintf("%d ÷ %d = ?", p.Dividend, p.Divisor)
}

func (p DivisionProblem) Visual() Visual {
	return Visual{Text: fmt.Sprintf("%d ÷ %d", p.Dividend, p.Divisor)}
}

type SequenceProblem struct {
	Start, Step int
}

func (SequenceProblem) Topic() Topic     { return TopicSequence }
func (SequenceProblem) Prompt() string   { return "What comes next?" }
func (SequenceProblem) Mode() RenderMode { return RenderPlain }
func (p SequenceProblem) Answer() Answer { return NumberAnswer(p.Start + 3*p.Step) }
func (SequenceProblem) problem()         {}

// Terms returns the three displayed terms.
func (p SequenceProblem) Terms() []int {
	return []int{p.Start, p.Start + p.Step, p.Start + 2*p.Step}
}

func (p SequenceProblem) Visual() Visual {
	parts := make([]string, 0, 4)
	for _, t := range p.Terms() {
		parts = append(parts, strconv.Itoa(t))
	}
	parts = append(parts, "?")
	return Visual{Text: strings.Join(parts, ", ")}
}

type ComparisonProblem struct {
	Left, Right int
}

func (ComparisonProblem) Topic() Topic     { return TopicComparison }
func (ComparisonProblem) Prompt() string   { return "Which symbol fits?" }
func (ComparisonProblem) Mode() RenderMode { return RenderPlain }
func (ComparisonProblem) problem()         {}

func (p ComparisonProblem) Visual() Visual {
	return Visual{Text: fmt.Sprintf("%d ? %d", p.Left, p.Right)}
}

func (p ComparisonProblem) Answer() Answer {
	switch {
	case p.Left > p.Right:
		return SymbolAnswer(SymbolGreater)
	case p.Left < p.Right:
		return SymbolAnswer(SymbolLess)
	default:
		return SymbolAnswer(SymbolEqual)
	}
}

func repeatJoin(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat(s+" ", n), " ")
}
