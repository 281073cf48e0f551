package game

// Generator draws questions. It is not safe for concurrent use unless its
// Source is (see LockedSource).
type Generator struct {
	src Source
}

func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewTimeSource()
	}
	return &Generator{src: src}
}

// Generate builds a fresh question. Unknown topics yield the sentinel
// question instead of an error.
func (g *Generator) Generate(topic Topic, difficulty Difficulty) Question {
	if !difficulty.Valid() {
		difficulty = DifficultyEasy
	}

	p := g.draw(topic, difficulty)
	if p == nil {
		return sentinelQuestion(topic, difficulty)
	}

	var options []Answer
	if p.Topic() == TopicComparison {
		options = ComparisonOptions()
	} else {
		options = SynthesizeOptions(g.src, p.Answer().Number)
	}

	return newQuestion(p, difficulty, options)
}

func (g *Generator) draw(topic Topic, difficulty Difficulty) Problem {
	r := RangeFor(topic, difficulty)

	switch topic {
	case TopicCounting:
		return CountingProblem{
			Count:    between(g.src, 1, r.Max),
			Icon:     countingIcons[g.src.Intn(len(countingIcons))],
			LineStop: g.src.Intn(2) == 0,
		}
	case TopicAddition:
		a := between(g.src, 1, r.Max)
		b := between(g.src, 1, r.Max)
		return AdditionProblem{A: a, B: b}
	case TopicSubtraction:
		a := between(g.src, 1, r.Max)
		b := between(g.src, 0, a-1)
		return SubtractionProblem{A: a, B: b}
	case TopicMultiplication:
		a := between(g.src, 1, r.Max)
		b := between(g.src, 1, r.Max)
		return MultiplicationProblem{A: a, B: b}
	case TopicDivision:
		divisor := between(g.src, 1, r.Max)
		quotient := between(g.src, 1, r.Max)
		return DivisionProblem{Dividend: divisor * quotient, Divisor: divisor, Quotient: quotient}
	case TopicSequence:
		start := between(g.src, 1, r.Max)
		step := between(g.src, 1, r.SecondaryMax)
		return SequenceProblem{Start: start, Step: step}
	case TopicComparison:
		left := between(g.src, 1, r.Max)
		right := between(g.src, 1, r.Max)
		return ComparisonProblem{Left: left, Right: right}
	}
	return nil
}
