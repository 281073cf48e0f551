package game

const (
	optionCount = 3

	// maxDistractorDraws caps the random phase of SynthesizeOptions.
	maxDistractorDraws = 64
	// widenAfter consecutive useless draws double the draw range.
	widenAfter = 8
)

// ComparisonOptions is the fixed choice set for the comparison topic.
func ComparisonOptions() []Answer {
	return []Answer{
		SymbolAnswer(SymbolGreater),
		SymbolAnswer(SymbolLess),
		SymbolAnswer(SymbolEqual),
	}
}

// SynthesizeOptions returns three distinct answers, one of them correct, in
// random order. Distractors are drawn from [1,10], or [1,20] once the
// correct answer is above 10. The random phase is bounded; whatever is still
// missing afterwards is filled with correct+1, correct+2, ...
func SynthesizeOptions(src Source, correct int) []Answer {
	options := make([]Answer, 0, optionCount)
	options = append(options, NumberAnswer(correct))
	seen := map[int]bool{correct: true}

	upper := 10
	if correct > 10 {
		upper = 20
	}

	misses := 0
	for draws := 0; draws < maxDistractorDraws && len(options) < optionCount; draws++ {
		r := between(src, 1, upper)
		if seen[r] {
			misses++
			if misses >= widenAfter {
				upper *= 2
				misses = 0
			}
			continue
		}
		misses = 0
		seen[r] = true
		options = append(options, NumberAnswer(r))
	}

	for d := 1; len(options) < optionCount; d++ {
		if v := correct + d; !seen[v] {
			seen[v] = true
			options = append(options, NumberAnswer(v))
		}
	}

	shuffle(src, options)
	return options
}
