package game

// Question is one presentation to the player. It is never mutated after
// generation; a session replaces it wholesale.
type Question struct {
	Topic      Topic      `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Prompt     string     `json:"prompt"`
	Visual     Visual     `json:"visual"`
	Answer     Answer     `json:"answer"`
	RenderMode RenderMode `json:"render_mode"`
	Options    []Answer   `json:"options"`

	// Problem is nil only for the unknown-topic sentinel.
	Problem Problem `json:"-"`
}

func newQuestion(p Problem, difficulty Difficulty, options []Answer) Question {
	return Question{
		Topic:      p.Topic(),
		Difficulty: difficulty,
		Prompt:     p.Prompt(),
		Visual:     p.Visual(),
		Answer:     p.Answer(),
		RenderMode: p.Mode(),
		Options:    options,
		Problem:    p,
	}
}

// sentinelQuestion is what an unknown topic produces: answer 0, no options.
func sentinelQuestion(topic Topic, difficulty Difficulty) Question {
	return Question{
		Topic:      topic,
		Difficulty: difficulty,
		Prompt:     "Unknown Game",
		Visual:     Visual{Text: "?"},
		Answer:     NumberAnswer(0),
		RenderMode: RenderPlain,
		Options:    []Answer{},
	}
}

func (q Question) IsSentinel() bool {
	return q.Problem == nil
}

func (q Question) HasOption(a Answer) bool {
	for _, o := range q.Options {
		if o == a {
			return true
		}
	}
	return false
}

// Clone copies the option slice so callers can't alias session state.
func (q Question) Clone() Question {
	out := q
	out.Options = append([]Answer(nil), q.Options...)
	if q.Visual.Groups != nil {
		out.Visual.Groups = append([]int(nil), q.Visual.Groups...)
	}
	return out
}
