package game

import "strings"

// Topic identifies one of the arithmetic games.
type Topic string

const (
	TopicCounting       Topic = "counting"
	TopicAddition       Topic = "addition"
	TopicSubtraction    Topic = "subtraction"
	TopicMultiplication Topic = "multiplication"
	TopicDivision       Topic = "division"
	TopicSequence       Topic = "sequence"
	TopicComparison     Topic = "comparison"
)

// Topics lists every playable topic in menu order.
var Topics = []Topic{
	TopicCounting,
	TopicAddition,
	TopicSubtraction,
	TopicMultiplication,
	TopicDivision,
	TopicSequence,
	TopicComparison,
}

func (t Topic) Valid() bool {
	for _, known := range Topics {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTopic normalizes s and reports whether it names a known topic.
func ParseTopic(s string) (Topic, bool) {
	t := Topic(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}
