package game

const (
	CueCorrect   = "Correct! Great job!"
	CueIncorrect = "Oops! Try again."
)

// SpeechCue speaks short feedback phrases. Implementations must not block
// and must not call back into the session.
type SpeechCue interface {
	Say(text string)
}

type NopCue struct{}

func (NopCue) Say(string) {}

// CueFunc adapts a plain function to SpeechCue.
type CueFunc func(text string)

func (f CueFunc) Say(text string) {
	f(text)
}
