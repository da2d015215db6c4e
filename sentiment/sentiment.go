// Package sentiment tags an utterance with a mood and frames replies for it.
package sentiment

import "strings"

// Sentiment is the mood detected in a user message
type Sentiment string

const (
	Worried    Sentiment = "worried"
	Frustrated Sentiment = "frustrated"
	Happy      Sentiment = "happy"
	Sad        Sentiment = "sad"
	Curious    Sentiment = "curious"
	Neutral    Sentiment = "neutral"
)

// Checked in order; the first category with a hit wins.
var moods = []struct {
	sentiment Sentiment
	keywords  []string
}{
	{Worried, []string{"worried", "scared", "afraid", "nervous", "anxious"}},
	{Frustrated, []string{"angry", "mad", "frustrated", "annoyed", "upset"}},
	{Happy, []string{"happy", "excited", "glad", "pleased", "thrilled"}},
	{Sad, []string{"sad", "depressed", "unhappy", "miserable", "down"}},
	{Curious, []string{"interested", "curious", "want to know", "wondering", "tell me about"}},
}

// Detect classifies text by substring keyword match.
func Detect(text string) Sentiment {
	lower := strings.ToLower(text)
	for _, m := range moods {
		for _, kw := range m.keywords {
			if strings.Contains(lower, kw) {
				return m.sentiment
			}
		}
	}
	return Neutral
}

// Adjust wraps reply with framing for the given mood. Neutral and unknown
// moods return reply untouched.
func Adjust(reply string, s Sentiment) string {
	switch s {
	case Worried:
		return "I understand this might be concerning. " + reply + " Remember, being aware is the first step to staying safe."
	case Frustrated:
		return "I hear your frustration. Cybersecurity can be complex, but " + strings.ToLower(reply)
	case Happy:
		return "Great to see your enthusiasm! " + reply
	case Sad:
		return "I'm sorry you're feeling this way. " + reply + " Taking small steps can help improve your security."
	case Curious:
		return "That's a great question! " + reply
	default:
		return reply
	}
}
