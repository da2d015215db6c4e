package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Sentiment
	}{
		{"worried", "I'm worried about my bank account", Worried},
		{"worried-case", "I am SCARED of hackers", Worried},
		{"frustrated", "this is so annoying, I'm annoyed", Frustrated},
		{"happy", "I'm excited to learn", Happy},
		{"sad", "I feel miserable after being hacked", Sad},
		{"curious", "tell me about phishing", Curious},
		{"neutral", "password tips", Neutral},
		{"empty", "", Neutral},

		// Priority: worried beats everything else.
		{"worried-over-happy", "happy but nervous", Worried},
		{"frustrated-over-sad", "sad and angry", Frustrated},
		// Substring semantics: "unhappy" contains "happy", happy is checked first.
		{"unhappy-is-happy", "I'm unhappy", Happy},
		// "down" matches inside "download".
		{"download-is-sad", "can I download this", Sad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.input))
		})
	}
}

func TestAdjust(t *testing.T) {
	const reply = "Use a password manager."

	tests := []struct {
		s    Sentiment
		want string
	}{
		{Worried, "I understand this might be concerning. Use a password manager. Remember, being aware is the first step to staying safe."},
		{Frustrated, "I hear your frustration. Cybersecurity can be complex, but use a password manager."},
		{Happy, "Great to see your enthusiasm! Use a password manager."},
		{Sad, "I'm sorry you're feeling this way. Use a password manager. Taking small steps can help improve your security."},
		{Curious, "That's a great question! Use a password manager."},
		{Neutral, reply},
		{Sentiment("bogus"), reply},
	}

	for _, tt := range tests {
		t.Run(string(tt.s), func(t *testing.T) {
			assert.Equal(t, tt.want, Adjust(reply, tt.s))
		})
	}
}
