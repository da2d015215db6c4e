package responses

import "strings"

// NoMatch is the reply when no canned statement shares a word with the input.
const NoMatch = "I'm sorry, I don't understand that question. Please ask about cybersecurity topics."

// stopwords are dropped before matching. "attacks" and "safety" are here
// because nearly every canned statement would match them.
var stopwords = map[string]bool{
	"tell": true, "me": true, "about": true, "are": true, "you": true,
	"your": true, "whats": true, "can": true, "i": true, "ask": true,
	"the": true, "a": true, "an": true, "how": true, "what": true,
	"where": true, "when": true, "why": true, "attacks": true, "safety": true,
}

var replies = []string{
	"Password security requires strong, unique passwords and regular changes.",
	"Multi-factor authentication adds an extra layer of security beyond passwords.",
	"Phishing attacks often use fake emails to steal sensitive information.",
	"Never click on suspicious links or download attachments from unknown emails.",
	"Ransomware encrypts files and demands payment for their release.",
	"Social engineering manipulates people into revealing confidential information.",
	"Malware includes viruses, worms, and trojans that harm computer systems.",
	"Avoid entering personal information on untrusted or unknown websites.",
	"Always check if a website uses HTTPS before entering sensitive data.",
	"I can explain cybersecurity concepts and best practices.",
	"Ask me about common cyber threats and how to avoid them.",
	"Hello! How can I help with cybersecurity today?",
	"Hi there! You can ask me about phishing, online security, or password safety.",
	"Phishing emails often have urgent requests or too-good-to-be-true offers.",
	"Hover over links to check their real destination before clicking.",
	"Keep software updated to protect against known vulnerabilities.",
}

// Fallback answers free text that no rule recognised.
type Fallback struct {
	replies []string
	rng     Rand
}

// NewFallback returns a fallback over the built-in reply pool.
func NewFallback(rng Rand) *Fallback {
	return &Fallback{replies: replies, rng: rng}
}

// Keywords returns the lower-cased whitespace tokens of text that are not
// stop words.
func Keywords(text string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if stopwords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Candidates returns the pool entries containing any keyword of text.
func (f *Fallback) Candidates(text string) []string {
	words := Keywords(text)
	if len(words) == 0 {
		return nil
	}

	var matches []string
	for _, r := range f.replies {
		lower := strings.ToLower(r)
		for _, w := range words {
			if strings.Contains(lower, w) {
				matches = append(matches, r)
				break
			}
		}
	}
	return matches
}

// Reply picks one matching statement at random, or NoMatch.
func (f *Fallback) Reply(text string) string {
	matches := f.Candidates(text)
	if len(matches) == 0 {
		return NoMatch
	}
	return matches[f.rng.Intn(len(matches))]
}
