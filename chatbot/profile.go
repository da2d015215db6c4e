package chatbot

import (
	"strings"
	"unicode"
)

// Profile is what the engine knows about the current user.
type Profile struct {
	Name      string
	interests []string
}

// Interests returns the interest tags in the order they came up.
func (p *Profile) Interests() []string {
	return append([]string(nil), p.interests...)
}

// HasInterest reports whether topic was already recorded.
func (p *Profile) HasInterest(topic string) bool {
	for _, i := range p.interests {
		if i == topic {
			return true
		}
	}
	return false
}

// AddInterest records topic and reports whether it was new.
func (p *Profile) AddInterest(topic string) bool {
	if p.HasInterest(topic) {
		return false
	}
	p.interests = append(p.interests, topic)
	return true
}

// IsValidName reports whether name is non-blank and made of letters and
// spaces only.
func IsValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}
