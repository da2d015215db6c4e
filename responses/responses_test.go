package responses

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same index, clamped to n.
type fixedRand int

func (f fixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestSelectRotatesSets(t *testing.T) {
	lib := NewLibrary(fixedRand(0))

	// Counter is bumped before the set is chosen: 1 -> set 1, 2 -> set 0.
	first := lib.Select(Password)
	second := lib.Select(Password)
	third := lib.Select(Password)

	assert.Equal(t, 1, lib.setIndex(Password, first))
	assert.Equal(t, 0, lib.setIndex(Password, second))
	assert.Equal(t, 1, lib.setIndex(Password, third))
	assert.NotEqual(t, first, second)
	assert.Equal(t, 3, lib.count(Password))
}

func TestSelectSingleSetVariesByRandom(t *testing.T) {
	lib := NewLibrary(rand.New(rand.NewSource(7)))

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		line := lib.Select(Privacy)
		require.Equal(t, 0, lib.setIndex(Privacy, line))
		seen[line] = true
	}
	assert.Greater(t, len(seen), 1, "random pick should vary within the single set")
}

func TestSelectBothSetsObserved(t *testing.T) {
	for _, topic := range []string{Password, Phishing} {
		t.Run(topic, func(t *testing.T) {
			lib := NewLibrary(rand.New(rand.NewSource(1)))
			sets := make(map[int]bool)
			for i := 0; i < 20; i++ {
				sets[lib.setIndex(topic, lib.Select(topic))] = true
			}
			assert.True(t, sets[0])
			assert.True(t, sets[1])
		})
	}
}

func TestSelectUnknownTopic(t *testing.T) {
	lib := NewLibrary(fixedRand(0))
	assert.False(t, lib.has("weather"))
	assert.Equal(t, "", lib.Select("weather"))
	assert.Equal(t, 0, lib.count("weather"))

	for _, topic := range []string{Password, Phishing, Privacy, SafeBrowsing, Cybersecurity} {
		assert.True(t, lib.has(topic), topic)
	}
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"ransomware"}, Keywords("Tell me about   ransomware"))
	assert.Empty(t, Keywords("what are you"))
	assert.Empty(t, Keywords("   "))
}

func TestFallbackReply(t *testing.T) {
	fb := NewFallback(fixedRand(0))

	t.Run("single match", func(t *testing.T) {
		assert.Equal(t, "Ransomware encrypts files and demands payment for their release.", fb.Reply("tell me about ransomware"))
	})

	t.Run("multiple matches", func(t *testing.T) {
		got := fb.Candidates("malware")
		// "Malware includes..." and "...Ransomware..." does not contain "malware".
		require.Len(t, got, 1)

		got = fb.Candidates("phishing")
		require.Len(t, got, 3)
		for _, r := range got {
			assert.Contains(t, strings.ToLower(r), "phishing")
		}
		assert.Equal(t, got[0], fb.Reply("phishing"))
	})

	t.Run("only stop words", func(t *testing.T) {
		assert.Equal(t, NoMatch, fb.Reply("what are you"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Equal(t, NoMatch, fb.Reply("zebra crossing"))
	})
}
