// Package responses holds the canned replies of the assistant: per-topic
// rotating response sets and the free-text fallback pool.
package responses

// Rand is the random source used to pick a line. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Topic names. They double as the interest tags recorded for a user.
const (
	Password      = "password"
	Phishing      = "phishing"
	Privacy       = "privacy"
	SafeBrowsing  = "safe browsing"
	Cybersecurity = "cybersecurity"
)

// Library selects topic replies. Each trigger of a topic bumps its counter
// and the counter picks the set, so phrasing rotates across repeated
// questions.
type Library struct {
	sets     map[string][][]string
	counters map[string]int
	rng      Rand
}

// NewLibrary returns a library over the built-in topic sets.
func NewLibrary(rng Rand) *Library {
	return &Library{
		sets:     defaultSets(),
		counters: make(map[string]int),
		rng:      rng,
	}
}

// has reports whether topic has any response sets.
func (l *Library) has(topic string) bool {
	return len(l.sets[topic]) > 0
}

// Select increments the topic counter and returns a random line from set
// counter mod len(sets). It returns "" for an unknown topic.
func (l *Library) Select(topic string) string {
	if !l.has(topic) {
		return ""
	}
	sets := l.sets[topic]

	l.counters[topic]++
	set := sets[l.counters[topic]%len(sets)]
	return set[l.rng.Intn(len(set))]
}

// count returns how many times topic has been selected.
func (l *Library) count(topic string) int {
	return l.counters[topic]
}

// setIndex returns the index of the set a given line belongs to, or -1.
func (l *Library) setIndex(topic, line string) int {
	for i, set := range l.sets[topic] {
		for _, s := range set {
			if s == line {
				return i
			}
		}
	}
	return -1
}

func defaultSets() map[string][][]string {
	return map[string][][]string{
		Password: {
			{
				"Make sure to use strong, unique passwords for each account.",
				"A good password should be at least 12 characters long and include numbers, symbols, and both uppercase and lowercase letters.",
				"Consider using a password manager to keep track of your passwords securely.",
				"Never share your passwords with anyone, even if they claim to be from tech support.",
			},
			{
				"Password security is crucial. Did you know a strong password can significantly reduce your risk of being hacked?",
				"A passphrase can be more secure than a password. Combine multiple words for better security.",
				"Two-factor authentication adds an extra layer of protection to your accounts.",
				"Avoid using personal information like birthdays or names in your passwords.",
			},
		},
		Phishing: {
			{
				"Be cautious of emails asking for personal information. Scammers often disguise themselves as trusted organizations.",
				"Phishing emails often create a sense of urgency. Always verify before clicking links or providing information.",
				"Check the sender's email address carefully. Phishing attempts often use addresses that look similar to legitimate ones.",
				"If an email seems suspicious, don't click any links. Instead, go directly to the company's website.",
			},
			{
				"Spear phishing targets specific individuals with tailored emails, so be extra cautious.",
				"Some phishing attempts come via text messages, known as smishing.",
				"Look for poor grammar and spelling, which are common in phishing emails.",
				"Hover over links to see the actual URL before clicking. Phishers often use fake links.",
			},
		},
		Privacy: {
			{
				"Review privacy settings on your social media accounts regularly to control what information is shared.",
				"Be careful about what personal information you share online. Once it's out there, it's hard to take back.",
				"Use privacy-focused browsers and search engines to minimize tracking of your online activities.",
				"Consider using a VPN to protect your online privacy, especially on public Wi-Fi networks.",
			},
		},
		SafeBrowsing: {
			{
				"Always look for the padlock icon and 'https://' in website URLs.",
				"Keep your browser updated and avoid downloading files from untrusted sources.",
				"Avoid entering personal information on untrusted or unknown websites.",
				"Use browser security features like pop-up blockers and safe browsing modes.",
			},
		},
		Cybersecurity: {
			{
				"Keep all software, including operating systems and apps, up to date with the latest security patches.",
				"Use antivirus software and keep it updated to protect against malware.",
				"Be cautious about sharing personal information on social media. It can be used by attackers.",
				"Regularly back up important data to an external drive or cloud service.",
			},
		},
	}
}
