package chatbot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/responses"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/sentiment"
)

const (
	askCompleteNumber = "Please specify which task to complete (e.g., 'complete task 1')."
	askDeleteNumber   = "Please specify which task to delete (e.g., 'delete task 1')."
	identityReply     = "I'm your Cybersecurity Awareness Chatbot, here to help you stay safe online!"
	historyReply      = "You can view our conversation history from the menu or with the /history command."
	noInterestsReply  = "You haven't mentioned any specific interests yet..."
)

var (
	addTaskRe      = regexp.MustCompile(`(?i)(add|create|set).*task`)
	listTasksRe    = regexp.MustCompile(`(?i)(list|show).*tasks?`)
	completeTaskRe = regexp.MustCompile(`(?i)(complete|finish|done).*task`)
	deleteTaskRe   = regexp.MustCompile(`(?i)(delete|remove).*task`)
	startQuizRe    = regexp.MustCompile(`(?i)(start|begin|take).*(quiz|test)`)
	digitsRe       = regexp.MustCompile(`^\d+$`)
	activityRe     = regexp.MustCompile(`(?i)(activity|history|log|what have you done)`)
	numberRe       = regexp.MustCompile(`\d+`)
)

// turn is one utterance as seen by the rules.
type turn struct {
	text  string // trimmed, as typed
	lower string
	mood  sentiment.Sentiment
}

// rule pairs a matcher with its handler. Rules are tried in slice order and
// the first match answers the turn.
type rule struct {
	name   string
	match  func(e *Engine, t turn) bool
	handle func(e *Engine, t turn) string
}

var rules = []rule{
	{"add task", matchRe(addTaskRe), func(e *Engine, t turn) string {
		return e.check(e.tasks.AddFromText(t.text))
	}},
	{"list tasks", matchRe(listTasksRe), func(e *Engine, _ turn) string {
		return e.tasks.List()
	}},
	{"complete task", matchRe(completeTaskRe), func(e *Engine, t turn) string {
		n, ok := firstNumber(t.lower)
		if !ok {
			return askCompleteNumber
		}
		return e.check(e.tasks.Complete(n))
	}},
	{"delete task", matchRe(deleteTaskRe), func(e *Engine, t turn) string {
		n, ok := firstNumber(t.lower)
		if !ok {
			return askDeleteNumber
		}
		return e.check(e.tasks.Delete(n))
	}},
	{"start quiz", matchRe(startQuizRe), func(e *Engine, _ turn) string {
		return e.quiz.Start()
	}},
	{"quiz answer", func(e *Engine, t turn) bool {
		return e.quiz.Active() && digitsRe.MatchString(t.lower)
	}, func(e *Engine, t turn) string {
		return e.quiz.SubmitAnswer(parseAnswer(t.lower))
	}},
	{"activity log", matchRe(activityRe), func(e *Engine, _ turn) string {
		return "Recent activity log:\n" + strings.Join(e.recentActivity(), "\n")
	}},
	topic(responses.Password, "password"),
	topic(responses.Phishing, "phishing", "scam"),
	topic(responses.Privacy, "privacy", "data protection"),
	topic(responses.SafeBrowsing, "safe browsing", "browsing"),
	topic(responses.Cybersecurity, "cybersecurity", "security tips"),
	{"identity", contains("your name", "who are you"), func(*Engine, turn) string {
		return identityReply
	}},
	{"memory", contains("remember", "what do you know"), func(e *Engine, _ turn) string {
		return e.recall()
	}},
	{"interests", contains("interest", "like", "prefer"), func(e *Engine, _ turn) string {
		interests := e.profile.Interests()
		if len(interests) == 0 {
			return noInterestsReply
		}
		return fmt.Sprintf("Based on our conversation, you seem interested in: %s...", strings.Join(interests, ", "))
	}},
	{"history", contains("history"), func(*Engine, turn) string {
		return historyReply
	}},
}

// topic builds the rule for a security topic: the topic becomes an interest,
// its counter picks the response set, and the reply is mood-adjusted.
func topic(name string, keywords ...string) rule {
	return rule{
		name:  name,
		match: contains(keywords...),
		handle: func(e *Engine, t turn) string {
			e.noteInterest(name)
			return sentiment.Adjust(e.library.Select(name), t.mood)
		},
	}
}

func matchRe(re *regexp.Regexp) func(*Engine, turn) bool {
	return func(_ *Engine, t turn) bool {
		return re.MatchString(t.lower)
	}
}

func contains(keywords ...string) func(*Engine, turn) bool {
	return func(_ *Engine, t turn) bool {
		for _, kw := range keywords {
			if strings.Contains(t.lower, kw) {
				return true
			}
		}
		return false
	}
}

func firstNumber(s string) (int, bool) {
	m := numberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// Too large for an int: out of range for any task list.
		return -1, true
	}
	return n, true
}

// parseAnswer turns a digit string into an answer. Values too large for an
// int become 0, which no option matches.
func parseAnswer(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
