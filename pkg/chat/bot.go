// Package chat is the canned study assistant.
package chat

import "strings"

const (
	Greeting = "Hello! I'm your +2 Nepal study assistant. How can I help you today?"
	Fallback = "I'm your +2 Nepal study assistant. I can help with Physics, Chemistry, Biology, Mathematics, and other subjects. Could you clarify your question?"
)

type rule struct {
	keywords []string
	reply    string
}

// rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{
		keywords: []string{"physics", "newton"},
		reply:    "Newton's Laws of Motion are fundamental in Physics. First Law: Inertia, Second Law: F=ma, Third Law: Action-Reaction. Would you like more details on any specific law?",
	},
	{
		keywords: []string{"chemistry", "bond"},
		reply:    "Chemical bonding includes ionic (electron transfer), covalent (electron sharing), and metallic bonds. The VSEPR theory helps predict molecular shapes. Need examples?",
	},
	{
		keywords: []string{"biology", "cell"},
		reply:    "Cell division includes mitosis (growth/repair) and meiosis (gamete formation). Mitosis has 4 phases: prophase, metaphase, anaphase, telophase. Want me to explain any phase?",
	},
	{
		keywords: []string{"math", "trigonometry"},
		reply:    "Key trig identities: sin²θ + cos²θ = 1, 1 + tan²θ = sec²θ. The Law of Sines relates sides to angles: a/sinA = b/sinB = c/sinC. Need help with a specific problem?",
	},
	{
		keywords: []string{"hello", "hi"},
		reply:    "Hello! I'm here to help with your +2 Nepal studies. Ask me about Physics, Chemistry, Biology, Mathematics, or other subjects!",
	},
}

// Bot answers from a fixed keyword table.
type Bot struct{}

// Reply matches substrings, so "this" hits "hi".
func (Bot) Reply(text string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.reply
			}
		}
	}
	return Fallback
}
