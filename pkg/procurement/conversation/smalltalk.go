package conversation

import (
	"regexp"
)

// Small-talk patterns are matched before entity extraction so a greeting
// never gets parsed as a product request.
var smallTalkReplies = []struct {
	pattern *regexp.Regexp
	reply   string
}{
	{
		regexp.MustCompile(`(?i)^\s*(hi|hello|hey|good\s+(morning|afternoon|evening))\b`),
		"Hello! I'm your procurement assistant. Tell me what you need to procure, for example: \"I need 50 office chairs for Mumbai\".",
	},
	{
		regexp.MustCompile(`(?i)\b(who\s+are\s+you|what\s+are\s+you|your\s+name)\b`),
		"I'm a procurement assistant. I help you specify requirements, estimate procurement value, pick a procurement method and find matching suppliers.",
	},
	{
		regexp.MustCompile(`(?i)\b(help|how\s+do(es)?\s+(this|you)\s+work|what\s+can\s+you\s+do)\b`),
		"Just describe what you need to buy, including quantity and location if you know them. I'll ask a few clarifying questions, estimate the procurement value, recommend a method and suggest suppliers.",
	},
	{
		regexp.MustCompile(`(?i)\b(thank\s*you|thanks|thx)\b`),
		"You're welcome! Let me know if you need to procure anything else.",
	},
	{
		regexp.MustCompile(`(?i)\b(bye|goodbye|see\s+you)\b`),
		"Goodbye! Come back anytime you have a procurement need.",
	},
}

// smallTalk returns a canned reply when the input is conversational rather
// than a procurement request, or "" when the machine should proceed.
func smallTalk(input string) string {
	for _, st := range smallTalkReplies {
		if st.pattern.MatchString(input) {
			return st.reply
		}
	}
	return ""
}
