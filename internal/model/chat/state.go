package chat

// DialogueState is the server-owned conversation memory. The agent returns
// a fresh state with every reply and expects the previous one back verbatim
// on the next turn. The client stores and forwards it without inspecting or
// editing any field; the session controller replaces it wholesale, never
// partially.
type DialogueState struct {
	History           [][]string     `json:"history"`
	Entities          map[string]any `json:"entities"`
	Intent            *string        `json:"intent"`
	ActiveAgent       *string        `json:"active_agent"`
	FollowupQuestions []string       `json:"followup_questions"`
}
