package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender values identify which side of the conversation produced a message.
const (
	SenderUser  = "user"
	SenderAgent = "agent"
)

// Message is one entry in the session transcript. Messages are immutable
// once created; the transcript only ever appends.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage builds a transcript entry for user input.
func NewUserMessage(content string) Message {
	return newMessage(content, SenderUser)
}

// NewAgentMessage builds a transcript entry for an agent reply.
func NewAgentMessage(content string) Message {
	return newMessage(content, SenderAgent)
}

func newMessage(content, sender string) Message {
	return Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
	}
}
