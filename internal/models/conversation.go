package models

import (
	"strings"
	"time"
)

// Message roles in an assistant transcript
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Cosmetic phone-assistant states. They only drive UI copy; there is no real
// speech recognition or telephony behind them.
const (
	PhoneIdle      = "idle"
	PhoneListening = "listening"
	PhoneThinking  = "thinking"
	PhoneSpeaking  = "speaking"
)

// Message is a single transcript entry
type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is an ordered assistant transcript, kept per session. It
// travels through the session as a JSON string.
type Conversation struct {
	ID         string    `json:"id"`
	Messages   []Message `json:"messages"`
	PhoneState string    `json:"phone_state,omitempty"`
}

// Append adds a transcript entry and returns it
func (c *Conversation) Append(role, text string) Message {
	msg := Message{Role: role, Text: text, CreatedAt: time.Now()}
	c.Messages = append(c.Messages, msg)
	return msg
}

// Prompt concatenates the accumulated history into the single prompt string
// handed to the LLM integration.
func (c *Conversation) Prompt() string {
	var b strings.Builder
	for _, msg := range c.Messages {
		switch msg.Role {
		case RoleUser:
			b.WriteString("Besucher: ")
		case RoleAssistant:
			b.WriteString("Assistent: ")
		}
		b.WriteString(msg.Text)
		b.WriteString("\n")
	}
	return b.String()
}
