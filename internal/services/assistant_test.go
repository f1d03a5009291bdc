package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"crossfit-gym-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM returns a canned reply or error and records the last prompt
type fakeLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeLLM) InvokeLLM(ctx context.Context, prompt, systemContext string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestAssistantService_Chat(t *testing.T) {
	llm := &fakeLLM{reply: "Ein Probetraining ist kostenlos."}
	svc := NewAssistantService(llm, 0)

	conv := svc.NewConversation()
	msg, err := svc.Chat(context.Background(), conv, "Was kostet ein Probetraining?")
	require.NoError(t, err)

	assert.Equal(t, models.RoleAssistant, msg.Role)
	assert.Equal(t, llm.reply, msg.Text)
	assert.Len(t, conv.Messages, 2, "expected user + assistant entries")
	assert.Contains(t, llm.lastPrompt, "Probetraining")
}

func TestAssistantService_ChatAccumulatesHistory(t *testing.T) {
	llm := &fakeLLM{reply: "Gerne!"}
	svc := NewAssistantService(llm, 0)

	conv := svc.NewConversation()
	svc.Chat(context.Background(), conv, "Erste Frage")
	svc.Chat(context.Background(), conv, "Zweite Frage")

	// The second call must carry the full transcript as one prompt string.
	assert.Contains(t, llm.lastPrompt, "Erste Frage")
	assert.Contains(t, llm.lastPrompt, "Zweite Frage")
	assert.Len(t, conv.Messages, 4)
}

func TestAssistantService_ChatApologizesOnFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("rate limited")}
	svc := NewAssistantService(llm, 0)

	conv := svc.NewConversation()
	msg, err := svc.Chat(context.Background(), conv, "Hallo?")
	require.NoError(t, err, "Chat must not fail on LLM errors")

	assert.Equal(t, assistantApology, msg.Text)
}

func TestAssistantService_ThinkingDelayIsCancellable(t *testing.T) {
	llm := &fakeLLM{reply: "sollte nie ankommen"}
	svc := NewAssistantService(llm, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := svc.NewConversation()
	start := time.Now()
	_, err := svc.Chat(ctx, conv, "Hallo")
	require.Error(t, err, "cancelled context must abort the thinking delay")
	assert.Less(t, time.Since(start), time.Second, "cancellation must not wait out the delay")

	// The aborted turn must not leave a stale assistant reply behind.
	for _, m := range conv.Messages {
		assert.NotEqual(t, models.RoleAssistant, m.Role, "aborted turn left an assistant message")
	}
}

func TestAssistantService_PhoneTurnStates(t *testing.T) {
	llm := &fakeLLM{reply: "Wir haben täglich Kurse ab 6:30 Uhr."}
	svc := NewAssistantService(llm, 0)

	conv := svc.NewConversation()
	assert.Equal(t, models.PhoneIdle, conv.PhoneState, "new conversation must start idle")

	_, err := svc.PhoneTurn(context.Background(), conv, "Wann sind Kurse?")
	require.NoError(t, err)
	assert.Equal(t, models.PhoneSpeaking, conv.PhoneState)

	svc.FinishSpeaking(conv)
	assert.Equal(t, models.PhoneListening, conv.PhoneState)
}
