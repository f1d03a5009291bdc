package services

import (
	"context"
	"time"

	"crossfit-gym-platform/internal/models"

	"github.com/google/uuid"
)

// LLMInvoker is the opaque external LLM call
type LLMInvoker interface {
	InvokeLLM(ctx context.Context, prompt, systemContext string) (string, error)
}

// Static apology appended when the LLM call fails; no retry is attempted.
const assistantApology = "Entschuldigung, ich habe gerade technische Schwierigkeiten. " +
	"Bitte versuche es später noch einmal oder ruf uns direkt an."

const assistantContext = "Du bist der freundliche Assistent einer CrossFit-Box. " +
	"Beantworte Fragen zu Training, Mitgliedschaften, Probetraining und Kurszeiten kurz und auf Deutsch. " +
	"Bei Fragen, die du nicht beantworten kannst, verweise auf das Team vor Ort."

// AssistantService drives the chat and phone assistant shells. It keeps no
// state itself; transcripts live in the caller's session.
type AssistantService struct {
	llm           LLMInvoker
	thinkingDelay time.Duration
}

// NewAssistantService creates a new assistant service. The delay simulates
// the "thinking" pause before a reply appears.
func NewAssistantService(llm LLMInvoker, thinkingDelay time.Duration) *AssistantService {
	return &AssistantService{
		llm:           llm,
		thinkingDelay: thinkingDelay,
	}
}

// NewConversation starts an empty transcript
func (s *AssistantService) NewConversation() *models.Conversation {
	return &models.Conversation{
		ID:         uuid.NewString(),
		PhoneState: models.PhoneIdle,
	}
}

// Chat appends the user's message, invokes the LLM with the accumulated
// history as a single prompt, and appends the reply. On failure a static
// apology is appended instead. The thinking delay is a cancellable timer: an
// aborted request does not leave a reply behind.
func (s *AssistantService) Chat(ctx context.Context, conv *models.Conversation, text string) (models.Message, error) {
	conv.Append(models.RoleUser, text)

	if err := s.think(ctx); err != nil {
		return models.Message{}, err
	}

	reply, err := s.llm.InvokeLLM(ctx, conv.Prompt(), assistantContext)
	if err != nil {
		return conv.Append(models.RoleAssistant, assistantApology), nil
	}

	return conv.Append(models.RoleAssistant, reply), nil
}

// PhoneTurn handles one turn of the phone assistant. The listening/speaking
// labels are cosmetic; behind them it is the same chat call.
func (s *AssistantService) PhoneTurn(ctx context.Context, conv *models.Conversation, text string) (models.Message, error) {
	conv.PhoneState = models.PhoneThinking

	msg, err := s.Chat(ctx, conv, text)
	if err != nil {
		conv.PhoneState = models.PhoneIdle
		return models.Message{}, err
	}

	conv.PhoneState = models.PhoneSpeaking
	return msg, nil
}

// FinishSpeaking resets the cosmetic phone state back to listening
func (s *AssistantService) FinishSpeaking(conv *models.Conversation) {
	conv.PhoneState = models.PhoneListening
}

func (s *AssistantService) think(ctx context.Context) error {
	if s.thinkingDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.thinkingDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
