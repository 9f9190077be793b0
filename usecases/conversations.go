package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pathfinder-server/entities"
	"pathfinder-server/repositories"
)

// Reply the mentor gives when the AI backend is not configured.
const mentorOfflineReply = "Your mentor is offline right now. Please try again later."

type ConversationUseCase struct {
	ConvRepo repositories.ConversationRepository
	Mentor   MentorService
}

func NewConversationUseCase(convRepo repositories.ConversationRepository, mentor MentorService) *ConversationUseCase {
	return &ConversationUseCase{ConvRepo: convRepo, Mentor: mentor}
}

// CreateConversationInput carries the conversation creation payload.
type CreateConversationInput struct {
	Title   string `json:"title"`
	Context string `json:"context"`
}

func (uc *ConversationUseCase) Create(userID string, input CreateConversationInput) (*entities.Conversation, error) {
	conv := &entities.Conversation{
		UserID:   userID,
		Title:    input.Title,
		Context:  input.Context,
		Messages: "[]",
	}
	if conv.Title == "" {
		conv.Title = "New conversation"
	}
	if err := uc.ConvRepo.Create(conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (uc *ConversationUseCase) List(userID string) ([]entities.Conversation, error) {
	return uc.ConvRepo.GetByUserID(userID)
}

func (uc *ConversationUseCase) Get(userID, convID string) (*entities.Conversation, error) {
	conv, err := uc.ConvRepo.GetByID(convID)
	if err != nil || conv.UserID != userID {
		return nil, ErrNotFound
	}
	return conv, nil
}

// SendMessage appends the user message, asks the mentor AI for a reply and
// appends that too. Returns the mentor reply and the updated conversation.
func (uc *ConversationUseCase) SendMessage(ctx context.Context, userID, convID, content string) (*entities.ChatMessage, *entities.Conversation, error) {
	if content == "" {
		return nil, nil, fmt.Errorf("%w: message content is required", ErrValidation)
	}

	conv, err := uc.Get(userID, convID)
	if err != nil {
		return nil, nil, err
	}

	var history []entities.ChatMessage
	if conv.Messages != "" {
		if err := json.Unmarshal([]byte(conv.Messages), &history); err != nil {
			return nil, nil, fmt.Errorf("corrupt message history for conversation %s: %w", convID, err)
		}
	}

	history = append(history, entities.ChatMessage{
		Role:      "user",
		Content:   content,
		Timestamp: time.Now().Format(time.RFC3339),
	})

	replyText := mentorOfflineReply
	if uc.Mentor != nil {
		replyText, err = uc.Mentor.ChatReply(ctx, history, conv.Context)
		if err != nil {
			return nil, nil, fmt.Errorf("mentor reply failed: %w", err)
		}
	}

	reply := entities.ChatMessage{
		Role:      "mentor",
		Content:   replyText,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	history = append(history, reply)

	raw, err := json.Marshal(history)
	if err != nil {
		return nil, nil, err
	}
	conv.Messages = string(raw)

	if err := uc.ConvRepo.Update(conv); err != nil {
		return nil, nil, err
	}
	return &reply, conv, nil
}
