package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
)

// MessageService appends messages to chat threads and queues the simulated
// delivery status transitions.
type MessageService struct {
	msgRepo  *repository.MessageRepository
	chatRepo *repository.ChatRepository
	sched    *StatusScheduler
}

func NewMessageService(msgRepo *repository.MessageRepository, chatRepo *repository.ChatRepository, sched *StatusScheduler) *MessageService {
	return &MessageService{msgRepo: msgRepo, chatRepo: chatRepo, sched: sched}
}

// SendInput is the composer payload.
type SendInput struct {
	Content  string
	Type     model.MessageType
	FileName string
	FileURL  string
	Location *model.Location
}

func validMessageType(t model.MessageType) bool {
	switch t {
	case model.MessageTypeText, model.MessageTypeVoice, model.MessageTypeFile,
		model.MessageTypeLocation, model.MessageTypeAlert:
		return true
	}
	return false
}

// Send appends a message with status sent, updates the chat-list preview and
// schedules the delivered/read transitions.
func (s *MessageService) Send(ctx context.Context, chatID string, sender *model.User, in SendInput) (*model.Message, error) {
	if !validMessageType(in.Type) {
		return nil, fmt.Errorf("%w: unknown message type %q", ErrValidation, in.Type)
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: message content is required", ErrValidation)
	}
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	msg := &model.Message{
		ID:              fmt.Sprintf("msg%d", now.UnixMilli()),
		ChatID:          chat.ID,
		SenderID:        sender.ID,
		SenderName:      sender.Name,
		SenderAvatarURL: sender.AvatarURL,
		Content:         in.Content,
		Timestamp:       now,
		Type:            in.Type,
		FileName:        in.FileName,
		FileURL:         in.FileURL,
		Location:        in.Location,
		Status:          model.MessageStatusSent,
	}
	if err := s.msgRepo.Append(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.chatRepo.SetLastMessage(ctx, chat.ID, &model.LastMessage{
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
		SenderName: msg.SenderName,
	}); err != nil {
		return nil, err
	}
	s.sched.Schedule(chat.ID, msg.ID)

	msg.IsOwnMessage = true
	return msg, nil
}

// List returns the thread in chronological order with IsOwnMessage derived
// for the viewer.
func (s *MessageService) List(ctx context.Context, chatID, viewerID string) ([]model.Message, error) {
	if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
		return nil, err
	}
	return s.msgRepo.ListByChat(ctx, chatID, viewerID)
}
