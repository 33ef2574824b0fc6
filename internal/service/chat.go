package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
)

// ChatService manages the conversation list: search, direct-chat creation
// with duplicate prevention, and hard deletion.
type ChatService struct {
	chatRepo *repository.ChatRepository
	msgRepo  *repository.MessageRepository
	userRepo *repository.UserRepository
	sched    *StatusScheduler
}

func NewChatService(chatRepo *repository.ChatRepository, msgRepo *repository.MessageRepository, userRepo *repository.UserRepository, sched *StatusScheduler) *ChatService {
	return &ChatService{chatRepo: chatRepo, msgRepo: msgRepo, userRepo: userRepo, sched: sched}
}

// Search returns chats whose localized display name or last-message content
// contains term (case-insensitive), ordered by last-message recency. Chats
// without a last message sort after all chats that have one; their relative
// order is unspecified. An empty term matches everything.
func (s *ChatService) Search(ctx context.Context, term string, locale model.Locale) ([]model.Chat, error) {
	chats, err := s.chatRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	filtered := chats[:0]
	for _, c := range chats {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Name.Resolve(locale)), needle) ||
			(c.LastMessage != nil && strings.Contains(strings.ToLower(c.LastMessage.Content), needle)) {
			filtered = append(filtered, c)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i].LastMessage, filtered[j].LastMessage
		switch {
		case a != nil && b != nil:
			return a.Timestamp.After(b.Timestamp)
		case a != nil:
			return true
		default:
			return false
		}
	})
	return filtered, nil
}

func (s *ChatService) Get(ctx context.Context, id string) (*model.Chat, error) {
	return s.chatRepo.GetByID(ctx, id)
}

// SelectUser opens a direct conversation with the target user. If a direct
// chat between the pair already exists it is returned unchanged; otherwise a
// new chat is created and prepended to the list. The created flag tells the
// caller whether navigation lands on a new chat.
func (s *ChatService) SelectUser(ctx context.Context, currentUser *model.User, targetID string) (*model.Chat, bool, error) {
	if targetID == currentUser.ID {
		return nil, false, fmt.Errorf("%w: cannot start a chat with yourself", ErrValidation)
	}
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.chatRepo.FindDirect(ctx, currentUser.ID, targetID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	chat := &model.Chat{
		ID:           fmt.Sprintf("chat%d", time.Now().UnixMilli()),
		Name:         target.Name,
		Type:         model.ChatTypeDirect,
		Participants: []model.User{*currentUser, *target},
		AvatarURL:    target.AvatarURL,
		IsEncrypted:  true,
	}
	if err := s.chatRepo.Prepend(ctx, chat); err != nil {
		return nil, false, err
	}
	return chat, true, nil
}

// Delete removes a chat, its message thread and any pending status timers.
// Hard removal, no tombstone, no undo.
func (s *ChatService) Delete(ctx context.Context, chatID string) error {
	if err := s.chatRepo.Delete(ctx, chatID); err != nil {
		return err
	}
	s.sched.CancelChat(chatID)
	return s.msgRepo.DeleteByChat(ctx, chatID)
}
