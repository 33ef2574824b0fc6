package repository

import (
	"context"
	"sync"
	"time"

	"github.com/alertlink/internal/logger"
	"github.com/alertlink/internal/model"
)

// ChatRepository is the in-memory conversation list. New chats go to the
// front; deletion is hard removal with no tombstone.
type ChatRepository struct {
	mu    sync.RWMutex
	chats []model.Chat
}

func NewChatRepository(seed []model.Chat) *ChatRepository {
	chats := make([]model.Chat, len(seed))
	copy(chats, seed)
	return &ChatRepository{chats: chats}
}

func (r *ChatRepository) List(ctx context.Context) ([]model.Chat, error) {
	defer logger.DeferLogDuration("chat.List", time.Now())()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Chat, len(r.chats))
	copy(out, r.chats)
	return out, nil
}

func (r *ChatRepository) GetByID(ctx context.Context, id string) (*model.Chat, error) {
	defer logger.DeferLogDuration("chat.GetByID", time.Now())()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.chats {
		if r.chats[i].ID == id {
			c := r.chats[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Prepend inserts a chat at the front of the list.
func (r *ChatRepository) Prepend(ctx context.Context, c *model.Chat) error {
	defer logger.DeferLogDuration("chat.Prepend", time.Now())()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chats = append([]model.Chat{*c}, r.chats...)
	return nil
}

func (r *ChatRepository) Delete(ctx context.Context, id string) error {
	defer logger.DeferLogDuration("chat.Delete", time.Now())()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.chats {
		if r.chats[i].ID == id {
			r.chats = append(r.chats[:i], r.chats[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// FindDirect returns the direct chat identified by the unordered participant
// pair {userID1, userID2}, or ErrNotFound.
func (r *ChatRepository) FindDirect(ctx context.Context, userID1, userID2 string) (*model.Chat, error) {
	defer logger.DeferLogDuration("chat.FindDirect", time.Now())()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.chats {
		if r.chats[i].IsDirectBetween(userID1, userID2) {
			c := r.chats[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// SetLastMessage updates the chat-list preview after a message is sent.
func (r *ChatRepository) SetLastMessage(ctx context.Context, chatID string, lm *model.LastMessage) error {
	defer logger.DeferLogDuration("chat.SetLastMessage", time.Now())()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.chats {
		if r.chats[i].ID == chatID {
			r.chats[i].LastMessage = lm
			return nil
		}
	}
	return ErrNotFound
}
