package repository

import (
	"context"
	"sync"
	"time"

	"github.com/alertlink/internal/logger"
	"github.com/alertlink/internal/model"
)

// MessageRepository holds message threads keyed by chat id, each in
// chronological order.
type MessageRepository struct {
	mu      sync.RWMutex
	threads map[string][]model.Message
}

func NewMessageRepository(seed map[string][]model.Message) *MessageRepository {
	threads := make(map[string][]model.Message, len(seed))
	for chatID, msgs := range seed {
		thread := make([]model.Message, len(msgs))
		copy(thread, msgs)
		threads[chatID] = thread
	}
	return &MessageRepository{threads: threads}
}

// ListByChat returns the chat's thread in chronological order. The viewer id
// is used to derive IsOwnMessage; it is not stored.
func (r *MessageRepository) ListByChat(ctx context.Context, chatID, viewerID string) ([]model.Message, error) {
	defer logger.DeferLogDuration("message.ListByChat", time.Now())()
	r.mu.RLock()
	defer r.mu.RUnlock()
	thread := r.threads[chatID]
	out := make([]model.Message, len(thread))
	for i, m := range thread {
		m.IsOwnMessage = m.SenderID == viewerID
		out[i] = m
	}
	return out, nil
}

func (r *MessageRepository) Append(ctx context.Context, m *model.Message) error {
	defer logger.DeferLogDuration("message.Append", time.Now())()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads[m.ChatID] = append(r.threads[m.ChatID], *m)
	return nil
}

// UpdateStatus sets the status of one message. A message that has been
// removed (its chat deleted) yields ErrNotFound, which status-transition
// timers treat as a clean no-op.
func (r *MessageRepository) UpdateStatus(ctx context.Context, chatID, messageID string, status model.MessageStatus) error {
	defer logger.DeferLogDuration("message.UpdateStatus", time.Now())()
	r.mu.Lock()
	defer r.mu.Unlock()
	thread := r.threads[chatID]
	for i := range thread {
		if thread[i].ID == messageID {
			thread[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// DeleteByChat drops the whole thread for a deleted chat.
func (r *MessageRepository) DeleteByChat(ctx context.Context, chatID string) error {
	defer logger.DeferLogDuration("message.DeleteByChat", time.Now())()
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.threads, chatID)
	return nil
}
