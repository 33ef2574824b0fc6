package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alertlink/internal/logger"
	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
)

// StatusScheduler drives the simulated delivery acknowledgements: a sent
// message becomes delivered after deliveredDelay and read after readDelay.
// Timers are cancellable per message and per chat, so deleting a chat or
// stopping the service never mutates state after logical disposal.
type StatusScheduler struct {
	msgRepo        *repository.MessageRepository
	deliveredDelay time.Duration
	readDelay      time.Duration

	mu      sync.Mutex
	timers  map[string][]*time.Timer
	byChat  map[string]map[string]struct{}
	stopped bool
}

func NewStatusScheduler(msgRepo *repository.MessageRepository, deliveredDelay, readDelay time.Duration) *StatusScheduler {
	return &StatusScheduler{
		msgRepo:        msgRepo,
		deliveredDelay: deliveredDelay,
		readDelay:      readDelay,
		timers:         make(map[string][]*time.Timer),
		byChat:         make(map[string]map[string]struct{}),
	}
}

// Schedule queues the sent→delivered→read transitions for one message.
func (s *StatusScheduler) Schedule(chatID, messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	delivered := time.AfterFunc(s.deliveredDelay, func() {
		s.transition(chatID, messageID, model.MessageStatusDelivered, false)
	})
	read := time.AfterFunc(s.readDelay, func() {
		s.transition(chatID, messageID, model.MessageStatusRead, true)
	})
	s.timers[messageID] = []*time.Timer{delivered, read}
	if s.byChat[chatID] == nil {
		s.byChat[chatID] = make(map[string]struct{})
	}
	s.byChat[chatID][messageID] = struct{}{}
}

func (s *StatusScheduler) transition(chatID, messageID string, status model.MessageStatus, final bool) {
	err := s.msgRepo.UpdateStatus(context.Background(), chatID, messageID, status)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Errorf("scheduler: update status message=%s: %v", messageID, err)
	}
	if final {
		s.mu.Lock()
		s.forget(chatID, messageID)
		s.mu.Unlock()
	}
}

// forget drops bookkeeping for a message. Caller holds the lock.
func (s *StatusScheduler) forget(chatID, messageID string) {
	delete(s.timers, messageID)
	if set := s.byChat[chatID]; set != nil {
		delete(set, messageID)
		if len(set) == 0 {
			delete(s.byChat, chatID)
		}
	}
}

// CancelChat stops all pending transitions for one chat (chat deletion).
func (s *StatusScheduler) CancelChat(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for messageID := range s.byChat[chatID] {
		for _, t := range s.timers[messageID] {
			t.Stop()
		}
		delete(s.timers, messageID)
	}
	delete(s.byChat, chatID)
}

// Stop cancels every pending transition. Called on shutdown.
func (s *StatusScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for messageID, timers := range s.timers {
		for _, t := range timers {
			t.Stop()
		}
		delete(s.timers, messageID)
	}
	s.byChat = make(map[string]map[string]struct{})
}

// Pending returns the number of messages with outstanding transitions.
func (s *StatusScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
