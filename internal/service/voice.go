package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alertlink/internal/logger"
	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
)

var allowedMime = map[string]bool{
	"audio/ogg": true, "audio/webm": true, "audio/mp4": true, "audio/mpeg": true,
	"audio/x-m4a": true, "video/webm": true, "audio/opus": true,
	"audio/aac": true, "audio/x-aac": true,
}

// recording is one in-progress voice recording buffer.
type recording struct {
	id        string
	chatID    string
	sender    model.User
	mime      string
	buf       bytes.Buffer
	updatedAt time.Time
}

// VoiceService buffers voice recording chunks per recording session and turns
// a finished recording into a voice message with a data URI payload. Buffers
// are released on stop and abort; a janitor expires abandoned recordings.
type VoiceService struct {
	chatRepo *repository.ChatRepository
	msgSvc   *MessageService
	maxBytes int64
	ttl      time.Duration

	mu         sync.Mutex
	recordings map[string]*recording
}

func NewVoiceService(chatRepo *repository.ChatRepository, msgSvc *MessageService, maxBytes int64, ttl time.Duration) *VoiceService {
	return &VoiceService{
		chatRepo:   chatRepo,
		msgSvc:     msgSvc,
		maxBytes:   maxBytes,
		ttl:        ttl,
		recordings: make(map[string]*recording),
	}
}

// Start opens a recording session for a chat and returns its id.
func (s *VoiceService) Start(ctx context.Context, chatID string, sender *model.User) (string, error) {
	if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
		return "", err
	}
	rec := &recording{
		id:        uuid.NewString(),
		chatID:    chatID,
		sender:    *sender,
		updatedAt: time.Now(),
	}
	s.mu.Lock()
	s.recordings[rec.id] = rec
	s.mu.Unlock()
	return rec.id, nil
}

// AppendChunk adds binary audio data to a recording. The first chunk fixes
// the mime type; later chunks must match it.
func (s *VoiceService) AppendChunk(ctx context.Context, recordingID string, data []byte, mime string) error {
	if mime != "" && !allowedMime[mime] {
		s.discard(recordingID)
		return fmt.Errorf("%w: unsupported audio type %q", ErrValidation, mime)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recordings[recordingID]
	if !ok {
		return repository.ErrNotFound
	}
	if rec.mime == "" {
		rec.mime = mime
	} else if mime != "" && mime != rec.mime {
		delete(s.recordings, recordingID)
		return fmt.Errorf("%w: audio type changed mid-recording", ErrValidation)
	}
	if int64(rec.buf.Len()+len(data)) > s.maxBytes {
		delete(s.recordings, recordingID)
		return fmt.Errorf("%w: recording exceeds %d bytes", ErrValidation, s.maxBytes)
	}
	rec.buf.Write(data)
	rec.updatedAt = time.Now()
	return nil
}

// Stop finishes a recording and sends it to the chat as a voice message whose
// content is a base64 data URI. The buffer is released either way.
func (s *VoiceService) Stop(ctx context.Context, recordingID string) (*model.Message, error) {
	s.mu.Lock()
	rec, ok := s.recordings[recordingID]
	delete(s.recordings, recordingID)
	s.mu.Unlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	if rec.buf.Len() == 0 {
		return nil, fmt.Errorf("%w: empty recording", ErrValidation)
	}
	mime := rec.mime
	if mime == "" {
		mime = "audio/webm"
	}
	content := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(rec.buf.Bytes())
	return s.msgSvc.Send(ctx, rec.chatID, &rec.sender, SendInput{
		Content: content,
		Type:    model.MessageTypeVoice,
	})
}

// Abort discards a recording without sending anything.
func (s *VoiceService) Abort(ctx context.Context, recordingID string) error {
	s.mu.Lock()
	_, ok := s.recordings[recordingID]
	delete(s.recordings, recordingID)
	s.mu.Unlock()
	if !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (s *VoiceService) discard(recordingID string) {
	s.mu.Lock()
	delete(s.recordings, recordingID)
	s.mu.Unlock()
}

// Active returns the number of open recording sessions.
func (s *VoiceService) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recordings)
}

// RunJanitor expires recordings idle for longer than the TTL. It blocks until
// ctx is cancelled.
func (s *VoiceService) RunJanitor(ctx context.Context) {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.expire(now)
		}
	}
}

func (s *VoiceService) expire(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rec := range s.recordings {
		if now.Sub(rec.updatedAt) > s.ttl {
			logger.Infof("voice: expiring idle recording %s (chat=%s)", id, rec.chatID)
			delete(s.recordings, id)
		}
	}
}
