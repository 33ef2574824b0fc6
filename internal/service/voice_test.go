package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
	"github.com/alertlink/internal/seed"
	"github.com/alertlink/internal/service"
)

type voiceFixture struct {
	voiceSvc *service.VoiceService
	msgRepo  *repository.MessageRepository
	sender   *model.User
}

func newVoiceFixture(t *testing.T, maxBytes int64) *voiceFixture {
	t.Helper()
	now := time.Now().UTC()
	fixtures := seed.Data(now)
	msgRepo := repository.NewMessageRepository(fixtures.Messages)
	chatRepo := repository.NewChatRepository(fixtures.Chats)
	sched := service.NewStatusScheduler(msgRepo, time.Hour, 2*time.Hour)
	t.Cleanup(sched.Stop)
	msgSvc := service.NewMessageService(msgRepo, chatRepo, sched)
	return &voiceFixture{
		voiceSvc: service.NewVoiceService(chatRepo, msgSvc, maxBytes, time.Minute),
		msgRepo:  msgRepo,
		sender:   currentUser(t, now),
	}
}

func TestVoiceRecording(t *testing.T) {
	ctx := context.Background()

	t.Run("StopProducesDataURIVoiceMessage", func(t *testing.T) {
		f := newVoiceFixture(t, 1<<20)
		id, err := f.voiceSvc.Start(ctx, "chat1", f.sender)
		require.NoError(t, err)

		require.NoError(t, f.voiceSvc.AppendChunk(ctx, id, []byte("abc"), "audio/webm"))
		require.NoError(t, f.voiceSvc.AppendChunk(ctx, id, []byte("def"), "audio/webm"))

		msg, err := f.voiceSvc.Stop(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.MessageTypeVoice, msg.Type)
		assert.True(t, strings.HasPrefix(msg.Content, "data:audio/webm;base64,"))
		assert.Equal(t, 0, f.voiceSvc.Active(), "buffer released")

		msgs, err := f.msgRepo.ListByChat(ctx, "chat1", f.sender.ID)
		require.NoError(t, err)
		assert.Equal(t, msg.ID, msgs[len(msgs)-1].ID)
	})

	t.Run("AbortReleasesBuffer", func(t *testing.T) {
		f := newVoiceFixture(t, 1<<20)
		id, err := f.voiceSvc.Start(ctx, "chat1", f.sender)
		require.NoError(t, err)
		require.NoError(t, f.voiceSvc.AppendChunk(ctx, id, []byte("abc"), "audio/webm"))

		require.NoError(t, f.voiceSvc.Abort(ctx, id))
		assert.Equal(t, 0, f.voiceSvc.Active())

		_, err = f.voiceSvc.Stop(ctx, id)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("DisallowedMime", func(t *testing.T) {
		f := newVoiceFixture(t, 1<<20)
		id, err := f.voiceSvc.Start(ctx, "chat1", f.sender)
		require.NoError(t, err)

		err = f.voiceSvc.AppendChunk(ctx, id, []byte("abc"), "text/plain")
		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Equal(t, 0, f.voiceSvc.Active(), "buffer cleaned up")
	})

	t.Run("EmptyRecording", func(t *testing.T) {
		f := newVoiceFixture(t, 1<<20)
		id, err := f.voiceSvc.Start(ctx, "chat1", f.sender)
		require.NoError(t, err)

		_, err = f.voiceSvc.Stop(ctx, id)
		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Equal(t, 0, f.voiceSvc.Active())
	})

	t.Run("SizeCap", func(t *testing.T) {
		f := newVoiceFixture(t, 4)
		id, err := f.voiceSvc.Start(ctx, "chat1", f.sender)
		require.NoError(t, err)

		require.NoError(t, f.voiceSvc.AppendChunk(ctx, id, []byte("abcd"), "audio/ogg"))
		err = f.voiceSvc.AppendChunk(ctx, id, []byte("e"), "audio/ogg")
		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Equal(t, 0, f.voiceSvc.Active())
	})

	t.Run("UnknownRecording", func(t *testing.T) {
		f := newVoiceFixture(t, 1<<20)
		assert.ErrorIs(t, f.voiceSvc.AppendChunk(ctx, "ghost", []byte("x"), "audio/ogg"), repository.ErrNotFound)
		_, err := f.voiceSvc.Stop(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, f.voiceSvc.Abort(ctx, "ghost"), repository.ErrNotFound)
	})

	t.Run("UnknownChat", func(t *testing.T) {
		f := newVoiceFixture(t, 1<<20)
		_, err := f.voiceSvc.Start(ctx, "ghost", f.sender)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
