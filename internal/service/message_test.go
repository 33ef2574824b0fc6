package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
	"github.com/alertlink/internal/seed"
	"github.com/alertlink/internal/service"
)

type messageFixture struct {
	msgSvc   *service.MessageService
	chatSvc  *service.ChatService
	msgRepo  *repository.MessageRepository
	chatRepo *repository.ChatRepository
	sched    *service.StatusScheduler
}

func newMessageFixture(t *testing.T, now time.Time, deliveredDelay, readDelay time.Duration) *messageFixture {
	t.Helper()
	fixtures := seed.Data(now)
	msgRepo := repository.NewMessageRepository(fixtures.Messages)
	chatRepo := repository.NewChatRepository(fixtures.Chats)
	userRepo := repository.NewUserRepository(fixtures.Users)
	sched := service.NewStatusScheduler(msgRepo, deliveredDelay, readDelay)
	t.Cleanup(sched.Stop)
	return &messageFixture{
		msgSvc:   service.NewMessageService(msgRepo, chatRepo, sched),
		chatSvc:  service.NewChatService(chatRepo, msgRepo, userRepo, sched),
		msgRepo:  msgRepo,
		chatRepo: chatRepo,
		sched:    sched,
	}
}

func lastStatus(t *testing.T, repo *repository.MessageRepository, chatID, messageID string) model.MessageStatus {
	t.Helper()
	msgs, err := repo.ListByChat(context.Background(), chatID, seed.CurrentUserID)
	require.NoError(t, err)
	for _, m := range msgs {
		if m.ID == messageID {
			return m.Status
		}
	}
	t.Fatalf("message %s not found in chat %s", messageID, chatID)
	return ""
}

func TestMessageSend(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	f := newMessageFixture(t, now, time.Hour, 2*time.Hour)
	sender := currentUser(t, now)

	t.Run("AppendsWithStatusSent", func(t *testing.T) {
		msg, err := f.msgSvc.Send(ctx, "chat1", sender, service.SendInput{
			Content: "Checking in.",
			Type:    model.MessageTypeText,
		})
		require.NoError(t, err)
		assert.Equal(t, model.MessageStatusSent, msg.Status)
		assert.True(t, msg.IsOwnMessage)
		assert.Equal(t, sender.ID, msg.SenderID)

		chat, err := f.chatRepo.GetByID(ctx, "chat1")
		require.NoError(t, err)
		assert.Equal(t, "Checking in.", chat.LastMessage.Content)
		assert.Equal(t, sender.Name, chat.LastMessage.SenderName)
	})

	t.Run("EmptyContentRejected", func(t *testing.T) {
		_, err := f.msgSvc.Send(ctx, "chat1", sender, service.SendInput{
			Content: "   ",
			Type:    model.MessageTypeText,
		})
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("UnknownTypeRejected", func(t *testing.T) {
		_, err := f.msgSvc.Send(ctx, "chat1", sender, service.SendInput{
			Content: "hi",
			Type:    model.MessageType("sticker"),
		})
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("UnknownChat", func(t *testing.T) {
		_, err := f.msgSvc.Send(ctx, "ghost", sender, service.SendInput{
			Content: "hi",
			Type:    model.MessageTypeText,
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("LocationFieldsRoundTrip", func(t *testing.T) {
		loc := &model.Location{Lat: 41.3275, Lng: 19.8187, Address: "Tirana"}
		msg, err := f.msgSvc.Send(ctx, "chat2", sender, service.SendInput{
			Content:  "My current location.",
			Type:     model.MessageTypeLocation,
			Location: loc,
		})
		require.NoError(t, err)

		msgs, err := f.msgSvc.List(ctx, "chat2", sender.ID)
		require.NoError(t, err)
		got := msgs[len(msgs)-1]
		assert.Equal(t, msg.ID, got.ID)
		require.NotNil(t, got.Location)
		assert.Equal(t, "Tirana", got.Location.Address)
	})
}

func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	sender := currentUser(t, now)

	t.Run("SentThenDeliveredThenRead", func(t *testing.T) {
		f := newMessageFixture(t, now, 20*time.Millisecond, 500*time.Millisecond)
		msg, err := f.msgSvc.Send(ctx, "chat1", sender, service.SendInput{
			Content: "status check",
			Type:    model.MessageTypeText,
		})
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			return lastStatus(t, f.msgRepo, "chat1", msg.ID) == model.MessageStatusDelivered
		}, time.Second, 5*time.Millisecond)

		require.Eventually(t, func() bool {
			return lastStatus(t, f.msgRepo, "chat1", msg.ID) == model.MessageStatusRead
		}, 2*time.Second, 5*time.Millisecond)

		require.Eventually(t, func() bool { return f.sched.Pending() == 0 },
			2*time.Second, 5*time.Millisecond)
	})

	t.Run("ChatDeleteCancelsPendingTimers", func(t *testing.T) {
		f := newMessageFixture(t, now, 20*time.Millisecond, 40*time.Millisecond)
		_, err := f.msgSvc.Send(ctx, "chat2", sender, service.SendInput{
			Content: "doomed",
			Type:    model.MessageTypeText,
		})
		require.NoError(t, err)
		require.Equal(t, 1, f.sched.Pending())

		require.NoError(t, f.chatSvc.Delete(ctx, "chat2"))
		assert.Equal(t, 0, f.sched.Pending())

		// Past both delays; nothing fires and nothing panics.
		time.Sleep(80 * time.Millisecond)
		msgs, err := f.msgRepo.ListByChat(ctx, "chat2", sender.ID)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("StopCancelsEverything", func(t *testing.T) {
		f := newMessageFixture(t, now, 20*time.Millisecond, 40*time.Millisecond)
		msg, err := f.msgSvc.Send(ctx, "chat1", sender, service.SendInput{
			Content: "frozen",
			Type:    model.MessageTypeText,
		})
		require.NoError(t, err)

		f.sched.Stop()
		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, model.MessageStatusSent, lastStatus(t, f.msgRepo, "chat1", msg.ID))
		assert.Equal(t, 0, f.sched.Pending())

		// A stopped scheduler refuses new work.
		f.sched.Schedule("chat1", msg.ID)
		assert.Equal(t, 0, f.sched.Pending())
	})
}
