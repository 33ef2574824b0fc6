package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
	"github.com/alertlink/internal/seed"
)

func TestChatRepository(t *testing.T) {
	ctx := context.Background()
	fixtures := seed.Data(time.Now().UTC())

	t.Run("PrependPutsNewChatFirst", func(t *testing.T) {
		repo := repository.NewChatRepository(fixtures.Chats)
		require.NoError(t, repo.Prepend(ctx, &model.Chat{ID: "chatNew", Type: model.ChatTypeDirect}))

		chats, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "chatNew", chats[0].ID)
		assert.Len(t, chats, len(fixtures.Chats)+1)
	})

	t.Run("DeleteRemovesExactlyOne", func(t *testing.T) {
		repo := repository.NewChatRepository(fixtures.Chats)
		require.NoError(t, repo.Delete(ctx, "chat2"))

		_, err := repo.GetByID(ctx, "chat2")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		chats, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, chats, len(fixtures.Chats)-1)
	})

	t.Run("DeleteUnknownChat", func(t *testing.T) {
		repo := repository.NewChatRepository(fixtures.Chats)
		assert.ErrorIs(t, repo.Delete(ctx, "nope"), repository.ErrNotFound)
	})

	t.Run("FindDirectIsUnordered", func(t *testing.T) {
		repo := repository.NewChatRepository(fixtures.Chats)
		c1, err := repo.FindDirect(ctx, "user2", seed.CurrentUserID)
		require.NoError(t, err)
		c2, err := repo.FindDirect(ctx, seed.CurrentUserID, "user2")
		require.NoError(t, err)
		assert.Equal(t, c1.ID, c2.ID)
	})

	t.Run("SetLastMessage", func(t *testing.T) {
		repo := repository.NewChatRepository(fixtures.Chats)
		lm := &model.LastMessage{Content: "ping", Timestamp: time.Now()}
		require.NoError(t, repo.SetLastMessage(ctx, "chat1", lm))

		chat, err := repo.GetByID(ctx, "chat1")
		require.NoError(t, err)
		assert.Equal(t, "ping", chat.LastMessage.Content)
	})
}

func TestMessageRepository(t *testing.T) {
	ctx := context.Background()
	fixtures := seed.Data(time.Now().UTC())

	t.Run("ListDerivesOwnership", func(t *testing.T) {
		repo := repository.NewMessageRepository(fixtures.Messages)
		msgs, err := repo.ListByChat(ctx, "chat2", seed.CurrentUserID)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.False(t, msgs[0].IsOwnMessage)
		assert.True(t, msgs[1].IsOwnMessage)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		repo := repository.NewMessageRepository(fixtures.Messages)
		require.NoError(t, repo.UpdateStatus(ctx, "chat1", "msg1-7", model.MessageStatusDelivered))

		msgs, err := repo.ListByChat(ctx, "chat1", seed.CurrentUserID)
		require.NoError(t, err)
		assert.Equal(t, model.MessageStatusDelivered, msgs[len(msgs)-1].Status)
	})

	t.Run("UpdateStatusGoneMessage", func(t *testing.T) {
		repo := repository.NewMessageRepository(fixtures.Messages)
		require.NoError(t, repo.DeleteByChat(ctx, "chat1"))
		err := repo.UpdateStatus(ctx, "chat1", "msg1-7", model.MessageStatusRead)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("TypedFieldsRoundTrip", func(t *testing.T) {
		repo := repository.NewMessageRepository(fixtures.Messages)
		msgs, err := repo.ListByChat(ctx, "chat2", seed.CurrentUserID)
		require.NoError(t, err)
		loc := msgs[2].Location
		require.NotNil(t, loc)
		assert.Equal(t, "Sector 5 Command Post", loc.Address)
	})
}

func TestAlertRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	fixtures := seed.Data(now)

	t.Run("ListIsNewestFirst", func(t *testing.T) {
		repo := repository.NewAlertRepository(fixtures.Alerts)
		alerts, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, alerts, 2)
		assert.True(t, !alerts[0].Timestamp.Before(alerts[1].Timestamp))
	})

	t.Run("PrependedAlertSortsFirst", func(t *testing.T) {
		repo := repository.NewAlertRepository(fixtures.Alerts)
		require.NoError(t, repo.Prepend(ctx, &model.BroadcastAlert{
			ID:        "alertNew",
			Timestamp: now.Add(time.Minute),
		}))
		alerts, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "alertNew", alerts[0].ID)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	fixtures := seed.Data(time.Now().UTC())

	t.Run("AppendGoesToEnd", func(t *testing.T) {
		repo := repository.NewUserRepository(fixtures.Users)
		require.NoError(t, repo.Append(ctx, &model.User{ID: "userNew"}))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "userNew", users[len(users)-1].ID)
	})

	t.Run("DeleteRemovesExactlyOne", func(t *testing.T) {
		repo := repository.NewUserRepository(fixtures.Users)
		require.NoError(t, repo.Delete(ctx, "user4"))

		_, err := repo.GetByID(ctx, "user4")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, len(fixtures.Users)-1)
	})
}
