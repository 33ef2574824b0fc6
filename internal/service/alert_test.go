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

func newAlertService(t *testing.T, now time.Time) (*service.AlertService, *repository.AlertRepository) {
	t.Helper()
	repo := repository.NewAlertRepository(seed.Data(now).Alerts)
	return service.NewAlertService(repo), repo
}

func TestAlertSend(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	sender := &model.User{ID: "user1", Name: model.LocalizedString{EN: "Alice (Admin)"}, Role: model.RoleAdmin}

	valid := service.AlertInput{
		Title:       "Bridge closed",
		Content:     "North bridge closed until further notice.",
		Priority:    model.PriorityMedium,
		TargetRoles: []model.UserRole{model.RoleResponder},
	}

	t.Run("Success", func(t *testing.T) {
		svc, repo := newAlertService(t, now)
		alert, err := svc.Send(ctx, sender, valid)
		require.NoError(t, err)
		assert.NotEmpty(t, alert.ID)
		assert.Equal(t, sender.ID, alert.SenderID)
		assert.False(t, alert.Timestamp.IsZero())

		alerts, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, alerts, 3)
	})

	t.Run("ValidationFailuresDoNotMutate", func(t *testing.T) {
		invalid := []struct {
			name  string
			input service.AlertInput
		}{
			{"EmptyTitle", service.AlertInput{Content: "c", Priority: model.PriorityLow, TargetRoles: valid.TargetRoles}},
			{"EmptyContent", service.AlertInput{Title: "t", Priority: model.PriorityLow, TargetRoles: valid.TargetRoles}},
			{"NoTargetRoles", service.AlertInput{Title: "t", Content: "c", Priority: model.PriorityLow}},
			{"UnknownRole", service.AlertInput{Title: "t", Content: "c", Priority: model.PriorityLow, TargetRoles: []model.UserRole{"root"}}},
			{"UnknownPriority", service.AlertInput{Title: "t", Content: "c", Priority: "urgent", TargetRoles: valid.TargetRoles}},
		}
		for _, tt := range invalid {
			t.Run(tt.name, func(t *testing.T) {
				svc, repo := newAlertService(t, now)
				_, err := svc.Send(ctx, sender, tt.input)
				assert.ErrorIs(t, err, service.ErrValidation)

				alerts, err := repo.List(ctx)
				require.NoError(t, err)
				assert.Len(t, alerts, 2, "no mutation on validation failure")
			})
		}
	})
}

func TestAlertList(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	svc, _ := newAlertService(t, now)
	all := model.AllPriorities()

	t.Run("AdminSeesEverything", func(t *testing.T) {
		alerts, err := svc.List(ctx, model.RoleAdmin, all)
		require.NoError(t, err)
		require.Len(t, alerts, 2)
		assert.Equal(t, "alert1", alerts[0].ID, "newest first")
	})

	t.Run("ObserverSeesOnlyTargetedAlerts", func(t *testing.T) {
		alerts, err := svc.List(ctx, model.RoleObserver, all)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "alert1", alerts[0].ID)
	})

	t.Run("PriorityFilterApplies", func(t *testing.T) {
		alerts, err := svc.List(ctx, model.RoleAdmin, model.PriorityFilter{model.PriorityHigh: true})
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "alert2", alerts[0].ID)
	})
}

func TestParsePriorityFilter(t *testing.T) {
	t.Run("EmptyMeansAll", func(t *testing.T) {
		f, err := service.ParsePriorityFilter("")
		require.NoError(t, err)
		assert.Equal(t, model.AllPriorities(), f)
	})

	t.Run("CommaSeparated", func(t *testing.T) {
		f, err := service.ParsePriorityFilter("low, high")
		require.NoError(t, err)
		assert.True(t, f[model.PriorityLow])
		assert.True(t, f[model.PriorityHigh])
		assert.False(t, f[model.PriorityMedium])
		assert.False(t, f[model.PriorityCritical])
	})

	t.Run("UnknownPriority", func(t *testing.T) {
		_, err := service.ParsePriorityFilter("low,urgent")
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}
