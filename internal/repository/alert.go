package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alertlink/internal/logger"
	"github.com/alertlink/internal/model"
)

// AlertRepository is the in-memory broadcast alert list.
type AlertRepository struct {
	mu     sync.RWMutex
	alerts []model.BroadcastAlert
}

func NewAlertRepository(seed []model.BroadcastAlert) *AlertRepository {
	alerts := make([]model.BroadcastAlert, len(seed))
	copy(alerts, seed)
	return &AlertRepository{alerts: alerts}
}

// List returns all alerts sorted newest-first.
func (r *AlertRepository) List(ctx context.Context) ([]model.BroadcastAlert, error) {
	defer logger.DeferLogDuration("alert.List", time.Now())()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.BroadcastAlert, len(r.alerts))
	copy(out, r.alerts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Prepend inserts a new alert at the front of the list.
func (r *AlertRepository) Prepend(ctx context.Context, a *model.BroadcastAlert) error {
	defer logger.DeferLogDuration("alert.Prepend", time.Now())()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append([]model.BroadcastAlert{*a}, r.alerts...)
	return nil
}
