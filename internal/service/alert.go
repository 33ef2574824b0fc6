package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
)

// AlertService manages broadcast alerts: composer validation, prepending and
// the role/priority visibility filter.
type AlertService struct {
	alertRepo *repository.AlertRepository
}

func NewAlertService(alertRepo *repository.AlertRepository) *AlertService {
	return &AlertService{alertRepo: alertRepo}
}

// AlertInput is the composer payload; id, timestamp and sender identity are
// assigned server-side.
type AlertInput struct {
	Title       string
	Content     string
	Priority    model.AlertPriority
	TargetRoles []model.UserRole
}

// Send validates and prepends a new alert. On validation failure nothing is
// mutated.
func (s *AlertService) Send(ctx context.Context, sender *model.User, in AlertInput) (*model.BroadcastAlert, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if len(in.TargetRoles) == 0 {
		return nil, fmt.Errorf("%w: at least one target role is required", ErrValidation)
	}
	for _, r := range in.TargetRoles {
		if !r.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, r)
		}
	}
	if !in.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, in.Priority)
	}

	alert := &model.BroadcastAlert{
		ID:          fmt.Sprintf("alert%d", time.Now().UnixMilli()),
		Title:       in.Title,
		Content:     in.Content,
		Priority:    in.Priority,
		Timestamp:   time.Now().UTC(),
		SenderID:    sender.ID,
		SenderName:  sender.Name,
		TargetRoles: in.TargetRoles,
	}
	if err := s.alertRepo.Prepend(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// List returns the alerts visible to a viewer with the given role and
// priority filter, newest first.
func (s *AlertService) List(ctx context.Context, role model.UserRole, filter model.PriorityFilter) ([]model.BroadcastAlert, error) {
	alerts, err := s.alertRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := alerts[:0]
	for _, a := range alerts {
		if a.VisibleTo(role, filter) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

// ParsePriorityFilter turns a comma-separated priority list into a filter.
// An empty value means every priority is enabled.
func ParsePriorityFilter(raw string) (model.PriorityFilter, error) {
	if strings.TrimSpace(raw) == "" {
		return model.AllPriorities(), nil
	}
	filter := make(model.PriorityFilter, len(model.Priorities))
	for _, part := range strings.Split(raw, ",") {
		p := model.AlertPriority(strings.TrimSpace(part))
		if !p.Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, p)
		}
		filter[p] = true
	}
	return filter, nil
}
