package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
)

// UserService backs the admin-only user management table.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// AddInput is the add-user form payload.
type AddInput struct {
	Name model.LocalizedString
	Role model.UserRole
}

// Add creates a user with a synthetic id, offline status and a placeholder
// avatar derived from the first character of the name.
func (s *UserService) Add(ctx context.Context, in AddInput) (*model.User, error) {
	name := in.Name
	name.EN = strings.TrimSpace(name.EN)
	name.SQ = strings.TrimSpace(name.SQ)
	if name.EN == "" {
		name.EN = name.SQ
	}
	if name.EN == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if name.SQ == "" {
		name.SQ = name.EN
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidRole, in.Role)
	}

	initial := string([]rune(name.EN)[:1])
	user := &model.User{
		ID:        fmt.Sprintf("user%d", time.Now().UnixMilli()),
		Name:      name,
		Role:      in.Role,
		AvatarURL: "https://placehold.co/100x100.png?text=" + url.QueryEscape(initial),
		Status:    model.StatusOffline,
	}
	if err := s.userRepo.Append(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Deleting the session's own account is refused with
// no mutation.
func (s *UserService) Delete(ctx context.Context, currentUserID, targetID string) error {
	if targetID == currentUserID {
		return ErrSelfDelete
	}
	return s.userRepo.Delete(ctx, targetID)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}
