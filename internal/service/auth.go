package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alertlink/internal/i18n"
	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/repository"
	"github.com/alertlink/internal/seed"
	"github.com/alertlink/internal/storage"
)

// AuthService implements the demo login flow: a fixed one-time password, a
// role picked at the login screen and an explicit session in the store.
type AuthService struct {
	store    storage.SessionStore
	userRepo *repository.UserRepository
	otp      string
}

func NewAuthService(store storage.SessionStore, userRepo *repository.UserRepository, otp string) *AuthService {
	return &AuthService{store: store, userRepo: userRepo, otp: otp}
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Session *model.Session
	User    *model.User
}

// Login checks the OTP literal and role, mints a session and stores the role,
// auth sentinel and language preference. The returned profile is the demo
// account with the chosen role applied.
func (s *AuthService) Login(ctx context.Context, otp, role, lang string) (*LoginResult, error) {
	if otp != s.otp {
		return nil, ErrInvalidOTP
	}
	r := model.UserRole(role)
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	locale := i18n.Normalize(lang)

	session := &model.Session{
		ID:        uuid.NewString(),
		Role:      r,
		Language:  locale,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SetRole(ctx, session.ID, string(r)); err != nil {
		return nil, fmt.Errorf("authService.Login: %w", err)
	}
	if err := s.store.SetAuth(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("authService.Login: %w", err)
	}
	if err := s.store.SetLanguage(ctx, session.ID, string(locale)); err != nil {
		return nil, fmt.Errorf("authService.Login: %w", err)
	}

	user, err := s.profile(ctx, r)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Session: session, User: user}, nil
}

// CurrentUser resolves the profile for an authenticated session, with the
// role the session was opened with.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*model.User, error) {
	role, err := s.store.GetRole(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("authService.CurrentUser: %w", err)
	}
	r := model.UserRole(role)
	if !r.Valid() {
		return nil, repository.ErrNotFound
	}
	return s.profile(ctx, r)
}

// Logout drops every session key, including the language preference.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("authService.Logout: %w", err)
	}
	return nil
}

// SetLanguage stores the session's language preference.
func (s *AuthService) SetLanguage(ctx context.Context, sessionID string, locale model.Locale) error {
	if err := s.store.SetLanguage(ctx, sessionID, string(locale)); err != nil {
		return fmt.Errorf("authService.SetLanguage: %w", err)
	}
	return nil
}

// Language returns the session's stored language, or the default when unset.
func (s *AuthService) Language(ctx context.Context, sessionID string) (model.Locale, error) {
	lang, err := s.store.GetLanguage(ctx, sessionID)
	if err != nil {
		return i18n.DefaultLocale, fmt.Errorf("authService.Language: %w", err)
	}
	if lang == "" {
		return i18n.DefaultLocale, nil
	}
	return i18n.Normalize(lang), nil
}

// profile returns a copy of the demo account with the given role.
func (s *AuthService) profile(ctx context.Context, role model.UserRole) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, seed.CurrentUserID)
	if err != nil {
		return nil, err
	}
	u := *user
	u.Role = role
	return &u, nil
}
