package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/auth"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/service/ports"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/validation"
	"github.com/wb-go/wbf/logger"
)

type UserService struct {
	repo     ports.UserRepo
	tokens   ports.TokenIssuer
	sessions ports.SessionStore
	logger   logger.Logger
}

// NewUserService builds the account service. sessions may be nil, in which
// case login issues a bearer token only.
func NewUserService(repo ports.UserRepo, tokens ports.TokenIssuer, sessions ports.SessionStore, logger logger.Logger) *UserService {
	return &UserService{
		repo:     repo,
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := validation.Struct(input).Err(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   hash,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "user registered",
		logger.String("user_id", user.ID),
		logger.String("username", user.Username),
	)

	return user, nil
}

// Login checks the credentials and issues a bearer token, plus a session
// when a session store is configured.
func (s *UserService) Login(ctx context.Context, input domain.LoginInput) (*domain.Session, error) {
	fields := domain.FieldErrors{}
	if input.Username == "" {
		fields.Add("username", msgRequired)
	}
	if input.Password == "" {
		fields.Add("password", msgRequired)
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, input.Username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, input.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	session := &domain.Session{User: user, Token: token}
	if s.sessions != nil {
		if session.SessionID, err = s.sessions.Create(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "user logged in",
		logger.String("user_id", user.ID),
	)

	return session, nil
}

// Logout drops the cookie session. Bearer tokens stay valid until they expire.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if s.sessions == nil || sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
