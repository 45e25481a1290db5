package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sipline/drink_shop/internal/hash"
	"github.com/sipline/drink_shop/internal/logging"
	"github.com/sipline/drink_shop/internal/models"
	"github.com/sipline/drink_shop/internal/mykafka"
	"github.com/sipline/drink_shop/internal/repo"
	"github.com/sipline/drink_shop/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
	Producer  *mykafka.Producer
}

type LoginResult struct {
	Token    string
	UserID   uint
	Username string
}

func (s *AuthService) Register(ctx context.Context, username, password string) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if username == "" || password == "" {
		return 0, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return 0, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUsernameTaken) {
			l.Warn("register_error", "status", 400, "reason", "username already exists")
			return 0, fmt.Errorf("%w: username already exists", ErrConflict)
		}
		l.Error("register_error", "status", 500, "error", err)
		return 0, err
	}

	event := map[string]interface{}{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	}
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicUserEvents, fmt.Sprint(user.ID), event); err != nil {
		l.Warn("kafka_publish_error", "topic", mykafka.TopicUserEvents, "error", err)
	}

	l.Info("register_success", "user_id", user.ID)
	return user.ID, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401)
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401)
		return nil, ErrInvalidCredentials
	}

	token, err := tokens.Issue(s.JWTSecret, user.ID, user.Username, s.TokenTTL)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	l.Info("login_success", "user_id", user.ID)
	return &LoginResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}
