package service

import (
	"context"
	"errors"
	"time"

	"tebaba-backend/internal/auth"
	"tebaba-backend/internal/model"
	"tebaba-backend/internal/repository"
	apperrors "tebaba-backend/pkg/app_errors"
)

type AuthService interface {
	// Login validates credentials and returns a signed access token with
	// the authenticated user. Missing user and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	// CurrentUser resolves the user behind a raw bearer token, looking up
	// the email claim first and falling back to the username claim for
	// legacy tokens.
	CurrentUser(ctx context.Context, rawToken string) (*model.User, error)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	tokens   *auth.TokenIssuer
	tokenTTL time.Duration
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenIssuer, tokenTTL time.Duration) AuthService {
	return &AuthServiceImpl{users: users, tokens: tokens, tokenTTL: tokenTTL}
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			auth.BurnPasswordCheck(password)
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.HashedPassword, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Username, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, rawToken string) (*model.User, error) {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, claims.Email())
	if errors.Is(err, apperrors.ErrUserNotFound) && claims.Username != "" {
		user, err = s.users.FindByUsername(ctx, claims.Username)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
