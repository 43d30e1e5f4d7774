package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/auth"
	"github.com/danilom/inkbase/internal/domain"
	"github.com/danilom/inkbase/internal/repository"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
)

type AuthService struct {
	userRepo   repository.UserRepository
	workspaces *WorkspaceService
	tokens     *auth.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, workspaces *WorkspaceService, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		workspaces: workspaces,
		tokens:     tokens,
	}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	User        *domain.PublicUser `json:"user"`
}

// Register creates the user, their default workspace with its two starter
// pages, and issues a session token. The email uniqueness check here is the
// only one; no unique index backs it.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		Workspaces:   []string{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	ws, err := s.workspaces.CreateDefault(ctx, user)
	if err != nil {
		return nil, err
	}
	user.Workspaces = append(user.Workspaces, ws.ID.String())

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &AuthResponse{AccessToken: token, TokenType: "bearer", User: user.Public()}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCreds
	}

	if !auth.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCreds
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &AuthResponse{AccessToken: token, TokenType: "bearer", User: user.Public()}, nil
}
