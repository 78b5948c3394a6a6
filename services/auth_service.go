package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HSouheill/client_desk/config"
	"github.com/HSouheill/client_desk/logger"
	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/repositories"
	"github.com/HSouheill/client_desk/utils"
)

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// TokenIssuer signs a session token for an account.
type TokenIssuer interface {
	Issue(user *models.User) (string, time.Time, error)
}

// Session is the result of a successful login.
type Session struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// AuthService handles sign-in, sign-out and account creation
type AuthService struct {
	users    UserStore
	tokens   TokenIssuer
	sessions repositories.SessionStore
}

func NewAuthService(users UserStore, tokens TokenIssuer, sessions repositories.SessionStore) *AuthService {
	return &AuthService{users: users, tokens: tokens, sessions: sessions}
}

// Login verifies the password and issues a token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	clean, err := utils.SanitizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, clean)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(user.Password, password) {
		logger.Component("auth").Warn().Str("email", logger.MaskEmail(clean)).Msg("failed login")
		return nil, ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	logger.Component("auth").Info().Str("user", user.ID.Hex()).Str("role", user.Role).Msg("login")
	return &Session{User: user, Token: token, ExpiresAt: expires}, nil
}

// Logout revokes the session until its token would expire.
func (s *AuthService) Logout(ctx context.Context, sessionID string, expires time.Time) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, sessionID, expires)
}

// Register creates an account. Role defaults to employee.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"email": "Please enter a valid email address"}}
	}
	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Name:      utils.SanitizeInput(req.Name),
		Email:     email,
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Me loads the account behind a token.
func (s *AuthService) Me(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// SeedAdmin creates the configured admin account when no admin exists yet.
// It reports whether an account was created.
func (s *AuthService) SeedAdmin(ctx context.Context, seed config.AdminSeed) (bool, error) {
	if seed.Email == "" || seed.Password == "" {
		return false, nil
	}

	n, err := s.users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	name := seed.Name
	if name == "" {
		name = "Admin"
	}
	_, err = s.Register(ctx, models.RegisterRequest{
		Name:     name,
		Email:    seed.Email,
		Password: seed.Password,
		Role:     models.RoleAdmin,
	})
	if errors.Is(err, ErrEmailTaken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	logger.Component("auth").Info().Str("email", logger.MaskEmail(seed.Email)).Msg("seeded admin account")
	return true, nil
}
