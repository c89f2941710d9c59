package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/app2/products-catalog/internal/core/domain"
	"github.com/app2/products-catalog/internal/core/ports"
)

// AuthService implements registration and both login flows.
type AuthService struct {
	users      ports.UserRepository
	tokens     ports.TokenService
	adminLogin string
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, adminLogin string, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, adminLogin: adminLogin, logger: logger}
}

// Register creates a new account. Self-registration as ADMIN is forbidden;
// admin accounts are provisioned out of band.
func (s *AuthService) Register(ctx context.Context, login, password, role string) error {
	if login == "" || password == "" {
		return domain.ErrInvalidInput
	}
	if !domain.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	if role == domain.RoleAdmin {
		return domain.ErrInvalidInput
	}

	if _, err := s.users.FindByLogin(ctx, login); err == nil {
		return domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Login:        login,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	// The unique index on login is the backstop against a concurrent
	// registration winning between the lookup above and this insert.
	if _, err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("login", login).Msg("user registered")
	return nil
}

// Login exchanges credentials for a session token. Unknown login and wrong
// password are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.ID, user.Login, user.Role)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("login", login).Str("role", user.Role).Msg("user logged in")
	return token, nil
}

// AdminLogin is Login gated on the reserved administrator login. The gate is
// on which login may use this endpoint, not a separate credential type: the
// account must still exist and its password must still verify.
func (s *AuthService) AdminLogin(ctx context.Context, login, password string) (string, error) {
	if login != s.adminLogin {
		return "", domain.ErrInvalidInput
	}
	return s.Login(ctx, login, password)
}

var _ ports.AuthService = (*AuthService)(nil)
