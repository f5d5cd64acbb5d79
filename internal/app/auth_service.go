package app

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/common"
	"jobboard/internal/domain/user"
	"jobboard/internal/observability"
	"jobboard/internal/security"
)

const minPasswordLength = 8

type AuthService struct {
	users  user.Repository
	tokens *security.JWTProvider
	logger *observability.Logger
}

func NewAuthService(users user.Repository, tokens *security.JWTProvider, logger *observability.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*user.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	fields := map[string]string{}
	if input.Username == "" {
		fields["username"] = "username is required"
	}
	if input.Email == "" {
		fields["email"] = "email is required"
	} else if !strings.Contains(input.Email, "@") {
		fields["email"] = "invalid email address"
	}
	if len(input.Password) < minPasswordLength {
		fields["password"] = "password must be at least 8 characters"
	}
	if len(input.Password2) < minPasswordLength {
		fields["password2"] = "password must be at least 8 characters"
	}
	if len(fields) == 0 && input.Password != input.Password2 {
		fields["password"] = "Passwords do not match"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("Registration failed", fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}

	created, err := s.users.Create(ctx, user.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         user.RoleApplicant,
	})
	if err != nil {
		return nil, err
	}
	s.logger.With("username", created.Username).Info("user registered")
	return created, nil
}

// Login verifies credentials and issues a token pair. Bad username and bad
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*user.User, *security.TokenPair, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, nil, common.NewError(common.CodeUnauthorized, "Invalid username or password", nil)
		}
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil, common.NewError(common.CodeUnauthorized, "Invalid username or password", nil)
	}
	pair, err := s.tokens.GeneratePair(u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*user.User, *security.TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, nil, err
	}
	userID, err := common.ParseUUID(claims.UserID)
	if err != nil {
		return nil, nil, common.NewError(common.CodeUnauthorized, "invalid token", err)
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, nil, common.NewError(common.CodeUnauthorized, "invalid token", nil)
		}
		return nil, nil, err
	}
	pair, err := s.tokens.GeneratePair(u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

func (s *AuthService) Profile(ctx context.Context, id common.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, id)
}
