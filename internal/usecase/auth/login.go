package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

// Claims is the token payload the auth middleware reads back on every
// authenticated request.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type authenticatorSrv struct {
	users  port.UserRepository
	secret string
	ttl    time.Duration
}

var _ port.Authenticator = (*authenticatorSrv)(nil)

func NewAuthenticator(users port.UserRepository, secret string, ttl time.Duration) port.Authenticator {
	return &authenticatorSrv{users: users, secret: secret, ttl: ttl}
}

// Login verifies the credential and issues an HS256 token carrying the user
// id, email and role. A wrong email and a wrong password are indistinguishable
// to the caller.
func (s *authenticatorSrv) Login(ctx context.Context, in port.LoginInput) (port.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return port.LoginOutput{}, apperr.Validation("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return port.LoginOutput{}, apperr.AccessDenied("invalid credentials")
		}
		return port.LoginOutput{}, fmt.Errorf("fetching user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return port.LoginOutput{}, apperr.AccessDenied("invalid credentials")
	}

	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return port.LoginOutput{}, fmt.Errorf("signing token: %w", err)
	}

	logger.Infof(ctx, "user #%s logged in", user.ID)
	return port.LoginOutput{Token: token}, nil
}
