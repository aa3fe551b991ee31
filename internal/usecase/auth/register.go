package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

const minPasswordLength = 6

var emailRe = regexp.MustCompile(`^[\w.+-]+@[\w.-]+\.\w{2,}$`)

type registrarSrv struct {
	users      port.UserRepository
	genUUID    port.UUIDGen
	bcryptCost int
}

var _ port.Registrar = (*registrarSrv)(nil)

func NewRegistrar(users port.UserRepository, genUUID port.UUIDGen, bcryptCost int) port.Registrar {
	return &registrarSrv{users: users, genUUID: genUUID, bcryptCost: bcryptCost}
}

// Register creates a user with the default viewer role. Emails are
// normalised to lowercase so uniqueness is case-insensitive.
func (s *registrarSrv) Register(ctx context.Context, in port.RegisterInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || in.FullName == "" {
		return nil, apperr.Validation("email, password and full name are required")
	}
	if !emailRe.MatchString(email) {
		return nil, apperr.Validation("%q is not a valid email", email)
	}
	if len(in.Password) < minPasswordLength {
		return nil, apperr.Validation("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           s.genUUID(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         model.RoleViewer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, port.ErrDuplicate) {
			return nil, apperr.Conflict("a user with email %q already exists", email)
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	logger.Infof(ctx, "registered user #%s", user.ID)
	return user, nil
}
