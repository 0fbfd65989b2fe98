package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/domain/repository"
	"github.com/tugaskita/tugaskita/internal/shared"
	"github.com/tugaskita/tugaskita/pkg/helpers"
)

// AuthService composes the password hasher, the token manager, and the
// credential store. ResolveCaller is the single authentication gate for
// every protected operation.
type AuthService struct {
	Users    repository.UserRepository
	JWT      *helpers.JWTManager
	Activity *ActivityRecorder
	Logger   *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, activity *ActivityRecorder, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Activity: activity, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates an identity. The plaintext password is hashed and
// discarded; the role must be exactly "admin" or "user".
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, shared.ErrInvalidInput
	}
	if existing, err := s.Users.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, shared.ErrDuplicateIdentity
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:    in.Email,
		Password: hash,
		Name:     in.Name,
		Role:     role,
	}
	// The unique constraint catches the race the lookup above leaves open.
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.Activity.Record(ctx, "register", u.Email, map[string]any{
		"name": u.Name,
		"role": u.Role.String(),
	})
	return u, nil
}

// Login validates credentials and issues a bearer token bound to the email.
// Unknown email and wrong password return the same error so neither is
// disclosed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return "", time.Time{}, shared.ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, shared.ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Error("token generation failed")
		}
		return "", time.Time{}, err
	}
	s.Activity.Record(ctx, "login", u.Email, map[string]any{})
	return token, exp, nil
}

// ResolveCaller turns a bearer token into an authenticated identity. The
// token carries only the subject email; the identity record is always
// re-read from the store.
func (s *AuthService) ResolveCaller(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, shared.ErrInvalidToken
	}
	email := claims.Subject
	if email == "" {
		return nil, shared.ErrInvalidToken
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnknownSubject
		}
		return nil, err
	}
	return u, nil
}
