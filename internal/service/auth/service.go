package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medisuite/hospital-api/internal/model"
	"github.com/medisuite/hospital-api/internal/repository"
	"github.com/medisuite/hospital-api/internal/session"
	"github.com/medisuite/hospital-api/pkg/auth"
	apperrors "github.com/medisuite/hospital-api/pkg/errors"
	"github.com/medisuite/hospital-api/pkg/security"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// seedAccounts are the fixed demo accounts the bootstrap endpoint
// provisions. The bootstrap always reports this full set back,
// whether or not anything was created.
var seedAccounts = []struct {
	Name       string
	Credential model.SeedCredential
}{
	{Name: "Admin", Credential: model.SeedCredential{Email: "admin@hospital.com", Password: "admin123", Role: model.RoleAdmin}},
	{Name: "Dr. John Smith", Credential: model.SeedCredential{Email: "doctor@hospital.com", Password: "doctor123", Role: model.RoleDoctor}},
	{Name: "Jane Doe", Credential: model.SeedCredential{Email: "patient@example.com", Password: "patient123", Role: model.RolePatient}},
}

type Service struct {
	users    repository.UserRepository
	jwtSvc   auth.JWTService
	hasher   security.PasswordHasher
	sessions session.Store // nil when no session store is configured
}

func NewService(users repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher, sessions session.Store) *Service {
	return &Service{
		users:    users,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
		sessions: sessions,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthenticated(ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthenticated(ErrInvalidCredentials)
	}

	token, sessionID, err := s.jwtSvc.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if s.sessions != nil {
		if err := s.sessions.Put(ctx, sessionID, s.jwtSvc.Expiry()); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	return &model.TokenResponse{Token: token, User: user}, nil
}

// ValidateSession checks the token signature and, when a session store
// is configured, that the session has not been revoked.
func (s *Service) ValidateSession(ctx context.Context, token string) (*auth.SessionClaims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthenticated(err)
	}

	if s.sessions != nil {
		ok, err := s.sessions.Exists(ctx, claims.SessionID())
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		if !ok {
			return nil, apperrors.Unauthenticated(errors.New("session revoked"))
		}
	}

	return claims, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return apperrors.Unauthenticated(err)
	}
	if s.sessions != nil {
		return s.sessions.Delete(ctx, claims.SessionID())
	}
	return nil
}

// Seed provisions the demo accounts, skipping any email that already
// exists, and reports the credential set either way.
func (s *Service) Seed(ctx context.Context) (*model.SeedResult, error) {
	result := &model.SeedResult{Message: "Users created successfully"}

	for _, account := range seedAccounts {
		_, err := s.users.GetByEmail(ctx, account.Credential.Email)
		if err == nil {
			result.Existing = append(result.Existing, account.Credential.Email)
			continue
		}
		if !apperrors.IsNotFound(err) {
			return nil, err
		}

		hash, err := s.hasher.Hash(account.Credential.Password)
		if err != nil {
			return nil, apperrors.Internal(err)
		}

		user := &model.User{
			Base:         model.Base{ID: uuid.New()},
			Name:         account.Name,
			Email:        account.Credential.Email,
			PasswordHash: hash,
			Role:         account.Credential.Role,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		result.Created = append(result.Created, account.Credential)
	}

	for _, account := range seedAccounts {
		result.Credentials = append(result.Credentials, account.Credential)
	}
	return result, nil
}
