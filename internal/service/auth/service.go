package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/madrasahq/school-hr-backend/internal/domain/auth"
	"github.com/madrasahq/school-hr-backend/internal/domain/user"
	"github.com/madrasahq/school-hr-backend/internal/pkg/jwt"
	"github.com/madrasahq/school-hr-backend/internal/pkg/oauth"
)

const providerGoogle = "google"

type AuthServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
	google     oauth.GoogleService
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service, google oauth.GoogleService) auth.Service {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		google:     google,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPairResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return auth.TokenPairResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenPairResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenPairResponse{}, err
	}
	hashStr := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: &hashStr,
	})
	if err != nil {
		return auth.TokenPairResponse{}, err
	}

	return s.issueTokenPair(created)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPairResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPairResponse{}, err
	}

	// OAuth-only accounts carry no password hash.
	if u.PasswordHash == nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokenPair(u)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPairResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenPairResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPairResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenPairResponse{}, err
	}

	// Rotation: the old token stops working the moment the new pair is
	// issued.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokenPair(u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenPairResponse, error) {
	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}
	if !info.VerifiedEmail {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByOAuth(ctx, providerGoogle, info.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPairResponse{}, err
		}
		u, err = s.provisionGoogleUser(ctx, info)
		if err != nil {
			return auth.TokenPairResponse{}, err
		}
	}

	return s.issueTokenPair(u)
}

// provisionGoogleUser links the Google identity to an existing account with
// the same email, or creates a fresh one.
func (s *AuthServiceImpl) provisionGoogleUser(ctx context.Context, info oauth.GoogleInformation) (user.User, error) {
	email := strings.ToLower(info.Email)
	provider := providerGoogle
	providerID := info.GoogleID

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return existing, nil
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, err
	}

	return s.userRepo.Create(ctx, user.User{
		ID:              uuid.New().String(),
		Email:           email,
		OAuthProvider:   &provider,
		OAuthProviderID: &providerID,
	})
}

func (s *AuthServiceImpl) issueTokenPair(u user.User) (auth.TokenPairResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return auth.TokenPairResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenPairResponse{}, err
	}

	return auth.TokenPairResponse{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}
