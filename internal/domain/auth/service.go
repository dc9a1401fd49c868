package auth

import "context"

// Service handles account registration and session tokens.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (TokenPairResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenPairResponse, error)

	// Refresh rotates a refresh token into a new token pair, revoking the
	// old one.
	Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error)

	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle finishes the OAuth code exchange, provisioning the
	// account on first login.
	LoginWithGoogle(ctx context.Context, code string) (TokenPairResponse, error)
}
