package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (LoginResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// LoginWithGoogle logs in (or registers) a user from a verified Google
	// profile and returns the same token pair as a password login.
	LoginWithGoogle(ctx context.Context, googleID, email, name string) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
