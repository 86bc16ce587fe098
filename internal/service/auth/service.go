package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/auth"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/user"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo         user.UserRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashedStr := string(hashed)

	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashedStr,
		Role:         user.RolePending,
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return auth.LoginResponse{}, user.ErrEmailExists
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to register user: %w", err)
	}

	return s.issueTokens(ctx, created)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if u.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrPasswordLoginUnset
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleID, email, name string) (auth.LoginResponse, error) {
	u, err := s.userRepo.GetByGoogleID(ctx, googleID)
	if errors.Is(err, user.ErrUserNotFound) {
		// A Google profile we have not seen. Register on the fly, keeping
		// the account pending until it joins or creates an organization.
		u, err = s.userRepo.Create(ctx, user.User{
			Name:     name,
			Email:    email,
			GoogleID: &googleID,
			Role:     user.RolePending,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return auth.LoginResponse{}, user.ErrEmailExists
			}
			return auth.LoginResponse{}, fmt.Errorf("failed to register google user: %w", err)
		}
	} else if err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	stored, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if stored.RevokedAt != nil {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}
	if stored.IsExpired() {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, err
	}

	// Rotate: the used token is revoked and a fresh pair is issued.
	if err := s.refreshTokenRepo.Revoke(ctx, refreshToken); err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.refreshTokenRepo.Revoke(ctx, refreshToken)
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.OrganizationID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.Store(ctx, u.ID, refreshToken, time.Unix(refreshExp, 0)); err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token: auth.TokenResponse{
			AccessToken:  accessToken,
			ExpiresAt:    accessExp,
			RefreshToken: refreshToken,
			RefreshExp:   refreshExp,
		},
		User: auth.AuthenticatedUser{
			UserID:                 u.ID,
			Name:                   u.Name,
			Email:                  u.Email,
			OrganizationID:         u.OrganizationID,
			Role:                   string(u.Role),
			HasCompletedOnboarding: u.HasCompletedOnboarding,
		},
	}, nil
}
