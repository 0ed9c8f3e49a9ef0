package auth

import (
	"context"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
)

type AuthService interface {
	// RegisterAdmin bootstraps the very first admin account. Once any
	// admin exists the endpoint is closed.
	RegisterAdmin(ctx context.Context, req *RegisterAdminRequest) (*LoginResponse, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// Refresh rotates a refresh token into a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes every refresh token the user holds.
	Logout(ctx context.Context, userID string) error

	// Me returns the authenticated user's profile.
	Me(ctx context.Context, userID string) (*user.UserResponse, error)

	// GoogleAuthURL builds the Google consent URL for the given state.
	GoogleAuthURL(state string) string

	// GoogleCallback exchanges the authorization code and logs in the
	// matching account. Unknown emails are rejected.
	GoogleCallback(ctx context.Context, code string) (*LoginResponse, error)
}
