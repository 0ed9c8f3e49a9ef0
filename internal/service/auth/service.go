package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/worksight/worksight-backend-go/internal/domain/auth"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/pkg/clock"
	"github.com/worksight/worksight-backend-go/internal/pkg/jwt"
	"github.com/worksight/worksight-backend-go/internal/pkg/oauth"
)

type Service struct {
	userRepo  user.UserRepository
	tokenRepo auth.RefreshTokenRepository
	jwtSvc    jwt.Service
	google    oauth.GoogleService
	clock     clock.Clock
}

func NewService(
	userRepo user.UserRepository,
	tokenRepo auth.RefreshTokenRepository,
	jwtSvc jwt.Service,
	google oauth.GoogleService,
	clk clock.Clock,
) auth.AuthService {
	return &Service{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtSvc:    jwtSvc,
		google:    google,
		clock:     clk,
	}
}

func (s *Service) RegisterAdmin(ctx context.Context, req *auth.RegisterAdminRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	admins, err := s.userRepo.CountByRole(ctx, user.RoleAdmin, nil)
	if err != nil {
		return nil, err
	}
	if admins > 0 {
		return nil, auth.ErrAdminAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		Status:       user.StatusActive,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, u)
}

func (s *Service) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	stored, err := s.tokenRepo.GetByHash(ctx, hashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if !stored.IsUsable(s.clock.Now()) {
		return nil, auth.ErrInvalidRefreshToken
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive() {
		return nil, auth.ErrAccountInactive
	}

	// Rotate: the presented token is spent either way.
	if err := s.tokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	return &resp.TokenPair, nil
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.tokenRepo.RevokeAllForUser(ctx, userID)
}

func (s *Service) Me(ctx context.Context, userID string) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.ToUserResponse(u), nil
}

func (s *Service) GoogleAuthURL(state string) string {
	return s.google.AuthURL(state)
}

func (s *Service) GoogleCallback(ctx context.Context, code string) (*auth.LoginResponse, error) {
	profile, err := s.google.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	if !profile.VerifiedEmail {
		return nil, auth.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrOAuthEmailNotFound
		}
		return nil, err
	}

	return s.issueTokens(ctx, u)
}

func (s *Service) issueTokens(ctx context.Context, u *user.User) (*auth.LoginResponse, error) {
	if !u.IsActive() {
		return nil, auth.ErrAccountInactive
	}

	accessToken, _, err := s.jwtSvc.GenerateAccessToken(u.ID, u.Email, u.Role, u.LocationID, u.DepartmentID)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtSvc.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	stored := &auth.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}
	if err := s.tokenRepo.Create(ctx, stored); err != nil {
		return nil, err
	}

	ttl, err := s.jwtSvc.AccessTokenTTLSeconds()
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		TokenPair: auth.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    ttl,
		},
		User: user.ToUserResponse(u),
	}, nil
}

// Refresh tokens are stored hashed so a database leak does not leak usable
// credentials.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
