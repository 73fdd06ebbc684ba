package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"chenu2/internal/models"
	"chenu2/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 14 * 24 * time.Hour
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidRefreshToken = errors.New("refresh token is invalid or expired")

// AuthService issues and refreshes admin JWTs. Refresh tokens are opaque
// strings stored hashed; rotating one revokes its predecessor.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error)
	// EnsureInitialAdmin creates the bootstrap admin account when the users
	// table is empty of it, mirroring first-run provisioning.
	EnsureInitialAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	users  repositories.UserRepository
	tokens repositories.TokenRepository
	secret []byte
}

func NewAuthService(users repositories.UserRepository, tokens repositories.TokenRepository, jwtSecret string) AuthService {
	return &authService{users: users, tokens: tokens, secret: []byte(jwtSecret)}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	stored, err := s.tokens.FindValid(ctx, hashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	// rotate: the old token dies with the new issuance
	if err := s.tokens.Revoke(ctx, stored.ID.String()); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *authService) EnsureInitialAdmin(ctx context.Context, email, password string) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         models.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("initial admin account created: %s", email)
	return nil
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (*models.TokenResponse, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", user.ID),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.New().String() + uuid.New().String()
	record := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		UserID:       user.ID,
	}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
