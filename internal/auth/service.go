package auth

import (
	"errors"
	"fmt"
	"time"

	"teamops-backend/internal/config"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthClaims represents JWT token claims for a roster member
type AuthClaims struct {
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	MemberCode string `json:"member_code"`
	jwt.RegisteredClaims
}

// LoginRequest represents the login payload. Identification is by roster name
// alone, mirroring the sign-in screen this backend serves. Not a security
// boundary.
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	ExpiresInSeconds int64  `json:"expires_in_seconds"`
	MemberID         string `json:"member_id"`
	MemberName       string `json:"member_name"`
	MemberCode       string `json:"member_code"`
	Role             string `json:"role"`
}

// AuthService issues and validates member tokens
type AuthService struct {
	secret     []byte
	ttl        time.Duration
	memberRepo repository.MemberRepositoryInterface
	now        func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, memberRepo repository.MemberRepositoryInterface) *AuthService {
	return &AuthService{
		secret:     []byte(cfg.JWTSecret),
		ttl:        time.Duration(cfg.JWTTTLMinutes) * time.Minute,
		memberRepo: memberRepo,
		now:        time.Now,
	}
}

// Login resolves a roster member by name and issues a token
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	member, err := s.memberRepo.GetByName(req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}
	if !member.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := s.now()
	claims := AuthClaims{
		MemberID:   member.ID.String(),
		MemberName: member.Name,
		MemberCode: member.Code,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "teamops-backend",
			Subject:   member.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInSeconds: int64(s.ttl.Seconds()),
		MemberID:         member.ID.String(),
		MemberName:       member.Name,
		MemberCode:       member.Code,
		Role:             member.Role,
	}, nil
}

// ValidateJWT parses and validates a token string
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// MemberIDFromClaims parses the member UUID out of validated claims
func MemberIDFromClaims(claims *AuthClaims) (uuid.UUID, error) {
	id, err := uuid.Parse(claims.MemberID)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	return id, nil
}
