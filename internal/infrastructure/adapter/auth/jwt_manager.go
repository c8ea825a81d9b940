package auth

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	authport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/auth"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenExpiry is used when no expiry is configured
const DefaultTokenExpiry = 7 * 24 * time.Hour

// JWTManager issues and verifies HS256 bearer tokens
type JWTManager struct {
	secret       []byte
	expiry       time.Duration
	timeProvider coreport.TimeProvider
}

type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a new JWTManager
func NewJWTManager(secret string, expiry time.Duration, timeProvider coreport.TimeProvider) authport.TokenManager {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &JWTManager{
		secret:       []byte(secret),
		expiry:       expiry,
		timeProvider: timeProvider,
	}
}

// Generate creates a signed token carrying the user's identity
func (m *JWTManager) Generate(claims authport.Claims) (string, error) {
	now := m.timeProvider.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: claims.Email,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token and returns the identity it carries
func (m *JWTManager) Verify(tokenString string) (*authport.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errs.ErrInvalidToken
	}

	return &authport.Claims{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
