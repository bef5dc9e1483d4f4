// Package auth handles bearer tokens on both sides of the fleet API
// boundary: fleetsim issues and validates them, and callers inspect expiry
// before deciding to re-authenticate.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const defaultTokenExp = 24 * time.Hour

// Service issues and validates JWT bearer tokens.
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration
}

// NewService creates a token service. A zero expiry defaults to 24 hours;
// a negative expiry is honored and mints already-expired tokens.
func NewService(secret string, tokenExp time.Duration) *Service {
	if tokenExp == 0 {
		tokenExp = defaultTokenExp
	}
	return &Service{
		jwtSecret: []byte(secret),
		tokenExp:  tokenExp,
	}
}

// GenerateToken generates a signed token for the given subject.
func (s *Service) GenerateToken(subject string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(s.tokenExp).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a token and returns its subject.
func (s *Service) ValidateToken(tokenString string) (string, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	subject, ok := claims["sub"].(string)
	if !ok {
		return "", ErrInvalidToken
	}
	return subject, nil
}

// ExtractTokenFromHeader extracts the token from an Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

// Expired reports whether a token's exp claim has passed, without verifying
// the signature. Tokens that cannot be parsed at all count as expired so
// callers fall through to re-authentication.
func Expired(tokenString string, now time.Time) bool {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return now.After(exp.Time)
}
