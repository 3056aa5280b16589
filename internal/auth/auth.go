package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/clock"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Service issues and verifies admin bearer tokens. There is a single staff
// identity configured through the environment; session handling beyond
// token expiry is out of scope.
type Service struct {
	adminEmail   string
	passwordHash string
	secret       []byte
	tokenTTL     time.Duration
	clock        clock.Clock
}

func NewService(adminEmail, passwordHash, secret string, tokenTTL time.Duration, clk clock.Clock) *Service {
	return &Service{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		clock:        clk,
	}
}

// Login verifies the credentials against the configured admin identity and
// returns a signed token.
func (s *Service) Login(email, password string) (string, error) {
	if s.adminEmail == "" || s.passwordHash == "" {
		return "", domain.ErrInvalidCredentials
	}
	if email != s.adminEmail {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token, returning the staff email.
func (s *Service) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrInvalidCredentials
	}
	return claims.Subject, nil
}
