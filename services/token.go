package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates stateless bearer tokens. Nothing is
// stored server side; expiry is the only way a token stops working.
type TokenService struct {
	secret  []byte
	method  jwt.SigningMethod
	issuer  string
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewTokenService(secret, algorithm, issuer string, ttl time.Duration) (*TokenService, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &TokenService{
		secret:  []byte(secret),
		method:  method,
		issuer:  issuer,
		ttl:     ttl,
		nowFunc: time.Now,
	}, nil
}

// IssueToken signs a token for userID. A non-positive ttl uses the default.
func (s *TokenService) IssueToken(userID uint, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	now := s.nowFunc()
	token := jwt.NewWithClaims(s.method, jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString(s.secret)
}

// ValidateToken returns the user id carried by token. Every failure is
// reported as ErrInvalidToken.
func (s *TokenService) ValidateToken(tokenString string) (uint, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.nowFunc),
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 || uint64(uint(id)) != id {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
