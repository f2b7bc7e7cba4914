package services

import (
	"context"
	"errors"
	"strings"

	"studybuddy/models"
)

//go:generate mockgen -source=./guard.go -destination=./mocks/guard.mock.go -package=svcmocks IdentityFinder

// IdentityFinder looks up an identity by id, returning ErrNotFound if it does not exist.
type IdentityFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type AccessGuard struct {
	tokens  *TokenService
	users   IdentityFinder
	adminID uint
}

func NewAccessGuard(tokens *TokenService, users IdentityFinder, adminID uint) *AccessGuard {
	return &AccessGuard{
		tokens:  tokens,
		users:   users,
		adminID: adminID,
	}
}

// Authenticate resolves an Authorization header value to a user.
func (g *AccessGuard) Authenticate(ctx context.Context, header string) (*models.User, error) {
	token, ok := bearerToken(header)
	if !ok {
		return nil, ErrMissingCredential
	}
	return g.AuthenticateToken(ctx, token)
}

// AuthenticateToken resolves a raw token, for transports that cannot send headers.
func (g *AccessGuard) AuthenticateToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrMissingCredential
	}

	userID, err := g.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidOrExpiredToken
	}

	user, err := g.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnknownIdentity
		}
		return nil, err
	}
	return user, nil
}

// CanListIdentities is the only capability beyond ownership: the configured
// administrator may list every account.
func (g *AccessGuard) CanListIdentities(user *models.User) bool {
	return g.adminID != 0 && user != nil && user.ID == g.adminID
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
