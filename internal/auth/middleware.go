package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/salestrack/sales-service/internal/domain"
)

const (
	adminIdentityKey  = "auth_admin_identity"
	clientIdentityKey = "auth_client_identity"
)

// AdminVerifier validates a stateful admin session token.
type AdminVerifier interface {
	VerifyAdminToken(ctx context.Context, token string) (*domain.AdminIdentity, error)
}

// ClientVerifier validates a stateless client token.
type ClientVerifier interface {
	VerifyClientToken(token string) (*domain.ClientIdentity, error)
}

// Middleware is the single gate in front of protected routes. It extracts
// the bearer token, delegates to the configured verifier, and stashes the
// resulting identity for handlers.
type Middleware struct {
	admins  AdminVerifier
	clients ClientVerifier
}

// NewMiddleware constructs the gate.
func NewMiddleware(admins AdminVerifier, clients ClientVerifier) *Middleware {
	return &Middleware{admins: admins, clients: clients}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get("Authorization")
	if header == "" {
		return "", ErrUnauthenticated
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrUnauthenticated
	}
	return parts[1], nil
}

// RequireAdmin enforces a live admin session.
func (m *Middleware) RequireAdmin(c *fiber.Ctx) error {
	token, err := BearerToken(c)
	if err != nil {
		return ToDomainError(err)
	}
	identity, err := m.admins.VerifyAdminToken(c.UserContext(), token)
	if err != nil {
		return ToDomainError(err)
	}
	c.Locals(adminIdentityKey, identity)
	return c.Next()
}

// RequireClient enforces a valid staff token.
func (m *Middleware) RequireClient(c *fiber.Ctx) error {
	token, err := BearerToken(c)
	if err != nil {
		return ToDomainError(err)
	}
	identity, err := m.clients.VerifyClientToken(token)
	if err != nil {
		return ToDomainError(err)
	}
	c.Locals(clientIdentityKey, identity)
	return c.Next()
}

// AdminFromContext retrieves the authenticated admin.
func AdminFromContext(c *fiber.Ctx) (*domain.AdminIdentity, bool) {
	identity, ok := c.Locals(adminIdentityKey).(*domain.AdminIdentity)
	return identity, ok
}

// ClientFromContext retrieves the authenticated staff member.
func ClientFromContext(c *fiber.Ctx) (*domain.ClientIdentity, bool) {
	identity, ok := c.Locals(clientIdentityKey).(*domain.ClientIdentity)
	return identity, ok
}
