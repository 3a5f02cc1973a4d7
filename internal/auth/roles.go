package auth

import (
	"github.com/gofiber/fiber/v2"

	util "github.com/salestrack/sales-service/pkg/util"
)

// RequireManager rejects verified staff identities that lack the manager
// role. Runs after RequireClient; a missing identity is an authentication
// failure, an insufficient role is 403.
func RequireManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := ClientFromContext(c)
		if !ok {
			return ToDomainError(ErrUnauthenticated)
		}
		if !identity.IsManager() {
			return util.NewForbidden("manager role required")
		}
		return c.Next()
	}
}
