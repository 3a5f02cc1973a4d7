package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/salestrack/sales-service/internal/api/dto"
	"github.com/salestrack/sales-service/internal/auth"
	"github.com/salestrack/sales-service/internal/service"
)

// ClientAuthHandler exchanges tracking ids for stateless staff tokens.
type ClientAuthHandler struct {
	auth *service.AuthService
}

// NewClientAuthHandler constructs handler.
func NewClientAuthHandler(authService *service.AuthService) *ClientAuthHandler {
	return &ClientAuthHandler{auth: authService}
}

// Authenticate handles POST /api/client/auth.
func (h *ClientAuthHandler) Authenticate(c *fiber.Ctx) error {
	var req dto.ClientAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.TrackingID == "" {
		return fiber.NewError(http.StatusBadRequest, "trackingId required")
	}

	token, claims, err := h.auth.IssueClientToken(c.UserContext(), req.TrackingID)
	if err != nil {
		return auth.ToDomainError(err)
	}

	return c.JSON(fiber.Map{
		"data": dto.ClientAuthResponse{
			Token:     token,
			User:      claims.User,
			IssuedAt:  claims.IssuedAt,
			ExpiresAt: claims.ExpiresAt,
		},
	})
}
