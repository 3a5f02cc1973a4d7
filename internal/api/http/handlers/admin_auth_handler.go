package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/salestrack/sales-service/internal/api/dto"
	"github.com/salestrack/sales-service/internal/auth"
	"github.com/salestrack/sales-service/internal/service"
)

// AdminAuthHandler exposes the admin console login endpoint.
type AdminAuthHandler struct {
	auth *service.AuthService
}

// NewAdminAuthHandler constructs handler.
func NewAdminAuthHandler(authService *service.AuthService) *AdminAuthHandler {
	return &AdminAuthHandler{auth: authService}
}

// Login handles POST /api/admin/login.
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	identity, token, expiresIn, err := h.auth.AdminLogin(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return auth.ToDomainError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"admin": fiber.Map{
				"id":       identity.ID,
				"username": identity.Username,
				"role":     identity.Role,
			},
			"auth": dto.AdminAuthResponse{Token: token, ExpiresIn: expiresIn},
		},
	})
}
