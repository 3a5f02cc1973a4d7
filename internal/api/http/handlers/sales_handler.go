package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/salestrack/sales-service/internal/api/dto"
	"github.com/salestrack/sales-service/internal/auth"
	"github.com/salestrack/sales-service/internal/service"
)

// SalesHandler exposes sale submission and listing endpoints.
type SalesHandler struct {
	sales *service.SaleService
}

// NewSalesHandler constructs handler.
func NewSalesHandler(salesService *service.SaleService) *SalesHandler {
	return &SalesHandler{sales: salesService}
}

// Submit handles POST /api/sales.
func (h *SalesHandler) Submit(c *fiber.Ctx) error {
	actor, ok := auth.ClientFromContext(c)
	if !ok {
		return auth.ToDomainError(auth.ErrUnauthenticated)
	}

	var req dto.SubmitSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	sale, err := h.sales.SubmitSale(c.UserContext(), actor, service.SubmitSaleInput{
		StoreID:    req.StoreID,
		ProductID:  req.ProductID,
		AmountCent: req.AmountCents,
		SoldAt:     req.SoldAt,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewSaleResponse(sale),
	})
}

// ListMine handles GET /api/sales/mine.
func (h *SalesHandler) ListMine(c *fiber.Ctx) error {
	actor, ok := auth.ClientFromContext(c)
	if !ok {
		return auth.ToDomainError(auth.ErrUnauthenticated)
	}

	sales, err := h.sales.ListOwnSales(c.UserContext(), actor, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSaleResponses(sales)})
}

// ListByStore handles GET /api/stores/:storeId/sales.
func (h *SalesHandler) ListByStore(c *fiber.Ctx) error {
	actor, ok := auth.ClientFromContext(c)
	if !ok {
		return auth.ToDomainError(auth.ErrUnauthenticated)
	}

	sales, err := h.sales.ListStoreSales(c.UserContext(), actor, c.Params("storeId"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSaleResponses(sales)})
}

// Dashboard handles GET /api/stores/:storeId/dashboard.
func (h *SalesHandler) Dashboard(c *fiber.Ctx) error {
	actor, ok := auth.ClientFromContext(c)
	if !ok {
		return auth.ToDomainError(auth.ErrUnauthenticated)
	}

	dashboard, err := h.sales.StoreDashboard(c.UserContext(), actor, c.Params("storeId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dashboard})
}
