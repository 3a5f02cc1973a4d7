package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/salestrack/sales-service/internal/api/dto"
	"github.com/salestrack/sales-service/internal/domain"
	"github.com/salestrack/sales-service/internal/repository"
	"github.com/salestrack/sales-service/internal/service"
)

// CatalogHandler exposes the admin console CRUD endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// CreateStore handles POST /api/admin/stores.
func (h *CatalogHandler) CreateStore(c *fiber.Ctx) error {
	var req dto.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	store, err := h.catalog.CreateStore(c.UserContext(), req.Name, req.Region)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewStoreResponse(store)})
}

// UpdateStore handles PUT /api/admin/stores/:id.
func (h *CatalogHandler) UpdateStore(c *fiber.Ctx) error {
	var req dto.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	store := &domain.Store{
		ID:     c.Params("id"),
		Name:   req.Name,
		Region: req.Region,
		Active: true,
	}
	if req.Active != nil {
		store.Active = *req.Active
	}
	if err := h.catalog.UpdateStore(c.UserContext(), store); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStoreResponse(store)})
}

// ListStores handles GET /api/admin/stores.
func (h *CatalogHandler) ListStores(c *fiber.Ctx) error {
	stores, err := h.catalog.ListStores(c.UserContext())
	if err != nil {
		return err
	}
	result := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		result = append(result, dto.NewStoreResponse(&stores[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

// CreateStaff handles POST /api/admin/staff.
func (h *CatalogHandler) CreateStaff(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	staff, err := h.catalog.CreateStaff(c.UserContext(), service.CreateStaffInput{
		Name:     req.Name,
		RoleCode: req.RoleCode,
		StoreIDs: req.StoreIDs,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewStaffResponse(staff)})
}

// UpdateStaff handles PUT /api/admin/staff/:id.
func (h *CatalogHandler) UpdateStaff(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	staff := &domain.StaffMember{
		ID:       c.Params("id"),
		Name:     req.Name,
		RoleCode: req.RoleCode,
		Active:   true,
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}
	if err := h.catalog.UpdateStaff(c.UserContext(), staff, req.StoreIDs); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStaffResponse(staff)})
}

// ListStaff handles GET /api/admin/staff.
func (h *CatalogHandler) ListStaff(c *fiber.Ctx) error {
	filter := repository.StaffFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if storeID := c.Query("store_id"); storeID != "" {
		filter.StoreID = &storeID
	}

	staff, err := h.catalog.ListStaff(c.UserContext(), filter)
	if err != nil {
		return err
	}
	result := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		result = append(result, dto.NewStaffResponse(&staff[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

// CreateProduct handles POST /api/admin/products.
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.catalog.CreateProduct(c.UserContext(), req.Name, req.PriceCents)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewProductResponse(product)})
}

// UpdateProduct handles PUT /api/admin/products/:id.
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	product := &domain.Product{
		ID:         c.Params("id"),
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Active:     true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if err := h.catalog.UpdateProduct(c.UserContext(), product); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProductResponse(product)})
}

// ListProducts handles GET /api/admin/products.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.catalog.ListProducts(c.UserContext(), c.QueryBool("active_only", false))
	if err != nil {
		return err
	}
	result := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, dto.NewProductResponse(&products[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}
