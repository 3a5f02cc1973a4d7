package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/salestrack/sales-service/internal/domain"
	"github.com/salestrack/sales-service/internal/repository"
	util "github.com/salestrack/sales-service/pkg/util"
)

// CatalogService backs the admin console: stores, staff, and products.
type CatalogService struct {
	stores   repository.StoreRepository
	staff    repository.StaffRepository
	products repository.ProductRepository
}

// NewCatalogService builds the service.
func NewCatalogService(stores repository.StoreRepository, staff repository.StaffRepository, products repository.ProductRepository) *CatalogService {
	return &CatalogService{stores: stores, staff: staff, products: products}
}

// CreateStore registers a new store.
func (s *CatalogService) CreateStore(ctx context.Context, name string, region *string) (*domain.Store, error) {
	if name == "" {
		return nil, util.NewValidationError("store name required", nil)
	}
	store := &domain.Store{Name: name, Region: region, Active: true}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// UpdateStore applies changes to an existing store.
func (s *CatalogService) UpdateStore(ctx context.Context, store *domain.Store) error {
	if store.Name == "" {
		return util.NewValidationError("store name required", nil)
	}
	if err := s.stores.Update(ctx, store); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("store", map[string]any{"id": store.ID})
		}
		return err
	}
	return nil
}

// ListStores returns all stores.
func (s *CatalogService) ListStores(ctx context.Context) ([]domain.Store, error) {
	return s.stores.List(ctx)
}

// CreateStaffInput carries staff creation fields.
type CreateStaffInput struct {
	Name     string
	RoleCode int
	StoreIDs []string
}

// CreateStaff registers a staff member and mints their tracking id, the sole
// credential for the client flow. Role code 1 is manager; anything else is
// treated as salesperson at token time.
func (s *CatalogService) CreateStaff(ctx context.Context, input CreateStaffInput) (*domain.StaffMember, error) {
	if input.Name == "" {
		return nil, util.NewValidationError("staff name required", nil)
	}
	if input.RoleCode <= 0 {
		input.RoleCode = domain.RoleCodeSalesperson
	}

	staff := &domain.StaffMember{
		TrackingID: uuid.NewString(),
		Name:       input.Name,
		RoleCode:   input.RoleCode,
		Active:     true,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, err
	}

	if len(input.StoreIDs) > 0 {
		if err := s.staff.ReplaceStoreMemberships(ctx, staff.ID, input.StoreIDs); err != nil {
			return nil, err
		}
	}
	return staff, nil
}

// UpdateStaff applies changes and optionally reassigns store memberships.
func (s *CatalogService) UpdateStaff(ctx context.Context, staff *domain.StaffMember, storeIDs []string) error {
	if staff.Name == "" {
		return util.NewValidationError("staff name required", nil)
	}
	if err := s.staff.Update(ctx, staff); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("staff member", map[string]any{"id": staff.ID})
		}
		return err
	}
	if storeIDs != nil {
		return s.staff.ReplaceStoreMemberships(ctx, staff.ID, storeIDs)
	}
	return nil
}

// ListStaff returns staff matching the filter.
func (s *CatalogService) ListStaff(ctx context.Context, filter repository.StaffFilter) ([]domain.StaffMember, error) {
	return s.staff.List(ctx, filter)
}

// CreateProduct registers a catalog product.
func (s *CatalogService) CreateProduct(ctx context.Context, name string, priceCents int64) (*domain.Product, error) {
	if name == "" {
		return nil, util.NewValidationError("product name required", nil)
	}
	if priceCents < 0 {
		return nil, util.NewValidationError("price must not be negative", nil)
	}
	product := &domain.Product{Name: name, PriceCents: priceCents, Active: true}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies changes to an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.Name == "" {
		return util.NewValidationError("product name required", nil)
	}
	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("product", map[string]any{"id": product.ID})
		}
		return err
	}
	return nil
}

// ListProducts returns products, optionally only active ones.
func (s *CatalogService) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	return s.products.List(ctx, activeOnly)
}
