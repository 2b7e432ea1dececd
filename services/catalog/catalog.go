// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"fmt"
	"strings"

	"curbside/models"
	"curbside/utils"
)

// CreateTruck publishes a new truck for a vendor with zeroed rating
// aggregates.
func (s *DefaultCatalogService) CreateTruck(ctx context.Context, vendorID string, truck models.Truck) (*models.Truck, error) {
	if strings.TrimSpace(truck.Name) == "" {
		return nil, utils.ValidationError{Reason: "truck name is required"}
	}
	if strings.TrimSpace(truck.Cuisine) == "" {
		return nil, utils.ValidationError{Reason: "truck cuisine is required"}
	}

	truck.VendorID = vendorID
	if _, err := s.TruckRepo.Create(ctx, &truck); err != nil {
		return nil, fmt.Errorf("failed to create truck: %w", err)
	}
	return &truck, nil
}

// UpdateTruck changes descriptive fields on a truck the vendor owns. Rating
// aggregates are not reachable through this path.
func (s *DefaultCatalogService) UpdateTruck(ctx context.Context, vendorID, truckID string, upd models.TruckUpdate) error {
	return s.TruckRepo.UpdateDetails(ctx, truckID, vendorID, upd)
}

func (s *DefaultCatalogService) GetTruck(ctx context.Context, truckID string) (*models.Truck, error) {
	return s.TruckRepo.GetByID(ctx, truckID)
}

func (s *DefaultCatalogService) VendorTrucks(ctx context.Context, vendorID string) ([]models.Truck, error) {
	return s.TruckRepo.GetByVendorID(ctx, vendorID)
}

// AddMenuItem appends an immutable item to the menu of a truck the vendor
// owns. A truck owned by someone else is reported as not found.
func (s *DefaultCatalogService) AddMenuItem(ctx context.Context, vendorID, truckID, name string, price float64) (*models.MenuItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, utils.ValidationError{Reason: "menu item name is required"}
	}
	if price <= 0 {
		return nil, utils.ValidationError{Reason: "menu item price must be positive"}
	}

	truck, err := s.TruckRepo.GetByID(ctx, truckID)
	if err != nil {
		return nil, err
	}
	if truck.VendorID != vendorID {
		return nil, utils.NotFoundError{Resource: "truck", ID: truckID}
	}

	item := &models.MenuItem{
		TruckID: truckID,
		Name:    name,
		Price:   price,
	}
	if _, err := s.MenuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add menu item: %w", err)
	}
	return item, nil
}

func (s *DefaultCatalogService) ListMenu(ctx context.Context, truckID string) ([]models.MenuItem, error) {
	return s.MenuRepo.GetByTruckID(ctx, truckID)
}
