// File: services/catalog/interface.go
package catalog

import (
	"context"

	menuRepo "curbside/database/repository/menu"
	truckRepo "curbside/database/repository/truck"
	"curbside/models"
)

// CatalogService manages the vendor-owned side of the catalog: trucks and
// their menus. Live views of both are served by the feed engine, not here.
type CatalogService interface {
	CreateTruck(ctx context.Context, vendorID string, truck models.Truck) (*models.Truck, error)
	UpdateTruck(ctx context.Context, vendorID, truckID string, upd models.TruckUpdate) error
	GetTruck(ctx context.Context, truckID string) (*models.Truck, error)
	VendorTrucks(ctx context.Context, vendorID string) ([]models.Truck, error)
	AddMenuItem(ctx context.Context, vendorID, truckID, name string, price float64) (*models.MenuItem, error)
	ListMenu(ctx context.Context, truckID string) ([]models.MenuItem, error)
}

type DefaultCatalogService struct {
	TruckRepo truckRepo.TruckRepository
	MenuRepo  menuRepo.MenuRepository
}
