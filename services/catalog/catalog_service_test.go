package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"curbside/models"
	"curbside/services/catalog"
	"curbside/utils"
)

// MockTruckRepository is a mock implementation of truckRepo.TruckRepository
type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) Create(ctx context.Context, t *models.Truck) (string, error) {
	args := m.Called(ctx, t)
	return args.String(0), args.Error(1)
}

func (m *MockTruckRepository) GetByID(ctx context.Context, id string) (*models.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetByVendorID(ctx context.Context, vendorID string) ([]models.Truck, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Truck), args.Error(1)
}

func (m *MockTruckRepository) UpdateDetails(ctx context.Context, id, vendorID string, upd models.TruckUpdate) error {
	args := m.Called(ctx, id, vendorID, upd)
	return args.Error(0)
}

func (m *MockTruckRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockMenuRepository is a mock implementation of menuRepo.MenuRepository
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, item *models.MenuItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *MockMenuRepository) GetByTruckID(ctx context.Context, truckID string) ([]models.MenuItem, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newCatalog() (*catalog.DefaultCatalogService, *MockTruckRepository, *MockMenuRepository) {
	trucks := new(MockTruckRepository)
	menus := new(MockMenuRepository)
	return &catalog.DefaultCatalogService{TruckRepo: trucks, MenuRepo: menus}, trucks, menus
}

func TestCreateTruck_SetsOwner(t *testing.T) {
	svc, trucks, _ := newCatalog()
	ctx := context.Background()

	trucks.On("Create", ctx, mock.AnythingOfType("*models.Truck")).
		Return("truck-1", nil).Once()

	truck, err := svc.CreateTruck(ctx, "vendor-1", models.Truck{Name: "Taco Cart", Cuisine: "Mexican"})

	assert.NoError(t, err)
	assert.Equal(t, "vendor-1", truck.VendorID)
	trucks.AssertExpectations(t)
}

func TestCreateTruck_RequiresNameAndCuisine(t *testing.T) {
	svc, trucks, _ := newCatalog()
	ctx := context.Background()

	var ve utils.ValidationError
	_, err := svc.CreateTruck(ctx, "vendor-1", models.Truck{Cuisine: "Mexican"})
	assert.ErrorAs(t, err, &ve)

	_, err = svc.CreateTruck(ctx, "vendor-1", models.Truck{Name: "Taco Cart"})
	assert.ErrorAs(t, err, &ve)

	trucks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddMenuItem_Success(t *testing.T) {
	svc, trucks, menus := newCatalog()
	ctx := context.Background()

	trucks.On("GetByID", ctx, "truck-1").
		Return(&models.Truck{ID: "truck-1", VendorID: "vendor-1"}, nil).Once()
	menus.On("Create", ctx, mock.AnythingOfType("*models.MenuItem")).
		Return("item-1", nil).Once()

	item, err := svc.AddMenuItem(ctx, "vendor-1", "truck-1", "Burger", 9.5)

	assert.NoError(t, err)
	assert.Equal(t, "truck-1", item.TruckID)
	assert.Equal(t, 9.5, item.Price)
	menus.AssertExpectations(t)
}

func TestAddMenuItem_RejectsNonPositivePrice(t *testing.T) {
	svc, trucks, _ := newCatalog()

	_, err := svc.AddMenuItem(context.Background(), "vendor-1", "truck-1", "Burger", 0)

	var ve utils.ValidationError
	assert.ErrorAs(t, err, &ve)
	trucks.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAddMenuItem_OtherVendorsTruckHidden(t *testing.T) {
	svc, trucks, menus := newCatalog()
	ctx := context.Background()

	trucks.On("GetByID", ctx, "truck-1").
		Return(&models.Truck{ID: "truck-1", VendorID: "vendor-1"}, nil).Once()

	_, err := svc.AddMenuItem(ctx, "someone-else", "truck-1", "Burger", 9.5)

	assert.True(t, utils.IsNotFound(err))
	menus.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
