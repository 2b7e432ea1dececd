package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"curbside/models"
	"curbside/services/order"
	"curbside/utils"
)

// MockOrderRepository is a mock implementation of orderRepo.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *models.Order) (string, error) {
	args := m.Called(ctx, o)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, truckID, orderID string) (*models.Order, error) {
	args := m.Called(ctx, truckID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, truckID, orderID string, from, to models.OrderStatus) error {
	args := m.Called(ctx, truckID, orderID, from, to)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

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

func newService() (*order.DefaultOrderService, *MockOrderRepository, *MockTruckRepository) {
	orders := new(MockOrderRepository)
	trucks := new(MockTruckRepository)
	return &order.DefaultOrderService{Repo: orders, TruckRepo: trucks}, orders, trucks
}

func TestCreateOrder_Success(t *testing.T) {
	svc, orders, trucks := newService()
	ctx := context.Background()

	trucks.On("GetByID", ctx, "truck-1").
		Return(&models.Truck{ID: "truck-1", VendorID: "vendor-1"}, nil).Once()
	orders.On("Create", ctx, mock.AnythingOfType("*models.Order")).
		Return("order-1", nil).Once()

	ord, err := svc.CreateOrder(ctx, models.OrderInput{
		TruckID: "truck-1",
		UserID:  "user-1",
		Items:   []models.OrderItem{{Name: "Burger", UnitPrice: 10, Quantity: 2}},
		Total:   20,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OrderPending, ord.Status, "status must be forced to pending")
	assert.Equal(t, "vendor-1", ord.VendorID, "vendor must be denormalized from the truck")
	assert.Equal(t, "user-1", ord.UserID)
	orders.AssertExpectations(t)
	trucks.AssertExpectations(t)
}

func TestCreateOrder_TotalMismatch(t *testing.T) {
	svc, orders, trucks := newService()

	_, err := svc.CreateOrder(context.Background(), models.OrderInput{
		TruckID: "truck-1",
		UserID:  "user-1",
		Items:   []models.OrderItem{{Name: "Burger", UnitPrice: 10, Quantity: 2}},
		Total:   15,
	})

	var ve utils.ValidationError
	assert.ErrorAs(t, err, &ve)
	trucks.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_RejectsBadLineItems(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	cases := []struct {
		name  string
		input models.OrderInput
	}{
		{
			name:  "empty line items",
			input: models.OrderInput{TruckID: "t", UserID: "u", Total: 10},
		},
		{
			name: "zero quantity",
			input: models.OrderInput{
				TruckID: "t", UserID: "u",
				Items: []models.OrderItem{{Name: "Taco", UnitPrice: 5, Quantity: 0}},
				Total: 0,
			},
		},
		{
			name: "negative unit price",
			input: models.OrderInput{
				TruckID: "t", UserID: "u",
				Items: []models.OrderItem{{Name: "Taco", UnitPrice: -5, Quantity: 1}},
				Total: -5,
			},
		},
		{
			name: "zero total",
			input: models.OrderInput{
				TruckID: "t", UserID: "u",
				Items: []models.OrderItem{{Name: "Water", UnitPrice: 0, Quantity: 2}},
				Total: 0,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, tc.input)
			var ve utils.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestCreateOrder_TruckNotFound(t *testing.T) {
	svc, orders, trucks := newService()
	ctx := context.Background()

	trucks.On("GetByID", ctx, "gone").
		Return(nil, utils.NotFoundError{Resource: "truck", ID: "gone"}).Once()

	_, err := svc.CreateOrder(ctx, models.OrderInput{
		TruckID: "gone",
		UserID:  "user-1",
		Items:   []models.OrderItem{{Name: "Burger", UnitPrice: 10, Quantity: 1}},
		Total:   10,
	})

	assert.True(t, utils.IsNotFound(err))
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSetStatus_LegalTransition(t *testing.T) {
	svc, orders, _ := newService()
	ctx := context.Background()

	orders.On("GetByID", ctx, "truck-1", "order-1").
		Return(&models.Order{ID: "order-1", TruckID: "truck-1", VendorID: "vendor-1", Status: models.OrderPending}, nil).Once()
	orders.On("UpdateStatus", ctx, "truck-1", "order-1", models.OrderPending, models.OrderRejected).
		Return(nil).Once()

	err := svc.SetStatus(ctx, "vendor-1", "truck-1", "order-1", models.OrderRejected)

	assert.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestSetStatus_SkippingStateFails(t *testing.T) {
	svc, orders, _ := newService()
	ctx := context.Background()

	orders.On("GetByID", ctx, "truck-1", "order-1").
		Return(&models.Order{ID: "order-1", TruckID: "truck-1", VendorID: "vendor-1", Status: models.OrderPending}, nil).Once()

	err := svc.SetStatus(ctx, "vendor-1", "truck-1", "order-1", models.OrderReady)

	var it utils.IllegalTransitionError
	assert.ErrorAs(t, err, &it)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatus_TerminalStateFrozen(t *testing.T) {
	svc, orders, _ := newService()
	ctx := context.Background()

	orders.On("GetByID", ctx, "truck-1", "order-1").
		Return(&models.Order{ID: "order-1", TruckID: "truck-1", VendorID: "vendor-1", Status: models.OrderRejected}, nil).Once()

	err := svc.SetStatus(ctx, "vendor-1", "truck-1", "order-1", models.OrderAccepted)

	var it utils.IllegalTransitionError
	assert.ErrorAs(t, err, &it)
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	svc, orders, _ := newService()

	err := svc.SetStatus(context.Background(), "vendor-1", "truck-1", "order-1", models.OrderStatus("shipped"))

	var ve utils.ValidationError
	assert.ErrorAs(t, err, &ve)
	orders.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatus_WrongVendor(t *testing.T) {
	svc, orders, _ := newService()
	ctx := context.Background()

	orders.On("GetByID", ctx, "truck-1", "order-1").
		Return(&models.Order{ID: "order-1", TruckID: "truck-1", VendorID: "vendor-1", Status: models.OrderPending}, nil).Once()

	err := svc.SetStatus(ctx, "someone-else", "truck-1", "order-1", models.OrderAccepted)

	assert.True(t, utils.IsNotFound(err))
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
