package order_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	orderMock "github.com/thekidkid/clothing-brand/internal/mock/order"
	outboxMock "github.com/thekidkid/clothing-brand/internal/mock/outbox"
	paymentMock "github.com/thekidkid/clothing-brand/internal/mock/payment"
	productMock "github.com/thekidkid/clothing-brand/internal/mock/product"
	"github.com/thekidkid/clothing-brand/internal/order"
	"github.com/thekidkid/clothing-brand/internal/payment"
	"github.com/thekidkid/clothing-brand/internal/shared/database/dbgen"
)

type checkoutFixture struct {
	svc        order.Service
	sqlMock    sqlmock.Sqlmock
	orderRepo  *orderMock.MockRepository
	outboxRepo *outboxMock.MockRepository
	products   *productMock.MockRepository
	paymentSvc *paymentMock.MockService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &checkoutFixture{
		sqlMock:    sqlMock,
		orderRepo:  orderMock.NewMockRepository(ctrl),
		outboxRepo: outboxMock.NewMockRepository(ctrl),
		products:   productMock.NewMockRepository(ctrl),
		paymentSvc: paymentMock.NewMockService(ctrl),
	}
	f.svc = order.NewService(order.Deps{
		DB:         db,
		Repo:       f.orderRepo,
		OutboxRepo: f.outboxRepo,
		Products:   f.products,
		PaymentSvc: f.paymentSvc,
	})
	return f
}

func activeProduct(id uuid.UUID, name, price string) dbgen.Product {
	return dbgen.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: "T-Shirts",
		InStock:  true,
		IsActive: true,
	}
}

func checkoutRequest(productID uuid.UUID, quantity int32, paymentMethod string) order.CheckoutRequest {
	return order.CheckoutRequest{
		Email:         "shopper@example.com",
		PaymentMethod: paymentMethod,
		ShippingAddress: order.ShippingAddress{
			FullName:   "Jordan Doe",
			Line1:      "1 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62701",
			Country:    "US",
		},
		Items: []order.CheckoutItem{
			{ProductID: productID.String(), Quantity: quantity, Size: "M", Color: "Black"},
		},
	}
}

func TestCheckout_CardHappyPath(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	productID := uuid.New()
	orderID := uuid.New()
	sessionID := "sess-1"

	f.products.EXPECT().
		GetByID(ctx, productID).
		Return(activeProduct(productID, "Bear Logo T-Shirt", "39.99"), nil)

	// 2 x 39.99 charged in cents.
	f.paymentSvc.EXPECT().
		CreateIntent(ctx, int64(7998), map[string]string{"session_id": sessionID}).
		Return(&payment.Intent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)

	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()

	f.orderRepo.EXPECT().WithTx(gomock.Any()).Return(f.orderRepo)
	f.outboxRepo.EXPECT().WithTx(gomock.Any()).Return(f.outboxRepo)

	f.orderRepo.EXPECT().
		CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg dbgen.CreateOrderParams) (dbgen.Order, error) {
			assert.Equal(t, sessionID, arg.SessionID)
			assert.Equal(t, "pending", arg.Status)
			assert.Equal(t, "pending", arg.PaymentStatus)
			assert.Equal(t, "card", arg.PaymentMethod)
			assert.Equal(t, "pi_123", arg.TransactionID.String)
			assert.Equal(t, "79.98", arg.TotalAmount)
			return dbgen.Order{
				ID:            orderID,
				SessionID:     arg.SessionID,
				Email:         arg.Email,
				Status:        arg.Status,
				PaymentStatus: arg.PaymentStatus,
				PaymentMethod: arg.PaymentMethod,
				TransactionID: arg.TransactionID,
				TotalAmount:   arg.TotalAmount,
			}, nil
		})

	f.orderRepo.EXPECT().
		CreateOrderItem(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg dbgen.CreateOrderItemParams) error {
			assert.Equal(t, orderID, arg.OrderID)
			assert.Equal(t, "39.99", arg.UnitPrice)
			assert.Equal(t, int32(2), arg.Quantity)
			assert.Equal(t, "79.98", arg.TotalPrice)
			return nil
		})

	f.outboxRepo.EXPECT().
		CreateOutboxEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg dbgen.CreateOutboxEventParams) error {
			assert.Equal(t, "ORDER_PLACED", arg.EventType)
			assert.Equal(t, "ORDER", arg.AggregateType)
			assert.Equal(t, orderID, arg.AggregateID)

			var payload order.OrderPlacedPayload
			require.NoError(t, json.Unmarshal(arg.Payload, &payload))
			assert.Equal(t, sessionID, payload.SessionID)
			assert.Equal(t, orderID.String(), payload.OrderID)
			return nil
		})

	got, err := f.svc.Checkout(ctx, sessionID, checkoutRequest(productID, 2, "card"))

	require.NoError(t, err)
	assert.Equal(t, orderID.String(), got.ID)
	assert.Equal(t, "pi_123_secret", got.ClientSecret)
	assert.InDelta(t, 79.98, got.TotalAmount, 0.0001)
	require.NoError(t, f.sqlMock.ExpectationsWereMet())
}

func TestCheckout_CashOnDeliverySkipsPaymentIntent(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	productID := uuid.New()

	f.products.EXPECT().
		GetByID(ctx, productID).
		Return(activeProduct(productID, "Urban Hoodie", "59.99"), nil)

	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()

	f.orderRepo.EXPECT().WithTx(gomock.Any()).Return(f.orderRepo)
	f.outboxRepo.EXPECT().WithTx(gomock.Any()).Return(f.outboxRepo)

	f.orderRepo.EXPECT().
		CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg dbgen.CreateOrderParams) (dbgen.Order, error) {
			assert.False(t, arg.TransactionID.Valid)
			return dbgen.Order{ID: uuid.New(), PaymentMethod: arg.PaymentMethod, TotalAmount: arg.TotalAmount}, nil
		})
	f.orderRepo.EXPECT().CreateOrderItem(ctx, gomock.Any()).Return(nil)
	f.outboxRepo.EXPECT().CreateOutboxEvent(ctx, gomock.Any()).Return(nil)

	got, err := f.svc.Checkout(ctx, "sess-2", checkoutRequest(productID, 1, "cod"))

	require.NoError(t, err)
	assert.Empty(t, got.ClientSecret)
	require.NoError(t, f.sqlMock.ExpectationsWereMet())
}

func TestCheckout_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("empty item list", func(t *testing.T) {
		f := newCheckoutFixture(t)

		req := checkoutRequest(uuid.New(), 1, "card")
		req.Items = nil

		_, err := f.svc.Checkout(ctx, "sess", req)
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newCheckoutFixture(t)
		productID := uuid.New()

		f.products.EXPECT().GetByID(ctx, productID).Return(dbgen.Product{}, sql.ErrNoRows)

		_, err := f.svc.Checkout(ctx, "sess", checkoutRequest(productID, 1, "card"))
		assert.ErrorIs(t, err, order.ErrProductUnavailable)
	})

	t.Run("inactive product", func(t *testing.T) {
		f := newCheckoutFixture(t)
		productID := uuid.New()

		row := activeProduct(productID, "Retired Tee", "29.99")
		row.IsActive = false
		f.products.EXPECT().GetByID(ctx, productID).Return(row, nil)

		_, err := f.svc.Checkout(ctx, "sess", checkoutRequest(productID, 1, "card"))
		assert.ErrorIs(t, err, order.ErrProductUnavailable)
	})

	t.Run("out of stock product", func(t *testing.T) {
		f := newCheckoutFixture(t)
		productID := uuid.New()

		row := activeProduct(productID, "Sold Out Tee", "29.99")
		row.InStock = false
		f.products.EXPECT().GetByID(ctx, productID).Return(row, nil)

		_, err := f.svc.Checkout(ctx, "sess", checkoutRequest(productID, 1, "card"))
		assert.ErrorIs(t, err, order.ErrProductUnavailable)
	})

	t.Run("malformed product id", func(t *testing.T) {
		f := newCheckoutFixture(t)

		req := checkoutRequest(uuid.New(), 1, "card")
		req.Items[0].ProductID = "not-a-uuid"

		_, err := f.svc.Checkout(ctx, "sess", req)
		assert.ErrorIs(t, err, order.ErrProductUnavailable)
	})
}

func TestCheckout_RollsBackWhenOutboxWriteFails(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	productID := uuid.New()

	f.products.EXPECT().
		GetByID(ctx, productID).
		Return(activeProduct(productID, "Bear Logo T-Shirt", "39.99"), nil)

	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectRollback()

	f.orderRepo.EXPECT().WithTx(gomock.Any()).Return(f.orderRepo)
	f.outboxRepo.EXPECT().WithTx(gomock.Any()).Return(f.outboxRepo)

	f.orderRepo.EXPECT().
		CreateOrder(ctx, gomock.Any()).
		Return(dbgen.Order{ID: uuid.New()}, nil)
	f.orderRepo.EXPECT().CreateOrderItem(ctx, gomock.Any()).Return(nil)
	f.outboxRepo.EXPECT().CreateOutboxEvent(ctx, gomock.Any()).Return(assert.AnError)

	_, err := f.svc.Checkout(ctx, "sess", checkoutRequest(productID, 1, "cod"))

	assert.ErrorIs(t, err, order.ErrOrderFailed)
	require.NoError(t, f.sqlMock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	orderID := uuid.New()

	t.Run("valid transition", func(t *testing.T) {
		f.orderRepo.EXPECT().
			UpdateStatus(ctx, orderID, "shipped").
			Return(dbgen.Order{ID: orderID, Status: "shipped", TotalAmount: "10.00"}, nil)

		got, err := f.svc.UpdateStatus(ctx, orderID.String(), "shipped")

		require.NoError(t, err)
		assert.Equal(t, "shipped", got.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(ctx, orderID.String(), "SHIPPED")
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})

	t.Run("missing order", func(t *testing.T) {
		f.orderRepo.EXPECT().
			UpdateStatus(ctx, orderID, "cancelled").
			Return(dbgen.Order{}, sql.ErrNoRows)

		_, err := f.svc.UpdateStatus(ctx, orderID.String(), "cancelled")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(ctx, "bogus", "shipped")
		assert.ErrorIs(t, err, order.ErrInvalidOrderID)
	})
}

func TestUpdatePaymentStatusByTransaction(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	t.Run("marks the matching order", func(t *testing.T) {
		f.orderRepo.EXPECT().
			UpdatePaymentStatusByTransaction(ctx, "pi_123", "completed").
			Return(dbgen.Order{ID: uuid.New(), PaymentStatus: "completed", TotalAmount: "10.00"}, nil)

		assert.NoError(t, f.svc.UpdatePaymentStatusByTransaction(ctx, "pi_123", "completed"))
	})

	t.Run("unknown transaction id", func(t *testing.T) {
		f.orderRepo.EXPECT().
			UpdatePaymentStatusByTransaction(ctx, "pi_missing", "failed").
			Return(dbgen.Order{}, sql.ErrNoRows)

		assert.ErrorIs(t, f.svc.UpdatePaymentStatusByTransaction(ctx, "pi_missing", "failed"), order.ErrOrderNotFound)
	})

	t.Run("blank transaction id never hits the repo", func(t *testing.T) {
		assert.ErrorIs(t, f.svc.UpdatePaymentStatusByTransaction(ctx, "", "completed"), order.ErrOrderNotFound)
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	orderID := uuid.New()
	productID := uuid.New()

	f.orderRepo.EXPECT().
		GetByID(ctx, orderID).
		Return(dbgen.Order{ID: orderID, Status: "pending", TotalAmount: "39.99"}, nil)
	f.orderRepo.EXPECT().
		GetItems(ctx, orderID).
		Return([]dbgen.OrderItem{
			{ID: uuid.New(), OrderID: orderID, ProductID: productID, NameSnapshot: "Bear Logo T-Shirt", UnitPrice: "39.99", Quantity: 1, TotalPrice: "39.99"},
		}, nil)

	got, err := f.svc.Detail(ctx, orderID.String())

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Bear Logo T-Shirt", got.Items[0].NameSnapshot)
	assert.InDelta(t, 39.99, got.TotalAmount, 0.0001)
}
