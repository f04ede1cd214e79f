package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/email"
	"github.com/thekidkid/clothing-brand/internal/outbox"
	"github.com/thekidkid/clothing-brand/internal/payment"
	"github.com/thekidkid/clothing-brand/internal/shared/database/dbgen"
	"github.com/thekidkid/clothing-brand/internal/shared/database/helper"
)

// ProductSource is the slice of the product repository checkout needs to
// price items server-side. Client-submitted prices are never trusted.
type ProductSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Product, error)
}

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (OrderResponse, error)
	List(ctx context.Context) ([]OrderResponse, error)
	ListBySession(ctx context.Context, sessionID string) ([]OrderResponse, error)
	Detail(ctx context.Context, orderID string) (OrderResponse, error)
	UpdateStatus(ctx context.Context, orderID, nextStatus string) (OrderResponse, error)
	UpdatePaymentStatusByTransaction(ctx context.Context, transactionID, paymentStatus string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	products   ProductSource
	paymentSvc payment.Service
	emailSvc   email.Service
	logger     *zap.Logger
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Products   ProductSource
	PaymentSvc payment.Service
	EmailSvc   email.Service
	Logger     *zap.Logger
}

var orderStatuses = map[string]struct{}{
	"pending":    {},
	"processing": {},
	"shipped":    {},
	"delivered":  {},
	"cancelled":  {},
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Products == nil {
		panic("product source cannot be nil")
	}
	if deps.PaymentSvc == nil {
		panic("payment service cannot be nil")
	}
	if deps.EmailSvc == nil {
		deps.EmailSvc = email.NewNoopService()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		products:   deps.Products,
		paymentSvc: deps.PaymentSvc,
		emailSvc:   deps.EmailSvc,
		logger:     deps.Logger,
	}
}

type pricedItem struct {
	productID uuid.UUID
	name      string
	unitPrice decimal.Decimal
	quantity  int32
}

func (s *service) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (OrderResponse, error) {
	logger := s.logger.With(zap.String("session_id", sessionID))

	if len(req.Items) == 0 {
		return OrderResponse{}, ErrEmptyOrder
	}

	// 1. Price every line from the catalog, never from the request.
	priced := make([]pricedItem, 0, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return OrderResponse{}, ErrProductUnavailable
		}

		row, err := s.products.GetByID(ctx, pid)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return OrderResponse{}, ErrProductUnavailable
			}
			logger.Error("failed to load product for checkout",
				zap.String("product_id", item.ProductID), zap.Error(err))
			return OrderResponse{}, ErrOrderFailed
		}
		if !row.IsActive || !row.InStock {
			return OrderResponse{}, ErrProductUnavailable
		}

		unit, err := decimal.NewFromString(row.Price)
		if err != nil {
			logger.Error("unparseable product price",
				zap.String("product_id", item.ProductID), zap.String("price", row.Price))
			return OrderResponse{}, ErrOrderFailed
		}

		priced = append(priced, pricedItem{
			productID: pid,
			name:      row.Name,
			unitPrice: unit,
			quantity:  item.Quantity,
		})
		total = total.Add(unit.Mul(decimal.NewFromInt32(item.Quantity)))
	}

	// 2. Create the payment intent up front so its id lands in the order row.
	var transactionID, clientSecret string
	if req.PaymentMethod == "card" {
		amountCents := total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		intent, err := s.paymentSvc.CreateIntent(ctx, amountCents, map[string]string{
			"session_id": sessionID,
		})
		if err != nil {
			logger.Error("failed to create payment intent", zap.Error(err))
			return OrderResponse{}, err
		}
		transactionID = intent.ID
		clientSecret = intent.ClientSecret
	}

	addressSnapshot, _ := json.Marshal(req.ShippingAddress)

	// 3. Order, items and outbox event in one transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
			logger.Warn("checkout transaction rolled back")
		}
	}()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.CreateOrder(ctx, dbgen.CreateOrderParams{
		SessionID:       sessionID,
		Email:           helper.StringToNull(&req.Email),
		Status:          "pending",
		PaymentStatus:   "pending",
		PaymentMethod:   req.PaymentMethod,
		TransactionID:   helper.StringToNull(&transactionID),
		ShippingAddress: addressSnapshot,
		TotalAmount:     total.StringFixed(2),
	})
	if err != nil {
		logger.Error("failed to create order record", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	for _, item := range priced {
		err = qtx.CreateOrderItem(ctx, dbgen.CreateOrderItemParams{
			OrderID:      o.ID,
			ProductID:    item.productID,
			NameSnapshot: item.name,
			UnitPrice:    item.unitPrice.StringFixed(2),
			Quantity:     item.quantity,
			TotalPrice:   item.unitPrice.Mul(decimal.NewFromInt32(item.quantity)).StringFixed(2),
		})
		if err != nil {
			logger.Error("failed to create order item",
				zap.String("product_id", item.productID.String()), zap.Error(err))
			return OrderResponse{}, ErrOrderFailed
		}
	}

	payload, _ := json.Marshal(map[string]string{
		"session_id": sessionID,
		"order_id":   o.ID.String(),
	})

	err = s.outboxRepo.WithTx(tx).CreateOutboxEvent(ctx, dbgen.CreateOutboxEventParams{
		ID:            uuid.New(),
		AggregateType: "ORDER",
		AggregateID:   o.ID,
		EventType:     "ORDER_PLACED",
		Payload:       payload,
	})
	if err != nil {
		logger.Error("failed to create outbox event", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit transaction", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}
	committed = true

	logger.Info("checkout success",
		zap.String("order_id", o.ID.String()),
		zap.String("total", total.StringFixed(2)),
	)

	// Confirmation email is best-effort and never blocks the checkout reply.
	if req.Email != "" {
		totalFloat, _ := total.Float64()
		go func(to, orderID string, amount float64) {
			emailCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()
			if err := s.emailSvc.SendOrderConfirmation(emailCtx, to, orderID, amount); err != nil {
				s.logger.Warn("failed to send order confirmation",
					zap.String("order_id", orderID), zap.Error(err))
			}
		}(req.Email, o.ID.String(), totalFloat)
	}

	res := s.mapOrderToResponse(o, nil)
	res.ClientSecret = clientSecret
	return res, nil
}

func (s *service) List(ctx context.Context) ([]OrderResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list orders", zap.Error(err))
		return nil, ErrOrderFailed
	}

	res := make([]OrderResponse, 0, len(rows))
	for _, o := range rows {
		res = append(res, s.mapOrderToResponse(o, nil))
	}
	return res, nil
}

func (s *service) ListBySession(ctx context.Context, sessionID string) ([]OrderResponse, error) {
	rows, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to list session orders",
			zap.String("session_id", sessionID), zap.Error(err))
		return nil, ErrOrderFailed
	}

	res := make([]OrderResponse, 0, len(rows))
	for _, o := range rows {
		res = append(res, s.mapOrderToResponse(o, nil))
	}
	return res, nil
}

func (s *service) Detail(ctx context.Context, orderID string) (OrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}

	o, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, ErrOrderNotFound
		}
		return OrderResponse{}, ErrOrderFailed
	}

	items, err := s.repo.GetItems(ctx, oid)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	return s.mapOrderToResponse(o, items), nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID, nextStatus string) (OrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}
	if _, ok := orderStatuses[nextStatus]; !ok {
		return OrderResponse{}, ErrInvalidStatus
	}

	o, err := s.repo.UpdateStatus(ctx, oid, nextStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, ErrOrderNotFound
		}
		s.logger.Error("failed to update order status",
			zap.String("order_id", orderID), zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	s.logger.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", nextStatus),
	)

	return s.mapOrderToResponse(o, nil), nil
}

func (s *service) UpdatePaymentStatusByTransaction(ctx context.Context, transactionID, paymentStatus string) error {
	if transactionID == "" {
		return ErrOrderNotFound
	}

	o, err := s.repo.UpdatePaymentStatusByTransaction(ctx, transactionID, paymentStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		s.logger.Error("failed to update payment status",
			zap.String("transaction_id", transactionID), zap.Error(err))
		return ErrOrderFailed
	}

	s.logger.Info("payment status updated",
		zap.String("order_id", o.ID.String()),
		zap.String("payment_status", paymentStatus),
	)

	return nil
}

func (s *service) mapOrderToResponse(o dbgen.Order, items []dbgen.OrderItem) OrderResponse {
	res := OrderResponse{
		ID:              o.ID.String(),
		SessionID:       o.SessionID,
		Email:           helper.NullStringValue(o.Email),
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		PaymentMethod:   o.PaymentMethod,
		TransactionID:   helper.NullStringValue(o.TransactionID),
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     helper.NumericToFloat64(o.TotalAmount),
		PlacedAt:        o.PlacedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	for _, item := range items {
		res.Items = append(res.Items, OrderItemResponse{
			ID:           item.ID.String(),
			ProductID:    item.ProductID.String(),
			NameSnapshot: item.NameSnapshot,
			UnitPrice:    helper.NumericToFloat64(item.UnitPrice),
			Quantity:     item.Quantity,
			Subtotal:     helper.NumericToFloat64(item.TotalPrice),
		})
	}

	return res
}
