package order

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/thekidkid/clothing-brand/internal/shared/database/dbgen"
)

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository
	CreateOrder(ctx context.Context, arg dbgen.CreateOrderParams) (dbgen.Order, error)
	CreateOrderItem(ctx context.Context, arg dbgen.CreateOrderItemParams) error
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]dbgen.OrderItem, error)
	List(ctx context.Context) ([]dbgen.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]dbgen.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (dbgen.Order, error)
	UpdatePaymentStatusByTransaction(ctx context.Context, transactionID, paymentStatus string) (dbgen.Order, error)
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &repository{
			queries: r.queries.WithTx(sqlTx),
		}
	}

	return r
}

func (r *repository) CreateOrder(ctx context.Context, arg dbgen.CreateOrderParams) (dbgen.Order, error) {
	return r.queries.CreateOrder(ctx, arg)
}

func (r *repository) CreateOrderItem(ctx context.Context, arg dbgen.CreateOrderItemParams) error {
	return r.queries.CreateOrderItem(ctx, arg)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.Order, error) {
	return r.queries.GetOrderByID(ctx, id)
}

func (r *repository) GetItems(ctx context.Context, orderID uuid.UUID) ([]dbgen.OrderItem, error) {
	return r.queries.ListOrderItems(ctx, orderID)
}

func (r *repository) List(ctx context.Context) ([]dbgen.Order, error) {
	return r.queries.ListOrders(ctx)
}

func (r *repository) ListBySession(ctx context.Context, sessionID string) ([]dbgen.Order, error) {
	return r.queries.ListOrdersBySession(ctx, sessionID)
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (dbgen.Order, error) {
	return r.queries.UpdateOrderStatus(ctx, dbgen.UpdateOrderStatusParams{
		ID:     id,
		Status: status,
	})
}

func (r *repository) UpdatePaymentStatusByTransaction(ctx context.Context, transactionID, paymentStatus string) (dbgen.Order, error) {
	return r.queries.UpdateOrderPaymentStatusByTransaction(ctx, dbgen.UpdateOrderPaymentStatusByTransactionParams{
		TransactionID: sql.NullString{String: transactionID, Valid: transactionID != ""},
		PaymentStatus: paymentStatus,
	})
}
