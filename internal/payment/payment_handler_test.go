package payment_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	paymentMock "github.com/thekidkid/clothing-brand/internal/mock/payment"
	"github.com/thekidkid/clothing-brand/internal/payment"
)

type fakeOrderUpdater struct {
	transactionID string
	paymentStatus string
	err           error
	calls         int
}

func (f *fakeOrderUpdater) UpdatePaymentStatusByTransaction(_ context.Context, transactionID, paymentStatus string) error {
	f.calls++
	f.transactionID = transactionID
	f.paymentStatus = paymentStatus
	return f.err
}

func newPaymentRouter(t *testing.T, svc payment.Service, orders payment.OrderUpdater) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := payment.NewHandler(svc, orders)

	r := gin.New()
	r.POST("/payments/intent", h.CreateIntent)
	r.POST("/payments/webhook", h.HandleWebhook)
	return r
}

func TestCreateIntentEndpoint(t *testing.T) {
	t.Run("rounds the amount to cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := paymentMock.NewMockService(ctrl)
		orders := &fakeOrderUpdater{}
		r := newPaymentRouter(t, svc, orders)

		svc.EXPECT().
			CreateIntent(gomock.Any(), int64(7998), gomock.Nil()).
			Return(&payment.Intent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payments/intent", bytes.NewBufferString(`{"amount":79.98}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "pi_123_secret")
	})

	t.Run("non-positive amount fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := paymentMock.NewMockService(ctrl)
		r := newPaymentRouter(t, svc, &fakeOrderUpdater{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payments/intent", bytes.NewBufferString(`{"amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWebhookEndpoint(t *testing.T) {
	postWebhook := func(r *gin.Engine, body, signature string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBufferString(body))
		req.Header.Set("Stripe-Signature", signature)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("succeeded event completes the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := paymentMock.NewMockService(ctrl)
		orders := &fakeOrderUpdater{}
		r := newPaymentRouter(t, svc, orders)

		svc.EXPECT().
			VerifyWebhook(gomock.Any(), "sig").
			Return(payment.WebhookEvent{Type: payment.EventPaymentSucceeded, IntentID: "pi_123"}, nil)

		w := postWebhook(r, `{}`, "sig")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"received":true`)
		assert.Equal(t, "pi_123", orders.transactionID)
		assert.Equal(t, "completed", orders.paymentStatus)
	})

	t.Run("failed event marks the order failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := paymentMock.NewMockService(ctrl)
		orders := &fakeOrderUpdater{}
		r := newPaymentRouter(t, svc, orders)

		svc.EXPECT().
			VerifyWebhook(gomock.Any(), "sig").
			Return(payment.WebhookEvent{Type: payment.EventPaymentFailed, IntentID: "pi_456"}, nil)

		w := postWebhook(r, `{}`, "sig")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "failed", orders.paymentStatus)
	})

	t.Run("unknown event types are acknowledged untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := paymentMock.NewMockService(ctrl)
		orders := &fakeOrderUpdater{}
		r := newPaymentRouter(t, svc, orders)

		svc.EXPECT().
			VerifyWebhook(gomock.Any(), "sig").
			Return(payment.WebhookEvent{Type: "charge.refunded", IntentID: "pi_789"}, nil)

		w := postWebhook(r, `{}`, "sig")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, orders.calls)
	})

	t.Run("bad signature is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := paymentMock.NewMockService(ctrl)
		orders := &fakeOrderUpdater{}
		r := newPaymentRouter(t, svc, orders)

		svc.EXPECT().
			VerifyWebhook(gomock.Any(), "bad").
			Return(payment.WebhookEvent{}, payment.ErrInvalidSignature)

		w := postWebhook(r, `{}`, "bad")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, orders.calls)
	})
}
