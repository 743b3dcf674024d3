package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier_ops/internal/adapter/http/handlers/mocks"
	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotePaymentHandler_RecordDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/payments", h.RecordDeposit)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unwraps provider_payload envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/payments", h.RecordDeposit)

		uc.EXPECT().
			RecordDeposit(gomock.Any(), "q-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.QuotePayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("usecase received invalid payload: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %v", m)
				}
				return entities.QuotePayment{ID: "pay-1", QuoteID: "q-1", Amount: 4868, Date: time.Now().UTC(), Status: entities.PaymentStatusApproved}, nil
			})

		body := `{"provider_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/payments", h.RecordDeposit)

		uc.EXPECT().RecordDeposit(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.QuotePayment{}, usecase.ErrQuoteNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuotePaymentHandler_GetLatestDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id/payments", h.GetLatestDeposit)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns the most recent payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id/payments", h.GetLatestDeposit)

		older := time.Now().UTC().Add(-time.Hour)
		newer := time.Now().UTC()
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{
			{ID: "pay-1", QuoteID: "q-1", Date: older},
			{ID: "pay-2", QuoteID: "q-1", Date: newer},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["payment_id"] != "pay-2" {
			t.Fatalf("expected latest payment pay-2, got %v", body["payment_id"])
		}
	})
}
