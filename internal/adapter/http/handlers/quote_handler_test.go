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

func quoteFixture(status entities.QuoteStatus) entities.ClientQuote {
	now := time.Now().UTC()
	return entities.ClientQuote{
		ID:          "q-1",
		ProjectID:   "p-1",
		QuoteNumber: "Q-2026-001",
		ClientName:  "Meera",
		ClientEmail: "meera@example.com",
		Status:      status,
		AccessToken: "tok-1",
		LineItems:   []entities.LineItem{{ID: "li-1", Description: "Credenza", TotalPrice: 4125}},
		Subtotal:    4125,
		TaxAmount:   743,
		Total:       4868,
		Currency:    "INR",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/quotes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no estimate to snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/quotes", h.CreateQuote)

		uc.EXPECT().CreateFromEstimate(gomock.Any(), "p-1", "Meera", "").
			Return(entities.ClientQuote{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/quotes", bytes.NewBufferString(`{"client_name":"Meera"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns the access token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/quotes", h.CreateQuote)

		uc.EXPECT().CreateFromEstimate(gomock.Any(), "p-1", "Meera", "meera@example.com").
			Return(quoteFixture(entities.QuoteStatusDraft), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/quotes",
			bytes.NewBufferString(`{"client_name":"Meera","client_email":"meera@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["access_token"] != "tok-1" {
			t.Fatalf("expected access token in internal view, got %v", body["access_token"])
		}
	})
}

func TestQuoteHandler_SendQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not sendable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "q-1", 0).
			Return(entities.ClientQuote{}, usecase.ErrQuoteNotSendable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with validity override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "q-1", 30).
			Return(quoteFixture(entities.QuoteStatusSent), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/send", bytes.NewBufferString(`{"valid_days":30}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Portal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("view never echoes the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/portal/quotes/:token", h.GetQuoteByToken)

		uc.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(quoteFixture(entities.QuoteStatusViewed), nil)

		req := httptest.NewRequest(http.MethodGet, "/portal/quotes/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, ok := body["access_token"]; ok {
			t.Fatalf("portal view leaked the access token: %v", body)
		}
		if _, ok := body["client_email"]; ok {
			t.Fatalf("portal view leaked the client email: %v", body)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/portal/quotes/:token", h.GetQuoteByToken)

		uc.EXPECT().GetByToken(gomock.Any(), "tok-x").Return(entities.ClientQuote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/portal/quotes/tok-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("approve with comment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/portal/quotes/:token/approve", h.ApproveQuote)

		uc.EXPECT().ApproveByToken(gomock.Any(), "tok-1", "looks good").
			Return(quoteFixture(entities.QuoteStatusApproved), nil)

		req := httptest.NewRequest(http.MethodPost, "/portal/quotes/tok-1/approve", bytes.NewBufferString(`{"comment":"looks good"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("expired quote decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/portal/quotes/:token/reject", h.RejectQuote)

		uc.EXPECT().RejectByToken(gomock.Any(), "tok-1", "").
			Return(entities.ClientQuote{}, usecase.ErrQuoteExpired)

		req := httptest.NewRequest(http.MethodPost, "/portal/quotes/tok-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/portal/quotes/:token/request-revision", h.RequestQuoteRevision)

		uc.EXPECT().RequestRevisionByToken(gomock.Any(), "tok-1", "").
			Return(entities.ClientQuote{}, usecase.ErrQuoteAlreadyDecided)

		req := httptest.NewRequest(http.MethodPost, "/portal/quotes/tok-1/request-revision", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
