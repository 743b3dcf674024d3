package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func estimateFixture() entities.ConsolidatedEstimate {
	return entities.ConsolidatedEstimate{
		GeneratedAt: time.Now().UTC(),
		GeneratedBy: "pm",
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Walnut credenza", Category: entities.LineItemCategoryMaterial, Quantity: 3, UnitPrice: 1375, TotalPrice: 4125},
		},
		Subtotal:  4125,
		TaxRate:   0.18,
		TaxMode:   entities.TaxModeExclusive,
		TaxAmount: 743,
		Total:     4868,
		Currency:  "INR",
	}
}

func TestEstimateHandler_GenerateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/estimate", h.GenerateEstimate)

		uc.EXPECT().CalculateEstimate(gomock.Any(), "p-1", "").Return(estimateFixture(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["total"] != float64(4868) {
			t.Fatalf("unexpected total: %v", body["total"])
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/estimate", h.GenerateEstimate)

		uc.EXPECT().CalculateEstimate(gomock.Any(), "nope", "").Return(entities.ConsolidatedEstimate{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/nope/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/estimate", h.GenerateEstimate)

		uc.EXPECT().CalculateEstimate(gomock.Any(), "p-1", "").Return(entities.ConsolidatedEstimate{}, errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GenerateEstimateFromCutlist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid part rejected before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/estimate/cutlist", h.GenerateEstimateFromCutlist)

		payload := `{"parts":[{"material_name":"mdf","thickness_mm":18,"width_mm":600,"height_mm":400,"count":0}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/estimate/cutlist", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/estimate/cutlist", h.GenerateEstimateFromCutlist)

		uc.EXPECT().
			CalculateEstimateFromCutlist(gomock.Any(), "p-1", gomock.Any(), "shop").
			DoAndReturn(func(_ any, _ string, in usecase.CutlistInput, _ string) (entities.ConsolidatedEstimate, error) {
				if len(in.Parts) != 1 || in.Parts[0].MaterialName != "birch ply" {
					t.Fatalf("unexpected parts: %+v", in.Parts)
				}
				return estimateFixture(), nil
			})

		payload := `{"parts":[{"material_name":"birch ply","thickness_mm":18,"width_mm":1200,"height_mm":600,"count":4}],"generated_by":"shop"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/estimate/cutlist", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestEstimateHandler_LineItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/estimate/line-items", h.AddLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/estimate/line-items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/estimate/line-items", h.AddLineItem)

		uc.EXPECT().
			AddLineItem(gomock.Any(), "p-1", usecase.LineItemInput{
				Description: "Site visit",
				Category:    entities.LineItemCategoryLabor,
				Quantity:    2,
				Unit:        "visit",
				UnitPrice:   500,
			}).
			Return(estimateFixture(), nil)

		payload := `{"description":"Site visit","category":"labor","quantity":2,"unit":"visit","unit_price":500}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/estimate/line-items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update missing line item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/projects/:project_id/estimate/line-items/:line_item_id", h.UpdateLineItem)

		uc.EXPECT().
			UpdateLineItem(gomock.Any(), "p-1", "nope", gomock.Any()).
			Return(entities.ConsolidatedEstimate{}, usecase.ErrLineItemNotFound)

		payload := `{"description":"x","quantity":1,"unit_price":1}`
		req := httptest.NewRequest(http.MethodPut, "/v1/projects/p-1/estimate/line-items/nope", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remove success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/projects/:project_id/estimate/line-items/:line_item_id", h.RemoveLineItem)

		uc.EXPECT().RemoveLineItem(gomock.Any(), "p-1", "li-1").Return(estimateFixture(), nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/projects/p-1/estimate/line-items/li-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no estimate yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/estimate", h.GetEstimate)

		uc.EXPECT().GetEstimate(gomock.Any(), "p-1").Return(entities.ConsolidatedEstimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
