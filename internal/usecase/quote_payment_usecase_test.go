package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"atelier_ops/internal/domain/entities"
	mock_interfaces "atelier_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedQuote() entities.ClientQuote {
	return entities.ClientQuote{
		ID:          "q-1",
		ProjectID:   "p-1",
		QuoteNumber: "Q-2026-001",
		Status:      entities.QuoteStatusApproved,
		Total:       4868,
	}
}

func TestQuotePaymentUseCase_RecordDeposit(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.RecordDeposit(context.Background(), "  ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, nil, gateway)

		_, err := uc.RecordDeposit(context.Background(), "q-1", json.RawMessage(`{broken`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("quote must be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quotes, gateway)

		q := approvedQuote()
		q.Status = entities.QuoteStatusSent
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.RecordDeposit(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})

	t.Run("amount comes from the stored quote, not the payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway received invalid payload: %v", err)
				}
				if m["transaction_amount"] != float64(4868) {
					t.Fatalf("expected forced amount 4868, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "q-1" {
					t.Fatalf("expected external_reference q-1, got %v", m["external_reference"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				return p, nil
			},
		)

		p, err := uc.RecordDeposit(context.Background(), "q-1",
			json.RawMessage(`{"transaction_amount":1,"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "pay-1" || p.QuoteID != "q-1" || p.Amount != 4868 {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved status, got %s", p.Status)
		}
	})

	t.Run("unauthorized gateway error is mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.RecordDeposit(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quotes, gateway)

		q := approvedQuote()
		q.Status = entities.QuoteStatusSent // mock mode also relaxes the status gate
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				return p, nil
			},
		)

		p, err := uc.RecordDeposit(context.Background(), "q-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" || p.Amount != 4868 {
			t.Fatalf("unexpected mock payment: %+v", p)
		}
	})
}

func TestQuotePaymentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.QuotePayment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-x")
		if !errors.Is(err, ErrQuotePaymentNotFound) {
			t.Fatalf("expected ErrQuotePaymentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").
			Return(entities.QuotePayment{ID: "pay-1", QuoteID: "q-1", Amount: 4868}, nil)

		p, err := uc.GetByID(context.Background(), "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.QuoteID != "q-1" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})
}

func TestQuotePaymentUseCase_ListByQuoteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
	uc := NewQuotePaymentUseCase(repo, nil, nil)

	repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").
		Return([]entities.QuotePayment{{ID: "pay-1"}, {ID: "pay-2"}}, nil)

	payments, err := uc.ListByQuoteID(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
}
