package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	request "atelier_ops/internal/adapter/http/dto/request"
	response "atelier_ops/internal/adapter/http/dto/response"
	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase"
	"atelier_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles both the internal quote-management routes and the
// token-addressed client portal routes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	projectID := c.Param("project_id")

	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.CreateFromEstimate(c.Request.Context(), projectID, payload.ClientName, payload.ClientEmail)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClientQuote(q))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientQuotes(quotes))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")

	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Send(c.Request.Context(), quoteID, payload.ValidDays)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] sent quote_id=%s", quoteID)

	c.JSON(http.StatusOK, response.FromClientQuote(q))
}

// GetQuoteByToken serves the client portal view. The access token is the only
// credential; the response never echoes it back.
func (h *QuoteHandler) GetQuoteByToken(c *gin.Context) {
	q, err := h.usecase.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientQuoteForPortal(q))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.decideByToken(c, h.usecase.ApproveByToken)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.decideByToken(c, h.usecase.RejectByToken)
}

func (h *QuoteHandler) RequestQuoteRevision(c *gin.Context) {
	h.decideByToken(c, h.usecase.RequestRevisionByToken)
}

func (h *QuoteHandler) decideByToken(
	c *gin.Context,
	decide func(ctx context.Context, token, comment string) (entities.ClientQuote, error),
) {
	token := c.Param("token")

	var payload request.QuoteDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := decide(c.Request.Context(), token, payload.Comment)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] decision recorded quote_id=%s status=%s", q.ID, q.Status)

	c.JSON(http.StatusOK, response.FromClientQuoteForPortal(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteToken), errors.Is(err, usecase.ErrQuoteNotFound):
		// Tokens are credentials; unknown and malformed tokens are
		// indistinguishable on purpose.
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotSendable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SENDABLE", "Quote is not in a sendable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyDecided):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_DECIDED", "Quote already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote expired", http.StatusGone)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
