package handlers

import (
	"errors"
	"io"
	"net/http"

	request "atelier_ops/internal/adapter/http/dto/request"
	response "atelier_ops/internal/adapter/http/dto/response"
	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase"
	"atelier_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for consolidated project estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GenerateEstimate recalculates the project estimate from its costed work
// items. The body is optional; it only carries audit metadata.
func (h *EstimateHandler) GenerateEstimate(c *gin.Context) {
	projectID := c.Param("project_id")

	var payload request.GenerateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	est, err := h.usecase.CalculateEstimate(c.Request.Context(), projectID, payload.GeneratedBy)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConsolidatedEstimate(est))
}

// GenerateEstimateFromCutlist prices a raw cutlist through the same composer
// as the work-item path.
func (h *EstimateHandler) GenerateEstimateFromCutlist(c *gin.Context) {
	projectID := c.Param("project_id")

	var payload request.CutlistEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	parts, err := payload.ResolveParts()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	in := usecase.CutlistInput{
		Parts:               parts,
		LaborMinutesPerPart: payload.LaborMinutesPerPart,
		ShopHourlyRate:      payload.ShopHourlyRate,
		PalettePrices:       payload.PalettePrices,
	}
	est, err := h.usecase.CalculateEstimateFromCutlist(c.Request.Context(), projectID, in, payload.GeneratedBy)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConsolidatedEstimate(est))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	est, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConsolidatedEstimate(est))
}

func (h *EstimateHandler) AddLineItem(c *gin.Context) {
	projectID := c.Param("project_id")

	in, ok := bindLineItem(c)
	if !ok {
		return
	}

	est, err := h.usecase.AddLineItem(c.Request.Context(), projectID, in)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromConsolidatedEstimate(est))
}

func (h *EstimateHandler) UpdateLineItem(c *gin.Context) {
	projectID := c.Param("project_id")
	lineItemID := c.Param("line_item_id")

	in, ok := bindLineItem(c)
	if !ok {
		return
	}

	est, err := h.usecase.UpdateLineItem(c.Request.Context(), projectID, lineItemID, in)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConsolidatedEstimate(est))
}

func (h *EstimateHandler) RemoveLineItem(c *gin.Context) {
	est, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("project_id"), c.Param("line_item_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConsolidatedEstimate(est))
}

func bindLineItem(c *gin.Context) (usecase.LineItemInput, bool) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return usecase.LineItemInput{}, false
	}
	return usecase.LineItemInput{
		Description: payload.Description,
		Category:    entities.LineItemCategory(payload.Category),
		Quantity:    payload.Quantity,
		Unit:        payload.Unit,
		UnitPrice:   payload.UnitPrice,
		Notes:       payload.Notes,
	}, true
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidLineItem), errors.Is(err, usecase.ErrEmptyCutlist):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
