package handlers

import (
	"errors"
	"io"
	"net/http"

	request "atelier_ops/internal/adapter/http/dto/request"
	response "atelier_ops/internal/adapter/http/dto/response"
	"atelier_ops/internal/usecase"
	"atelier_ops/pkg"

	"github.com/gin-gonic/gin"
)

// StalenessHandler exposes the derived workflow-staleness report and the
// advisory stale flag on the stored estimate.

type StalenessHandler struct {
	usecase usecase.IStalenessUseCase
}

func NewStalenessHandler(uc usecase.IStalenessUseCase) *StalenessHandler {
	return &StalenessHandler{usecase: uc}
}

func (h *StalenessHandler) GetStalenessReport(c *gin.Context) {
	report, err := h.usecase.ProjectReport(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *StalenessHandler) FlagEstimateStale(c *gin.Context) {
	var payload request.FlagStaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	est, err := h.usecase.FlagEstimateStale(c.Request.Context(), c.Param("project_id"), payload.Reason)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConsolidatedEstimate(est))
}
