package routes

import (
	"atelier_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
)

func addPricingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, stalenessHandler *handlers.StalenessHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("/:project_id/estimate", estimateHandler.GenerateEstimate)
		projects.POST("/:project_id/estimate/cutlist", estimateHandler.GenerateEstimateFromCutlist)
		projects.GET("/:project_id/estimate", estimateHandler.GetEstimate)

		projects.POST("/:project_id/estimate/line-items", estimateHandler.AddLineItem)
		projects.PUT("/:project_id/estimate/line-items/:line_item_id", estimateHandler.UpdateLineItem)
		projects.DELETE("/:project_id/estimate/line-items/:line_item_id", estimateHandler.RemoveLineItem)

		projects.GET("/:project_id/staleness", stalenessHandler.GetStalenessReport)
		projects.POST("/:project_id/estimate/stale", stalenessHandler.FlagEstimateStale)
	}
}
