package router

import (
	"beaconia/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler, optionalAuth echo.MiddlewareFunc) {
	api.POST("/recommend", handler.Recommend, optionalAuth)
}

func SetupFeedbackRoutes(api *echo.Group, handler *rest.FeedbackHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/feedback", handler.Submit, authRequired)
}

func SetupHistoryRoutes(api *echo.Group, handler *rest.HistoryHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/history", handler.List, authRequired)
}

func SetupActivityRoutes(api *echo.Group, handler *rest.ActivityHandler) {
	activities := api.Group("/activities")

	activities.GET("", handler.GetAllActivities)
	activities.GET("/:id", handler.GetActivityByID)
}

func SetupOpsRoutes(e *echo.Echo, api *echo.Group, handler *rest.HealthHandler) {
	api.GET("/health", handler.Check)
	e.GET("/health", handler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
