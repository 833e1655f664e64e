// Package http registers the engine's routes on a gin engine.
package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Thelma101/RideChecka-sub001/internal/http/handlers"
	"github.com/Thelma101/RideChecka-sub001/internal/http/middleware"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/catalog"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/estimate"
)

func NewRouter(estimateSvc *estimate.Service, cat *catalog.Catalog, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.Logging(log))

	estimateHandler := handlers.NewEstimateHandler(estimateSvc)
	r.POST("/api/estimates", estimateHandler.Create)

	reportHandler := handlers.NewReportHandler(estimateSvc)
	r.POST("/api/reports", reportHandler.Create)

	catalogHandler := handlers.NewCatalogHandler(cat)
	r.GET("/api/services", catalogHandler.List)

	r.GET("/health", func(c *gin.Context) {
		c.String(nethttp.StatusOK, "OK")
	})

	return r
}
