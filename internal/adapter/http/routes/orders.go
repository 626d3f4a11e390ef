package routes

import (
	"luthierflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing        = "/ping"
	PathOrders      = "/orders"
	PathExtractions = "/extractions"
	PathSettings    = "/settings"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, depositHandler *handlers.DepositHandler, extractionHandler *handlers.ExtractionHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/board", orderHandler.Board)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)

		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.PUT("/:id/deposit", orderHandler.SetDeposit)
		orders.POST("/:id/deposit/charge", depositHandler.ChargeDeposit)

		orders.POST("/:id/services", orderHandler.AddService)
		orders.PATCH("/:id/services/:index", orderHandler.UpdateService)
		orders.DELETE("/:id/services/:index", orderHandler.RemoveService)

		orders.POST("/:id/images", orderHandler.AddNoteImage)
		orders.DELETE("/:id/images/:index", orderHandler.RemoveNoteImage)

		orders.POST("/:id/extract", extractionHandler.ExtractIntoOrder)
	}

	rg.POST(PathExtractions, extractionHandler.Extract)
}

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.SaveSettings)
	}
}
