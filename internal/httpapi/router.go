package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"invcore/pkg/domain"
)

// NewRouter assembles the gin engine: middleware, health and metrics
// endpoints, and one route group per entity table.
func NewRouter(h *Handler, log *zap.Logger, version string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger(log), CORS(), Metrics())

	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": version})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	products := api.Group("/products")
	products.GET("", listHandler(h.store.ListProducts))
	products.GET("/:id", getHandler(h.store.GetProduct, "Product not found"))
	products.POST("", createHandler(h.store.PutProduct, "Product created"))
	products.PUT("/:id", updateHandler(func(p *domain.Product, id string) { p.ProductID = id }, h.store.PutProduct, "Product updated"))
	products.DELETE("/:id", deleteHandler(h.store.DeleteProduct, "Product deleted", "Product not found"))
	products.GET("/:id/components", h.ProductComponents)
	products.POST("/:id/components/:componentId", h.LinkComponent)

	components := api.Group("/components")
	components.GET("", listHandler(h.store.ListComponents))
	components.GET("/:id", getHandler(h.store.GetComponent, "Component not found"))
	components.POST("", createHandler(h.store.PutComponent, "Component created"))
	components.PUT("/:id", updateHandler(func(rec *domain.Component, id string) { rec.ComponentID = id }, h.store.PutComponent, "Component updated"))
	components.DELETE("/:id", deleteHandler(h.store.DeleteComponent, "Component deleted", "Component not found"))

	// Movements are immutable audit records: create goes through the movement
	// processor, and there is no update or delete.
	movements := api.Group("/movements")
	movements.GET("", listHandler(h.store.ListMovements))
	movements.GET("/:id", getHandler(h.store.GetMovement, "Movement not found"))
	movements.POST("", h.RecordMovement)

	supplierOrders := api.Group("/suppliers-orders")
	supplierOrders.GET("", listHandler(h.store.ListSupplierOrders))
	supplierOrders.GET("/:id", getHandler(h.store.GetSupplierOrder, "Supplier order not found"))
	supplierOrders.POST("", createHandler(h.store.PutSupplierOrder, "Supplier order created"))
	supplierOrders.PUT("/:id", updateHandler(func(rec *domain.SupplierOrder, id string) { rec.OrderID = id }, h.store.PutSupplierOrder, "Supplier order updated"))
	supplierOrders.DELETE("/:id", deleteHandler(h.store.DeleteSupplierOrder, "Supplier order deleted", "Supplier order not found"))

	orders := api.Group("/orders")
	orders.GET("", listHandler(h.store.ListOrders))
	orders.GET("/:id", getHandler(h.store.GetOrder, "Order not found"))
	orders.POST("", createHandler(h.store.PutOrder, "Order created"))
	orders.PUT("/:id", updateHandler(func(rec *domain.Order, id string) { rec.OrderID = id }, h.store.PutOrder, "Order updated"))
	orders.DELETE("/:id", deleteHandler(h.store.DeleteOrder, "Order deleted", "Order not found"))

	procurements := api.Group("/procurements")
	procurements.GET("", listHandler(h.store.ListProcurementGroups))
	procurements.GET("/:id", getHandler(h.store.GetProcurementGroup, "Procurement not found"))
	procurements.POST("", createHandler(h.store.PutProcurementGroup, "Procurement created"))
	procurements.PUT("/:id", updateHandler(func(rec *domain.ProcurementGroup, id string) { rec.ProcurementID = id }, h.store.PutProcurementGroup, "Procurement updated"))
	procurements.DELETE("/:id", deleteHandler(h.store.DeleteProcurementGroup, "Procurement deleted", "Procurement not found"))

	assemblies := api.Group("/assembly-timelines")
	assemblies.GET("", listHandler(h.store.ListAssemblyTimelines))
	assemblies.GET("/:id", getHandler(h.store.GetAssemblyTimeline, "Assembly timeline not found"))
	assemblies.POST("", createHandler(h.store.PutAssemblyTimeline, "Assembly timeline created"))
	assemblies.PUT("/:id", updateHandler(func(rec *domain.AssemblyTimeline, id string) { rec.AssemblyID = id }, h.store.PutAssemblyTimeline, "Assembly timeline updated"))
	assemblies.DELETE("/:id", deleteHandler(h.store.DeleteAssemblyTimeline, "Assembly timeline deleted", "Assembly timeline not found"))

	rates := api.Group("/production-rates")
	rates.GET("", listHandler(h.store.ListProductionRates))
	rates.GET("/:id", getHandler(h.store.GetProductionRate, "Production rate not found"))
	rates.POST("", createHandler(h.store.PutProductionRate, "Production rate created"))
	rates.PUT("/:id", updateHandler(func(rec *domain.ProductionRate, id string) { rec.ProductionRateID = id }, h.store.PutProductionRate, "Production rate updated"))
	rates.DELETE("/:id", deleteHandler(h.store.DeleteProductionRate, "Production rate deleted", "Production rate not found"))

	reorderPoints := api.Group("/reorder-points")
	reorderPoints.GET("", listHandler(h.store.ListReorderPoints))
	reorderPoints.GET("/:id", getHandler(h.store.GetReorderPoint, "Reorder point not found"))
	reorderPoints.POST("", createHandler(h.store.PutReorderPoint, "Reorder point created"))
	reorderPoints.PUT("/:id", updateHandler(func(rec *domain.ReorderPoint, id string) { rec.ReorderPointID = id }, h.store.PutReorderPoint, "Reorder point updated"))
	reorderPoints.DELETE("/:id", deleteHandler(h.store.DeleteReorderPoint, "Reorder point deleted", "Reorder point not found"))

	watches := api.Group("/watches")
	watches.GET("", listHandler(h.store.ListWatches))
	watches.GET("/:id", getHandler(h.store.GetWatch, "Watch not found"))
	watches.POST("", createHandler(h.store.PutWatch, "Watch created"))
	watches.PUT("/:id", updateHandler(func(rec *domain.Watch, id string) { rec.WatchID = id }, h.store.PutWatch, "Watch updated"))
	watches.DELETE("/:id", deleteHandler(h.store.DeleteWatch, "Watch deleted", "Watch not found"))

	inventory := api.Group("/inventory")
	inventory.GET("/levels/:location", h.LevelsByLocation)
	inventory.GET("/summary", h.Summary)

	return r
}
