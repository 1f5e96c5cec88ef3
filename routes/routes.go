package routes

import (
	"time"

	"partypilot/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterSupplierRoutes registers supplier browsing and management endpoints.
func RegisterSupplierRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/suppliers")
	{
		api.GET("", hb.GetSuppliersHandler)
		api.GET("/:id", hb.GetSupplierByIDHandler)
		api.POST("", hb.CreateSupplierHandler)
		api.PUT("/:id", hb.UpdateSupplierHandler)
		api.DELETE("/:id", hb.DeleteSupplierHandler)

		// Profile editing session (per-section change tracking and saves)
		api.GET("/:id/profile/sections", hb.GetSectionStatesHandler)
		api.POST("/:id/profile/sections/:section/check", hb.CheckChangesHandler)
		api.PUT("/:id/profile/sections/:section", hb.SaveSectionHandler)
		api.POST("/:id/profile/refresh", hb.RefreshSessionHandler)
		api.DELETE("/:id/profile/session", hb.CloseSessionHandler)
	}
}

// RegisterPartyRoutes registers party journey endpoints.
func RegisterPartyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/parties")
	{
		api.POST("", hb.CreatePartyHandler)
		api.GET("/:id", hb.GetPartyHandler)
		api.GET("/customer/:customerId", hb.GetCustomerPartiesHandler)
		api.PUT("/:id/slots/:slot", hb.AssignSlotHandler)
		api.DELETE("/:id/slots/:slot", hb.ClearSlotHandler)
		api.GET("/:id/dashboard", hb.GetDashboardHandler)
		api.GET("/:id/enquiries", hb.GetPartyEnquiriesHandler)
		api.GET("/:id/registry", hb.GetPartyRegistryHandler)
	}
}

// RegisterEnquiryRoutes registers the enquiry lifecycle endpoints.
func RegisterEnquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/enquiries")
	{
		api.POST("", hb.CreateEnquiryHandler)
		api.PUT("/:id/respond", hb.RespondToEnquiryHandler)
		api.PUT("/:id/payment-status", hb.RecordPaymentStatusHandler)
	}
}

// RegisterRegistryRoutes registers gift registry endpoints.
func RegisterRegistryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/registries")
	{
		api.POST("", hb.CreateRegistryHandler)
		api.POST("/:id/items", hb.AddRegistryItemHandler)
		api.DELETE("/:id/items/:itemId", hb.RemoveRegistryItemHandler)
		api.POST("/:id/items/:itemId/reserve", hb.ReserveRegistryItemHandler)
		api.POST("/:id/items/:itemId/release", hb.ReleaseRegistryItemHandler)
	}
}

// RegisterHealthRoute registers health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSupplierRoutes(r, hb)
	RegisterPartyRoutes(r, hb)
	RegisterEnquiryRoutes(r, hb)
	RegisterRegistryRoutes(r, hb)
	RegisterHealthRoute(r)
}
