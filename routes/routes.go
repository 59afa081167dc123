package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers endpoints that need no credentials.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.CatalogHandler.GetServices)
	r.GET("/available-services", hb.CatalogHandler.GetAvailableServices)
	r.POST("/booking", hb.BookingHandler.CreateBooking)
	r.PUT("/user/:email", hb.UserHandler.UpsertUserHandler)
	r.GET("/admin/:email", hb.UserHandler.IsAdminHandler)
}

// RegisterPatientRoutes registers endpoints that require a verified bearer token.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("")
	api.Use(middleware.JWTAuthMiddleware(hb.Tokens))
	{
		api.GET("/bookings", hb.BookingHandler.GetBookings)
		api.GET("/booking/:id", hb.BookingHandler.GetBooking)
		api.GET("/users", hb.UserHandler.GetAllUsersHandler)
		api.POST("/create-payment-intent", hb.PaymentHandler.CreatePaymentIntent)
		api.POST("/payments", hb.PaymentHandler.RecordPayment)
	}
}

// RegisterAdminRoutes registers endpoints that require a verified admin.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("")
	adminGroup.Use(middleware.JWTAuthMiddleware(hb.Tokens), middleware.AdminMiddleware(hb.Gate))
	{
		adminGroup.PUT("/user/admin/:email", hb.AdminHandler.MakeAdminHandler)
		adminGroup.POST("/add-doctor", hb.AdminHandler.AddDoctorHandler)
		adminGroup.DELETE("/doctor/:email", hb.AdminHandler.DeleteDoctorHandler)
		adminGroup.GET("/doctors", hb.AdminHandler.GetDoctorsHandler)
	}
}

// RegisterHealthRoute registers the banner and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors Portal")
	})
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
