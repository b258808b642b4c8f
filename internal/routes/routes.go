package routes

import (
	"net/http"

	"chaicraft_back_end/internal/handlers"
	"chaicraft_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Register wires every endpoint. Public routes first, then authenticated
// customer routes, then the admin surface.
func Register(r *gin.Engine, api *handlers.API) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ---- Public ----
	r.POST("/api/auth/register", middleware.RegisterRateLimit(api.Redis), api.Register)
	r.POST("/api/auth/login", middleware.LoginRateLimit(api.Redis), api.Login)

	r.GET("/api/products", api.GetProducts)
	r.GET("/api/products/search", middleware.SearchRateLimit(api.Redis), api.SearchProducts)
	r.GET("/api/products/:id", api.GetProduct)
	r.GET("/api/products/:id/reviews", api.GetProductReviews)

	r.GET("/api/promos/:code", api.GetPromo)
	r.GET("/api/gift-cards/:code", api.GetGiftCard)

	r.GET("/api/jobs", api.GetJobs)
	r.POST("/api/job-applications", middleware.AuthOptional(), api.CreateJobApplication)

	r.POST("/api/messages", api.CreateMessage)

	// ---- Authenticated customer ----
	auth := r.Group("/api", middleware.AuthRequired())
	{
		auth.GET("/auth/me", api.Me)

		auth.POST("/products/:id/reviews", api.CreateReview)

		auth.POST("/orders", api.CreateOrder)
		auth.GET("/orders", api.GetOrders)
		auth.GET("/orders/:id", api.GetOrder)
		auth.GET("/orders/:id/qr", api.OrderQR)
		auth.GET("/orders/:id/receipt", api.OrderReceipt)

		auth.GET("/job-applications/mine", api.GetMyApplications)
		auth.DELETE("/job-applications/:id", api.WithdrawJobApplication)

		auth.GET("/recommendations", api.GetRecommendations)

		auth.POST("/conversations", api.CreateConversation)
		auth.GET("/conversations/:id", api.GetConversation)
		auth.POST("/conversations/:id/messages", api.SendChatMessage)
	}

	// ---- Admin ----
	admin := r.Group("/api/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		admin.POST("/products", api.CreateProduct)
		admin.PATCH("/products/:id", api.UpdateProduct)
		admin.DELETE("/products/:id", api.DeleteProduct)
		admin.POST("/products/:id/image", api.UploadProductImage)

		admin.PATCH("/orders/:id/status", api.UpdateOrderStatus)
		admin.GET("/orders/feed", func(c *gin.Context) {
			api.Hub.HandleWebSocket(c.Writer, c.Request)
		})

		admin.GET("/promos", api.GetAllPromos)
		admin.POST("/promos", api.CreatePromo)
		admin.PATCH("/promos/:code", api.UpdatePromo)
		admin.DELETE("/promos/:code", api.DeletePromo)

		admin.GET("/gift-cards", api.GetAllGiftCards)
		admin.POST("/gift-cards", api.CreateGiftCard)

		admin.POST("/jobs", api.CreateJob)
		admin.PATCH("/jobs/:id/status", api.UpdateJobStatus)
		admin.DELETE("/jobs/:id", api.DeleteJob)

		admin.GET("/job-applications", api.GetJobApplications)
		admin.PATCH("/job-applications/:id/status", api.UpdateJobApplicationStatus)
	}
}
