package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"orderdesk.backend/internal/interfaces/http/handlers"
	"orderdesk.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	companyHandler  *handlers.CompanyHandler
	branchHandler   *handlers.BranchHandler
	menuHandler     *handlers.MenuHandler
	menuItemHandler *handlers.MenuItemHandler
	basketHandler   *handlers.BasketHandler
	orderHandler    *handlers.OrderHandler
	paymentHandler  *handlers.PaymentHandler
	cleanupHandler  *handlers.CleanupHandler
	authMiddleware  gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "Idempotency-Key"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "orderdesk-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("/me", d.userHandler.GetProfile)
			users.PUT("/me", d.userHandler.UpdateProfile)
			users.DELETE("/me", d.userHandler.DeleteAccount)
			users.GET("", middleware.RequireAdmin(), d.userHandler.ListUsers)
			users.PUT("/:id/role", middleware.RequireStaff(), d.userHandler.AssignRole)
		}

		// Company routes (public read, staff write)
		companies := v1.Group("/companies")
		{
			companies.GET("", d.companyHandler.ListCompanies)
			companies.GET("/:id", d.companyHandler.GetCompany)
			companies.POST("", d.authMiddleware, middleware.RequireAdmin(), d.companyHandler.CreateCompany)
			companies.PUT("/:id", d.authMiddleware, middleware.RequireStaff(), d.companyHandler.UpdateCompany)
			companies.PUT("/:id/owner", d.authMiddleware, middleware.RequireAdmin(), d.companyHandler.UpdateCompanyOwner)
			companies.DELETE("/:id", d.authMiddleware, middleware.RequireAdmin(), d.companyHandler.DeleteCompany)
		}

		// Branch routes (public read, staff write)
		branches := v1.Group("/branches")
		{
			branches.GET("", d.branchHandler.ListBranches)
			branches.GET("/:id", d.branchHandler.GetBranch)
			branches.POST("", d.authMiddleware, middleware.RequireStaff(), d.branchHandler.CreateBranch)
			branches.PUT("/:id", d.authMiddleware, middleware.RequireStaff(), d.branchHandler.UpdateBranch)
			branches.PUT("/:id/owner", d.authMiddleware, middleware.RequireStaff(), d.branchHandler.UpdateBranchOwner)
			branches.DELETE("/:id", d.authMiddleware, middleware.RequireStaff(), d.branchHandler.DeleteBranch)
		}

		// Menu routes (public read, staff write)
		menus := v1.Group("/menus")
		{
			menus.GET("", d.menuHandler.ListMenus)
			menus.GET("/:id", d.menuHandler.GetMenu)
			menus.POST("", d.authMiddleware, middleware.RequireStaff(), d.menuHandler.CreateMenu)
			menus.PUT("/:id", d.authMiddleware, middleware.RequireStaff(), d.menuHandler.UpdateMenu)
			menus.DELETE("/:id", d.authMiddleware, middleware.RequireStaff(), d.menuHandler.DeleteMenu)
		}

		// Menu item routes (public read, staff write)
		menuItems := v1.Group("/menu-items")
		{
			menuItems.GET("", d.menuItemHandler.ListMenuItems)
			menuItems.GET("/:id", d.menuItemHandler.GetMenuItem)
			menuItems.POST("", d.authMiddleware, middleware.RequireStaff(), d.menuItemHandler.CreateMenuItem)
			menuItems.PUT("/:id", d.authMiddleware, middleware.RequireStaff(), d.menuItemHandler.UpdateMenuItem)
			menuItems.DELETE("/:id", d.authMiddleware, middleware.RequireStaff(), d.menuItemHandler.DeleteMenuItem)
		}

		// Basket routes (protected)
		basket := v1.Group("/basket")
		basket.Use(d.authMiddleware)
		{
			basket.POST("", d.basketHandler.AddToBasket)
			basket.GET("", d.basketHandler.ListBasket)
			basket.PUT("/:id", d.basketHandler.UpdateBasket)
			basket.PATCH("/:id", d.basketHandler.PatchBasket)
			basket.DELETE("/:id", d.basketHandler.RemoveFromBasket)
			basket.DELETE("", d.basketHandler.ClearBasket)
		}

		// Order routes (protected)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("", middleware.IdempotencyMiddleware(), d.orderHandler.CreateOrder)
			orders.GET("", d.orderHandler.ListOrders)
			orders.GET("/:id", d.orderHandler.GetOrder)
			orders.PUT("/:id", d.orderHandler.UpdateOrder)
			orders.DELETE("/:id", d.orderHandler.DeleteOrder)
		}

		// Payment routes (protected except webhook)
		paymentsGrp := v1.Group("/payments")
		{
			paymentsGrp.POST("/intent", d.authMiddleware, middleware.IdempotencyMiddleware(), d.paymentHandler.CreateIntent)
			paymentsGrp.GET("/order/:orderId", d.authMiddleware, d.paymentHandler.GetPayment)
			paymentsGrp.POST("/webhook", d.paymentHandler.HandleWebhook)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/cleanup/stats", d.cleanupHandler.GetStats)
			admin.POST("/cleanup", d.cleanupHandler.Execute)
		}
	}
}
