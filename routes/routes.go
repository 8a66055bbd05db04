package routes

import (
	"store/configs"
	"store/controllers"
	"store/middlewares"
	"store/repository"
	"store/services"
	"store/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	cartSvc := services.NewCartService(db, cartRepo, productRepo, cfg.TaxRate)
	catalogSvc := services.NewCatalogService(productRepo, categoryRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	gateway := services.NewPaymentClient(cfg.PaymentAPIKey, cfg.PaymentSecretKey, cfg.PaymentBaseURL)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, cartSvc, gateway)
	chatSvc := services.NewChatService()
	emailSvc := services.NewSMTPEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cartSvc, emailSvc, cfg.BaseURL)
	cartCtrl := controllers.NewCartController(cartSvc)
	productCtrl := controllers.NewProductController(catalogSvc)
	categoryCtrl := controllers.NewCategoryController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	chatSock := ws.NewChatSocket(chatSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/forgot-password", authCtrl.ForgotPassword)
		a.POST("/reset-password", authCtrl.ResetPassword)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/change-password", authCtrl.ChangePassword)
	}

	// Catalog (public)
	r.GET("/products", productCtrl.List)
	r.GET("/products/featured", productCtrl.Featured)
	r.GET("/products/:id", productCtrl.Detail)
	r.GET("/categories", categoryCtrl.List)

	// Cart: works for anonymous shoppers and logged-in users alike, keyed by
	// the owner key the middleware resolves.
	cart := r.Group("/cart", middlewares.CustomerContext(cfg.JWTSecret, cartSvc, cfg.CookieTTL))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.DELETE("/items", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders/checkout", orderCtrl.Checkout)
		u.GET("/profile/orders", orderCtrl.History)
	}

	// Chat widget
	r.POST("/chat/message", chatCtrl.Message)
	r.GET("/chat/health", chatCtrl.Health)
	r.GET("/ws/chat", chatSock.Handle)

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/products", productCtrl.AdminList)
		admin.POST("/products", productCtrl.Create)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.GET("/categories", categoryCtrl.AdminList)
		admin.POST("/categories", categoryCtrl.Create)
		admin.PATCH("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.GET("/orders", orderCtrl.AdminList)
		admin.GET("/orders/:id", orderCtrl.AdminDetail)
	}
}
