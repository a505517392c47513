package router

import (
	"time"

	"fornopos/internal/cache"
	"fornopos/internal/config"
	"fornopos/internal/handler"
	"fornopos/internal/middleware"
	"fornopos/internal/repository"
	"fornopos/internal/service"
	"fornopos/internal/worker"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Cache
func New(cfg *config.Config, db *gorm.DB, qc *cache.QueryCache, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	registerRepo := repository.NewRegisterRepository(db, qc)
	orderRepo := repository.NewOrderRepository(db, qc)
	clientRepo := repository.NewClientRepository(db, qc)
	employeeRepo := repository.NewEmployeeRepository(db, qc)
	catalogRepo := repository.NewCatalogRepository(db, qc)
	settingRepo := repository.NewSettingRepository(db, qc)

	// ── Services ─────────────────────────────────────────────────────────────
	registerSvc := service.NewRegisterService(registerRepo, settingRepo)
	cartSvc := service.NewCartService(registerSvc, orderRepo, clientRepo, dispatcher)
	orderSvc := service.NewOrderService(orderRepo, clientRepo, dispatcher, cfg.AdminPINHash)
	clientSvc := service.NewClientService(clientRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo)
	catalogSvc := service.NewCatalogService(catalogRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	registerH := handler.NewRegisterHandler(registerSvc)
	cartH := handler.NewCartHandler(cartSvc, catalogSvc)
	ordersH := handler.NewOrderHandler(orderSvc)
	clientsH := handler.NewClientHandler(clientSvc)
	employeesH := handler.NewEmployeeHandler(employeeSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health)

	v1 := r.Group("/v1")
	{
		register := v1.Group("/register")
		{
			register.POST("/open", registerH.Open)
			register.GET("/current", registerH.Current)
			register.POST("/close", registerH.Close)
			register.GET("/next-number", registerH.NextNumber)
			register.GET("/history", registerH.History)
			register.GET("/:id/report", registerH.Report)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", cartH.Get)
			cart.POST("/items", cartH.AddItem)
			cart.DELETE("/items/:index", cartH.RemoveItem)
			cart.PATCH("/items/:index/quantity", cartH.UpdateQuantity)
			cart.PATCH("/items/:index/discount", cartH.UpdateDiscount)
			cart.DELETE("", cartH.Clear)
			cart.POST("/checkout", cartH.Checkout)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.DELETE("/:id", ordersH.Delete)
			orders.POST("/:id/reprint", ordersH.Reprint)
		}

		clients := v1.Group("/clients")
		{
			clients.GET("", clientsH.List)
			clients.GET("/:id", clientsH.Get)
			clients.POST("", clientsH.Create)
			clients.PUT("/:id", clientsH.Update)
			clients.DELETE("/:id", clientsH.Deactivate)
			clients.POST("/:id/payments", clientsH.RecordPayment)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("", employeesH.List)
			employees.POST("", employeesH.Create)
			employees.PUT("/:id", employeesH.Update)
			employees.DELETE("/:id", employeesH.Deactivate)
			employees.GET("/:id/expenses", employeesH.ListExpenses)
			employees.POST("/:id/expenses", employeesH.AddExpense)
			employees.DELETE("/expenses/:id", employeesH.DeleteExpense)
			employees.GET("/:id/days-off", employeesH.ListDaysOff)
			employees.POST("/:id/days-off", employeesH.AddDayOff)
			employees.DELETE("/days-off/:id", employeesH.DeleteDayOff)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/categories", catalogH.ListCategories)
			catalog.POST("/categories", catalogH.SaveCategory)
			catalog.PUT("/categories/:id", catalogH.SaveCategory)
			catalog.DELETE("/categories/:id", catalogH.DeleteCategory)
			catalog.GET("/products", catalogH.ListProducts)
			catalog.POST("/products", catalogH.SaveProduct)
			catalog.PUT("/products/:id", catalogH.SaveProduct)
			catalog.DELETE("/products/:id", catalogH.DeleteProduct)
			catalog.GET("/products/:id/toppings", catalogH.ProductToppings)
			catalog.PUT("/products/:id/toppings", catalogH.SetProductToppings)
		}
	}

	return r
}
