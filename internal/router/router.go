package router

import (
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/config"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/handler"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/middleware"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	txRunner := repository.NewTxRunner(db)
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	stockRepo := repository.NewStockRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	movementRepo := repository.NewMovementRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	incomeRepo := repository.NewIncomeRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	billRepo := repository.NewBillRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	catalogSvc := service.NewCatalogService(itemRepo)
	inventorySvc := service.NewInventoryService(txRunner, itemRepo, stockRepo, batchRepo, movementRepo)
	pharmacySvc := service.NewPharmacyService(txRunner, itemRepo, stockRepo, batchRepo, saleRepo, incomeRepo, ledgerRepo)
	ledgerSvc := service.NewLedgerService(txRunner, ledgerRepo)
	billingSvc := service.NewBillingService(txRunner, billRepo, patientRepo, doctorRepo, incomeRepo)
	patientSvc := service.NewPatientService(patientRepo)
	expenseSvc := service.NewExpenseService(expenseRepo)
	reportSvc := service.NewReportService(incomeRepo, expenseRepo, billRepo, notificationRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	itemsH := handler.NewItemsHandler(catalogSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	pharmacyH := handler.NewPharmacyHandler(pharmacySvc)
	ledgerH := handler.NewLedgerHandler(ledgerSvc)
	billsH := handler.NewBillsHandler(billingSvc)
	patientsH := handler.NewPatientsHandler(patientSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: reception, pharmacist, admin — declared per-endpoint
		anyRole := middleware.RequireRole("reception", "pharmacist", "admin")
		pharmacistUp := middleware.RequireRole("pharmacist", "admin")
		receptionUp := middleware.RequireRole("reception", "admin")
		adminOnly := middleware.RequireRole("admin")

		// Catalog — all roles read, pharmacist/admin write
		v1.GET("/items", anyRole, itemsH.ListItems)
		v1.GET("/items/low-stock", pharmacistUp, itemsH.ListLowStock)
		v1.GET("/items/:id", anyRole, itemsH.GetItem)
		v1.POST("/items", pharmacistUp, itemsH.CreateItem)
		v1.PUT("/items/:id", pharmacistUp, itemsH.UpdateItem)

		inv := v1.Group("/inventory", pharmacistUp)
		{
			inv.POST("/purchases", inventoryH.PurchaseIntake)
			inv.POST("/transfers", inventoryH.Transfer)
			inv.DELETE("/transfers/:groupId", inventoryH.ReverseTransfer)
			inv.GET("/stock", inventoryH.ListInventoryStock)
			inv.GET("/movements", inventoryH.ListMovements)
			inv.GET("/items/:id/batches", inventoryH.ListBatches)
		}

		pharmacy := v1.Group("/pharmacy", pharmacistUp)
		{
			pharmacy.GET("/stock", inventoryH.ListPharmacyStock)
			pharmacy.POST("/sales", pharmacyH.RecordSale)
			pharmacy.GET("/sales", pharmacyH.ListSales)
			pharmacy.DELETE("/sales/:groupId", pharmacyH.ReverseSale)
		}

		ledger := v1.Group("/ledger", adminOnly)
		{
			ledger.GET("", ledgerH.GetLedger)
			ledger.POST("/transfers", ledgerH.TransferToLog)
			ledger.GET("/log", ledgerH.ListLog)
		}

		// Patients and bills — reception desk work
		v1.POST("/patients", receptionUp, patientsH.RegisterPatient)
		v1.GET("/patients", anyRole, patientsH.ListPatients)
		v1.GET("/patients/:id", anyRole, patientsH.GetPatient)
		v1.PUT("/patients/:id", receptionUp, patientsH.UpdatePatient)

		v1.POST("/bills", receptionUp, billsH.CreateBill)
		v1.GET("/bills", anyRole, billsH.ListBills)
		v1.DELETE("/bills/:id", adminOnly, billsH.ReverseBill)

		v1.GET("/doctors", anyRole, billsH.ListDoctors)
		v1.POST("/doctors", adminOnly, billsH.CreateDoctor)
		v1.PATCH("/doctors/:id", adminOnly, billsH.UpdateDoctor)
		v1.DELETE("/doctors/:id", adminOnly, billsH.DeactivateDoctor)
		v1.GET("/doctors/:id/khata", adminOnly, billsH.GetKhata)

		expenses := v1.Group("/expenses", adminOnly)
		{
			expenses.POST("", expensesH.CreateExpense)
			expenses.GET("", expensesH.ListExpenses)
			expenses.DELETE("/:id", expensesH.DeleteExpense)
		}

		v1.GET("/reports/income-expense", adminOnly, reportsH.IncomeExpense)
		v1.GET("/notifications", pharmacistUp, reportsH.ListNotifications)
		v1.PUT("/notifications/:id/seen", pharmacistUp, reportsH.MarkNotificationSeen)

		users := v1.Group("/users", adminOnly)
		{
			users.POST("", authH.CreateUser)
			users.GET("", authH.ListUsers)
			users.PUT("/:id", authH.UpdateUser)
			users.DELETE("/:id", authH.DeactivateUser)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
