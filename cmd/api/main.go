package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "bank-lending-service/internal/adapter/http"
	mw "bank-lending-service/internal/adapter/middleware"
	mysqlrepo "bank-lending-service/internal/adapter/repository/mysql"
	"bank-lending-service/internal/config"
	customerDomain "bank-lending-service/internal/domain/customer"
	loanDomain "bank-lending-service/internal/domain/loan"
	paymentDomain "bank-lending-service/internal/domain/payment"
	"bank-lending-service/internal/infrastructure/cache"
	"bank-lending-service/internal/infrastructure/db"
	adminuc "bank-lending-service/internal/usecase/admin"
	customeruc "bank-lending-service/internal/usecase/customer"
	ledgeruc "bank-lending-service/internal/usecase/ledger"
	loanuc "bank-lending-service/internal/usecase/loan"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&customerDomain.Customer{}, &loanDomain.Loan{}, &paymentDomain.Payment{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	customerRepo := mysqlrepo.NewCustomerRepository(gdb)
	loanRepo := mysqlrepo.NewLoanRepository(gdb)
	paymentRepo := mysqlrepo.NewPaymentRepository(gdb)
	guow := mysqlrepo.NewGormUoW(gdb)

	customerUC := customeruc.NewUsecase(customerRepo, loanRepo, paymentRepo)
	loanUC := loanuc.NewUsecase(customerRepo, loanRepo)
	ledgerUC := ledgeruc.NewUsecase(loanRepo, paymentRepo, guow)
	adminUC := adminuc.NewUsecase(guow)

	h := httpadp.NewHandler()
	ch := httpadp.NewCustomerHandler(customerUC)
	lh := httpadp.NewLoanHandler(loanUC)
	gh := httpadp.NewLedgerHandler(ledgerUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := mw.Idempotency(rdb, log, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api := e.Group("/api/v1")
	api.GET("/health", h.Health)

	api.POST("/customers", ch.CreateCustomer)
	api.GET("/customers", ch.ListCustomers)
	api.GET("/customers/:customer_id/overview", ch.Overview)

	api.POST("/loans", lh.CreateLoan, idemp)
	api.GET("/loans/:loan_id", lh.GetLoan)
	api.POST("/loans/:loan_id/payments", gh.ApplyPayment, idemp)
	api.GET("/loans/:loan_id/ledger", gh.GetLedger)

	if !cfg.IsProduction() {
		dh := httpadp.NewDevHandler(adminUC)
		api.POST("/dev/clear-db", dh.ClearDB)
	}

	addr := ":" + cfg.AppPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
