package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "flexipay-backend/internal/adapter/http"
	"flexipay-backend/internal/adapter/middleware"
	"flexipay-backend/internal/adapter/repository/mysql"
	"flexipay-backend/internal/config"
	"flexipay-backend/internal/infrastructure/cache"
	"flexipay-backend/internal/infrastructure/db"
	advanceUC "flexipay-backend/internal/usecase/advance"
	planUC "flexipay-backend/internal/usecase/plan"
	purchaseUC "flexipay-backend/internal/usecase/purchase"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	advanceRepo := mysql.NewAdvanceRepository(gdb)
	purchaseRepo := mysql.NewPurchaseRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	planUsecase := planUC.NewUsecase(rdb, cfg.DefaultRate, time.Duration(cfg.QuoteTTLSecs)*time.Second)
	advanceUsecase := advanceUC.NewUsecase(advanceRepo, uow, cfg.DefaultRate)
	purchaseUsecase := purchaseUC.NewUsecase(purchaseRepo, cfg.DefaultRate)

	h := httpadp.NewHandler()
	planHandler := httpadp.NewPlanHandler(planUsecase)
	advanceHandler := httpadp.NewAdvanceHandler(advanceUsecase)
	purchaseHandler := httpadp.NewPurchaseHandler(purchaseUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.POST("/plans/quote", planHandler.Quote)

	e.POST("/advances", advanceHandler.CreateAdvance, idem)
	e.GET("/advances/:advance_id", advanceHandler.GetAdvance)
	e.GET("/advances/:advance_id/schedule", advanceHandler.GetSchedule)
	e.POST("/advances/:advance_id/installments/:seq/pay", advanceHandler.PayInstallment, idem)

	e.POST("/purchases", purchaseHandler.CreatePurchase, idem)
	e.GET("/purchases/:purchase_id", purchaseHandler.GetPurchase)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
