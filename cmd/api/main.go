package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "bundle-backend/internal/adapter/http"
	appmw "bundle-backend/internal/adapter/middleware"
	"bundle-backend/internal/adapter/paypal"
	"bundle-backend/internal/adapter/repository/mysql"
	"bundle-backend/internal/config"
	"bundle-backend/internal/infrastructure/cache"
	"bundle-backend/internal/infrastructure/db"
	activityUC "bundle-backend/internal/usecase/activity"
	bundleUC "bundle-backend/internal/usecase/bundle"
	depositUC "bundle-backend/internal/usecase/deposit"
	loanUC "bundle-backend/internal/usecase/loan"
	storyUC "bundle-backend/internal/usecase/story"
	userUC "bundle-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	gateway := paypal.NewClient(paypal.Config{
		BaseURL:      cfg.PayPalBaseURL,
		ClientID:     cfg.PayPalClientID,
		ClientSecret: cfg.PayPalClientSecret,
		ReturnURL:    cfg.PayPalReturnURL,
		CancelURL:    cfg.PayPalCancelURL,
	})

	users := mysql.NewUserRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	bundles := mysql.NewBundleRepository(gdb)
	activities := mysql.NewActivityRepository(gdb)
	stories := mysql.NewStoryRepository(gdb)
	deposits := mysql.NewDepositRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	h := httpadp.NewHandler()
	userH := httpadp.NewUserHandler(userUC.NewUsecase(users))
	loanH := httpadp.NewLoanHandler(loanUC.NewUsecase(loans, uow, cfg.MaxLoanAmount, cfg.MaxLoanDurationWeeks))
	bundleH := httpadp.NewBundleHandler(bundleUC.NewUsecase(bundles, loans))
	activityH := httpadp.NewActivityHandler(activityUC.NewUsecase(activities))
	storyH := httpadp.NewStoryHandler(storyUC.NewUsecase(stories, loans))
	depositH := httpadp.NewDepositHandler(depositUC.NewUsecase(gateway, deposits, uow))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/health", h.Health)

	e.POST("/users", userH.Register)
	e.GET("/users/:user_id", userH.Get)
	e.PATCH("/users/:user_id", userH.Update)
	e.PUT("/users/:user_id/picture", userH.SetPicture)
	e.GET("/users/:user_id/loans", loanH.ListByUser)
	e.GET("/users/:user_id/activities", activityH.Recent)

	e.POST("/loans", loanH.Apply)
	e.GET("/loans/:loan_id", loanH.Get)
	e.POST("/loans/:loan_id/payments", loanH.MakePayment)
	e.GET("/loans/:loan_id/bundles", bundleH.ListByLoan)

	e.POST("/bundles", bundleH.Create)
	e.GET("/bundles", bundleH.ListActive)
	e.GET("/bundles/:bundle_id", bundleH.Get)
	e.PATCH("/bundles/:bundle_id", bundleH.Update)
	e.DELETE("/bundles/:bundle_id", bundleH.Delete)

	e.POST("/deposits", depositH.Initiate)
	e.POST("/deposits/:order_id/capture", depositH.Capture)
	e.GET("/deposits/unreconciled", depositH.Unreconciled)

	e.POST("/stories", storyH.Share)
	e.GET("/stories", storyH.Feed)
	e.POST("/stories/:story_id/like", storyH.Like)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
