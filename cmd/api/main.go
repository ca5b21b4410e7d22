package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loan-backoffice/internal/adapter/http"
	appmw "loan-backoffice/internal/adapter/middleware"
	"loan-backoffice/internal/adapter/repository/mysql"
	"loan-backoffice/internal/config"
	"loan-backoffice/internal/infrastructure/cache"
	"loan-backoffice/internal/infrastructure/db"
	appuc "loan-backoffice/internal/usecase/application"
	docuc "loan-backoffice/internal/usecase/document"
	restuc "loan-backoffice/internal/usecase/restoration"
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
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	appRepo := mysql.NewApplicationRepository(gdb)
	docRepo := mysql.NewDocumentRepository(gdb)
	restRepo := mysql.NewRestorationRepository(gdb)
	typeRepo := mysql.NewLoanTypeRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	if err := typeRepo.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("seed loan types: %v", err)
	}

	applications := appuc.NewUsecase(appRepo, typeRepo, unit)
	documents := docuc.NewUsecase(appRepo, docRepo, unit)
	restorations := restuc.NewUsecase(restRepo, unit)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	auth := appmw.JWTAuth([]byte(cfg.JWTSecret))
	idem := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	httpadp.Register(e, auth, idem,
		httpadp.NewHandler(),
		httpadp.NewApplicationHandler(applications),
		httpadp.NewDocumentHandler(documents, applications),
		httpadp.NewRestorationHandler(restorations),
	)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
