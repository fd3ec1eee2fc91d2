package main

import (
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"finance-control-go/internal/config"
	"finance-control-go/internal/database"
	httpserver "finance-control-go/internal/http"
	"finance-control-go/internal/jobs"
	"finance-control-go/internal/models"
	"finance-control-go/internal/observability"
	"finance-control-go/internal/reports"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Supplier{}, &models.Client{},
		&models.Payable{}, &models.Receivable{},
		&models.BankAccount{}, &models.CreditCard{}, &models.Investment{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	engine := reports.NewEngine(reports.NewGormLedger(db), nil)
	metrics := observability.NewMetrics()

	scheduler := cron.New()
	marker := jobs.NewOverdueMarker(db, log, nil)
	if err := marker.Schedule(scheduler, cfg.OverdueCron); err != nil {
		log.Fatalf("schedule overdue job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := httpserver.NewServer(cfg, db, engine, metrics, log)
	log.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
