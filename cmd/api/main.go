package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/zavodops/factory-backend-go/internal/config"
	appHTTP "github.com/zavodops/factory-backend-go/internal/handler/http"
	"github.com/zavodops/factory-backend-go/internal/pkg/database"
	"github.com/zavodops/factory-backend-go/internal/pkg/jwt"
	"github.com/zavodops/factory-backend-go/internal/repository/postgresql"
	attendanceService "github.com/zavodops/factory-backend-go/internal/service/attendance"
	serviceAuth "github.com/zavodops/factory-backend-go/internal/service/auth"
	deliveryService "github.com/zavodops/factory-backend-go/internal/service/delivery"
	salaryService "github.com/zavodops/factory-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "factory-backend"),
		slog.String("env", cfg.App.Env),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	pricingRepo := postgresql.NewPricingRepository(db)
	deliveryRepo := postgresql.NewDeliveryRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(cfg.Admin, JWTService)
	salarySvc := salaryService.NewSalaryService(db, logger, attendanceRepo, pricingRepo, deliveryRepo, salaryRepo, cfg.Salary)
	attendanceSvc := attendanceService.NewAttendanceService(db, logger, attendanceRepo, employeeRepo, salarySvc)
	deliverySvc := deliveryService.NewDeliveryService(db, logger, deliveryRepo, pricingRepo, salarySvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	deliveryHandler := appHTTP.NewDeliveryHandler(deliverySvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		deliveryHandler,
		salaryHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
