package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/oredipendenti/backend-go/internal/config"
	appHTTP "github.com/oredipendenti/backend-go/internal/handler/http"
	"github.com/oredipendenti/backend-go/internal/pkg/cron"
	"github.com/oredipendenti/backend-go/internal/pkg/database"
	"github.com/oredipendenti/backend-go/internal/pkg/jwt"
	"github.com/oredipendenti/backend-go/internal/pkg/storage"
	"github.com/oredipendenti/backend-go/internal/repository/postgresql"
	authService "github.com/oredipendenti/backend-go/internal/service/auth"
	employeeService "github.com/oredipendenti/backend-go/internal/service/employee"
	"github.com/oredipendenti/backend-go/internal/service/file"
	productService "github.com/oredipendenti/backend-go/internal/service/product"
	ratingService "github.com/oredipendenti/backend-go/internal/service/rating"
	reportService "github.com/oredipendenti/backend-go/internal/service/report"
	timesheetService "github.com/oredipendenti/backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	dayRepo := postgresql.NewDayRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	ratingRepo := postgresql.NewRatingRepository(db)
	tokenRepo := postgresql.NewRefreshTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	imageService := file.NewProductImageService(fileStorage)
	authSvc := authService.NewAuthService(employeeRepo, tokenRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, dayRepo, employeeRepo)
	reportSvc := reportService.NewReportService(dayRepo, employeeRepo)
	productSvc := productService.NewProductService(productRepo)
	ratingSvc := ratingService.NewRatingService(ratingRepo, productRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc, reportSvc)
	productHandler := appHTTP.NewProductHandler(productSvc)
	ratingHandler := appHTTP.NewRatingHandler(ratingSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	uploadHandler := appHTTP.NewUploadHandler(imageService, productSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("refresh-token-cleanup", 24*time.Hour, cron.TokenCleanupJob(tokenRepo))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		timesheetHandler,
		productHandler,
		ratingHandler,
		employeeHandler,
		uploadHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
