package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gestoria-hr/workforce-backend-go/internal/config"
	appHTTP "github.com/gestoria-hr/workforce-backend-go/internal/handler/http"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/crypto"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/gestoria-hr/workforce-backend-go/internal/repository/postgresql"
	alertService "github.com/gestoria-hr/workforce-backend-go/internal/service/alert"
	anomalyService "github.com/gestoria-hr/workforce-backend-go/internal/service/anomaly"
	authService "github.com/gestoria-hr/workforce-backend-go/internal/service/auth"
	employeeService "github.com/gestoria-hr/workforce-backend-go/internal/service/employee"
	expenseService "github.com/gestoria-hr/workforce-backend-go/internal/service/expense"
	timeEntryService "github.com/gestoria-hr/workforce-backend-go/internal/service/timeentry"
	vacationService "github.com/gestoria-hr/workforce-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// A broken field codec must never reach traffic.
	codec := crypto.NewCodec(cfg.Encryption.Key)
	if err := codec.SelfTest(); err != nil {
		log.Fatal("Field encryption self-test failed: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	anomalyRepo := postgresql.NewAnomalyRepository(db)
	alertRepo := postgresql.NewAlertRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	anomalySvc := anomalyService.NewAnomalyService(db, anomalyRepo, timeEntryRepo, expenseRepo, vacationRepo, companyRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(db, timeEntryRepo, alertRepo, companyRepo, anomalySvc)
	expenseSvc := expenseService.NewExpenseService(db, expenseRepo, anomalySvc)
	vacationSvc := vacationService.NewVacationService(db, vacationRepo, anomalySvc)
	alertSvc := alertService.NewAlertService(db, alertRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, codec)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)
	anomalyHandler := appHTTP.NewAnomalyHandler(anomalySvc)
	alertHandler := appHTTP.NewAlertHandler(alertSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		timeEntryHandler,
		expenseHandler,
		vacationHandler,
		anomalyHandler,
		alertHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
