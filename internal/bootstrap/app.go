package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tucasahr/hr-apigateway/internal/config"
	"github.com/tucasahr/hr-apigateway/internal/database"
	"github.com/tucasahr/hr-apigateway/internal/handler"
	"github.com/tucasahr/hr-apigateway/internal/logger"
	"github.com/tucasahr/hr-apigateway/internal/repository"
	"github.com/tucasahr/hr-apigateway/internal/service"
	"github.com/tucasahr/hr-apigateway/internal/timesheet"
	"github.com/tucasahr/hr-apigateway/pkg/reportsheet"
)

type App struct {
	Echo  *echo.Echo
	DB    *sql.DB
	Cache *database.TimeCache
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize database connection
	dbConfig := database.Config{
		Host:            config.DefaultEnvConfig.DB_HOST,
		Port:            config.DefaultEnvConfig.DB_PORT,
		User:            config.DefaultEnvConfig.DB_USER,
		Password:        config.DefaultEnvConfig.DB_PASSWORD,
		DBName:          config.DefaultEnvConfig.DB_NAME,
		SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
		MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
	}

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	// Time record cache is optional; an empty REDIS_ADDR disables it.
	a.Cache = database.NewTimeCache(config.DefaultEnvConfig.REDIS_ADDR, config.DefaultEnvConfig.TIME_CACHE_TTL)
	if a.Cache != nil && !a.Cache.Healthy(ctx) {
		logger.WarnLog(ctx, "time record cache unreachable at %s, reads fall through to the database", config.DefaultEnvConfig.REDIS_ADDR)
	}

	layout, err := reportsheet.LayoutFromFile(config.DefaultEnvConfig.REPORT_LAYOUT_PATH)
	if err != nil {
		return fmt.Errorf("failed to load report layout: %w", err)
	}

	// Initialize dependencies
	empRepo := repository.NewEmployeeRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	genderRepo := repository.NewGenderRepository(db)
	timeRepo := repository.NewTimeRecordRepository(db)

	empSvc := service.NewEmployeeService(empRepo)
	deptSvc := service.NewDepartmentService(deptRepo)
	genderSvc := service.NewGenderService(genderRepo)
	timeSvc := service.NewTimesheetService(timeRepo, a.Cache)
	reportSvc := service.NewReportService(
		empSvc,
		timeSvc,
		timesheet.ParsePayStrategy(config.DefaultEnvConfig.PAY_STRATEGY),
		config.DefaultEnvConfig.COMPANY_NAME,
		layout,
	)

	empHandler := handler.NewEmployeeHandler(empSvc, config.DefaultEnvConfig.UPLOAD_DIR)
	deptHandler := handler.NewDepartmentHandler(deptSvc)
	genderHandler := handler.NewGenderHandler(genderSvc, empSvc)
	timeHandler := handler.NewTimesheetHandler(timeSvc)
	reportHandler := handler.NewReportHandler(reportSvc)

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(empHandler, deptHandler, genderHandler, timeHandler, reportHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(
	empHandler *handler.EmployeeHandler,
	deptHandler *handler.DepartmentHandler,
	genderHandler *handler.GenderHandler,
	timeHandler *handler.TimesheetHandler,
	reportHandler *handler.ReportHandler,
) {
	a.Echo.GET("/departments", deptHandler.HandleList)
	a.Echo.POST("/departments", deptHandler.HandleCreate)
	a.Echo.GET("/departments/:id", deptHandler.HandleGet)
	a.Echo.PUT("/departments/:id", deptHandler.HandleUpdate)
	a.Echo.DELETE("/departments/:id", deptHandler.HandleDelete)

	a.Echo.GET("/genders", genderHandler.HandleList)
	a.Echo.POST("/genders", genderHandler.HandleCreate)
	a.Echo.GET("/genders/count", genderHandler.HandleCount)
	a.Echo.GET("/genders/:id", genderHandler.HandleGet)
	a.Echo.PUT("/genders/:id", genderHandler.HandleUpdate)
	a.Echo.DELETE("/genders/:id", genderHandler.HandleDelete)

	a.Echo.GET("/employees", empHandler.HandleList)
	a.Echo.POST("/employees", empHandler.HandleCreate)
	a.Echo.GET("/employees/gender-count", genderHandler.HandleCount)
	a.Echo.POST("/employees/savefile", empHandler.HandleSaveFile)
	a.Echo.GET("/employees/:id", empHandler.HandleGet)
	a.Echo.PUT("/employees/:id", empHandler.HandleUpdate)
	a.Echo.DELETE("/employees/:id", empHandler.HandleDelete)

	a.Echo.GET("/times", timeHandler.HandleList)
	a.Echo.POST("/times/submit", timeHandler.HandleSubmit)

	reportGroup := a.Echo.Group("/reports")
	reportGroup.GET("/weekly", reportHandler.HandleWeekly)
	reportGroup.GET("/weekly/sheet", reportHandler.HandleWeeklySheet)
	reportGroup.GET("/weekly/document", reportHandler.HandleWeeklyDocument)
}

func (a *App) Run() error {
	defer a.DB.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
