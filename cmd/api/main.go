package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	eventsHttp "institute-insights-service/internal/events/adapters/http/fiber"
	eventsRepoPg "institute-insights-service/internal/events/adapters/postgres"
	eventsUsecase "institute-insights-service/internal/events/core/usecase"

	reportsHttp "institute-insights-service/internal/reports/adapters/http/fiber"
	reportsRepoPg "institute-insights-service/internal/reports/adapters/postgres"
	"institute-insights-service/internal/reports/core/aggregator"
	reportsUsecase "institute-insights-service/internal/reports/core/usecase"

	schedulingHttp "institute-insights-service/internal/scheduling/adapters/http/fiber"
	schedulingRepoPg "institute-insights-service/internal/scheduling/adapters/postgres"
	schedulingUsecase "institute-insights-service/internal/scheduling/core/usecase"

	"institute-insights-service/internal/platform/config"
	"institute-insights-service/internal/platform/telemetry"
	"institute-insights-service/internal/platform/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "institute-insights-service/docs"
)

// @title Institute Insights API
// @version 1.0
// @description Activity ingestion, registration reports and teacher schedule conflict checks.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.PostgresDSN == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}
	if _, err := aggregator.LoadLocation(cfg.ReportTimezone); err != nil {
		log.Fatalf("REPORT_TIMEZONE: %v", err)
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(db))
	eventReader := reportsRepoPg.NewEventReader(reportsRepoPg.NewSQLDB(db))
	slotRepository := schedulingRepoPg.NewSlotRepository(schedulingRepoPg.NewSQLDB(db))

	// Usecases
	rules := aggregator.NewRegistrationRules(aggregator.RegistrationEventTypes(), cfg.InferredRoles)

	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository)
	reportUC := reportsUsecase.NewGetRegistrationReportUseCase(eventReader, rules, cfg.ReportTimezone)
	checkAvailabilityUC := schedulingUsecase.NewCheckAvailabilityUseCase(slotRepository)
	saveScheduleUC := schedulingUsecase.NewSaveGroupScheduleUseCase(slotRepository)

	// Telemetry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.New(registry)
	validator := validation.New()

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(metrics.Middleware())

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC, validator, metrics)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)

	// report endpoints
	reportHandler := reportsHttp.NewReportHandler(reportUC, metrics)
	app.Get("/reports/registrations", reportHandler.GetRegistrations)
	app.Get("/reports/registrations.csv", reportHandler.ExportRegistrationsCSV)

	// scheduling endpoints
	scheduleHandler := schedulingHttp.NewScheduleHandler(checkAvailabilityUC, saveScheduleUC, validator, metrics)
	app.Post("/schedules/availability", scheduleHandler.CheckAvailability)
	app.Put("/schedules/groups/:group_id", scheduleHandler.SaveGroupSchedule)

	// Operational
	app.Get("/prometheus", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
