package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/zipcast/zipcast/internal/api/http"
	"github.com/zipcast/zipcast/internal/common"
	"github.com/zipcast/zipcast/internal/config"
	"github.com/zipcast/zipcast/internal/export"
	"github.com/zipcast/zipcast/internal/report"
	"github.com/zipcast/zipcast/internal/scheduler"
	"github.com/zipcast/zipcast/internal/store"
	"github.com/zipcast/zipcast/internal/weather"
	"github.com/zipcast/zipcast/internal/weather/providers"
)

const usage = `usage: zipcast <command> [flags]

commands:
  forecast  geocode a ZIP code, fetch today's forecast and print it
  ingest    fetch today's forecast and upsert it into MySQL
  export    read a stored (zip, date) record back and print it as JSON
  initdb    create the weather_daily table
  serve     expose stored records over HTTP, refreshing periodically
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "forecast":
		err = runForecast(cfg, os.Args[2:])
	case "ingest":
		err = runIngest(cfg, os.Args[2:])
	case "export":
		err = runExport(cfg, os.Args[2:])
	case "initdb":
		err = runInitDB(cfg, os.Args[2:])
	case "serve":
		err = runServe(cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

// newService assembles the pipeline service. st may be nil for the
// forecast-only phase, which never touches storage.
func newService(cfg *config.AppConfig, st weather.Store) (*weather.Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// Shared HTTP client for outbound calls, with a fixed per-call deadline.
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	geocoder := providers.NewNominatimGeocoder(client, cfg.Country, cfg.UserAgent)
	provider := providers.NewOpenMeteoProvider(client, cfg.Timezone)

	return weather.NewService(geocoder, provider, st, report.ConditionLabel, loc), nil
}

func addDBFlags(fs *flag.FlagSet, db *store.Config) {
	fs.StringVar(&db.Host, "db-host", db.Host, "MySQL host")
	fs.StringVar(&db.Port, "db-port", db.Port, "MySQL port")
	fs.StringVar(&db.User, "db-user", db.User, "MySQL user")
	fs.StringVar(&db.Password, "db-pass", db.Password, "MySQL password")
	fs.StringVar(&db.Database, "db-name", db.Database, "MySQL database name")
}

func runForecast(cfg *config.AppConfig, args []string) error {
	fs := flag.NewFlagSet("forecast", flag.ExitOnError)
	zip := fs.String("zip", cfg.Zip, "ZIP code to forecast")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := newService(cfg, nil)
	if err != nil {
		return err
	}

	rec, err := svc.Forecast(context.Background(), *zip)
	if err != nil {
		return err
	}

	fmt.Print(report.Format(rec))
	return nil
}

func runIngest(cfg *config.AppConfig, args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	zip := fs.String("zip", cfg.Zip, "ZIP code to ingest")
	addDBFlags(fs, &cfg.DB)
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := store.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := newService(cfg, st)
	if err != nil {
		return err
	}

	rec, err := svc.Ingest(context.Background(), *zip)
	if err != nil {
		return err
	}

	fmt.Printf("Stored daily weather for ZIP %s on %s (%s).\n", rec.Zip, rec.Date, rec.Condition)
	return nil
}

func runExport(cfg *config.AppConfig, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	zip := fs.String("zip", cfg.Zip, "ZIP code to export")
	date := fs.String("date", "", "local date (YYYY-MM-DD); defaults to today")
	addDBFlags(fs, &cfg.DB)
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := store.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := newService(cfg, st)
	if err != nil {
		return err
	}

	day := *date
	if day == "" {
		day = svc.Today()
	}
	day, err = common.ParseDate(day)
	if err != nil {
		return err
	}

	rec, err := svc.Export(context.Background(), *zip, day)
	if errors.Is(err, weather.ErrNotFound) {
		// A miss is a normal result, not a failure.
		fmt.Printf("No data for %s.\n", day)
		return nil
	}
	if err != nil {
		return err
	}

	out, err := export.Marshal(rec)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runInitDB(cfg *config.AppConfig, args []string) error {
	fs := flag.NewFlagSet("initdb", flag.ExitOnError)
	addDBFlags(fs, &cfg.DB)
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := store.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.InitSchema(context.Background()); err != nil {
		return err
	}

	fmt.Println("weather_daily table is ready.")
	return nil
}

func runServe(cfg *config.AppConfig, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	zip := fs.String("zip", cfg.Zip, "ZIP code to keep refreshed")
	port := fs.String("port", cfg.Port, "HTTP listen port")
	refresh := fs.Duration("refresh", cfg.RefreshInterval, "forecast refresh interval (0 disables)")
	addDBFlags(fs, &cfg.DB)
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := store.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := newService(cfg, st)
	if err != nil {
		return err
	}

	if *refresh > 0 {
		sched := scheduler.New([]string{*zip}, *refresh, svc)
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "zipcast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "zipcast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, svc)

	go func() {
		if err := app.Listen(":" + *port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	return nil
}
