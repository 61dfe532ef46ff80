package main

import (
	"fmt"
	nethttp "net/http"
	"os"
	"strings"
	"time"

	"checkout/cmd"
	httpin "checkout/internal/adapters/in/http"
	"checkout/internal/adapters/out/postgres/orderrepo"
	"checkout/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	startJobs(&app, configs)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		Currency:              goDotEnvVariable("STORE_CURRENCY"),
		PromoServiceURL:       goDotEnvVariable("PROMO_SERVICE_URL"),
		PaymentMethods:        splitList(goDotEnvVariable("PAYMENT_METHODS")),
		PrivilegedUserIDs:     splitList(goDotEnvVariable("PRIVILEGED_USER_IDS")),
		DefaultAddressStreet:  goDotEnvVariable("DEFAULT_ADDRESS_STREET"),
		DefaultAddressCity:    goDotEnvVariable("DEFAULT_ADDRESS_CITY"),
		DefaultAddressZip:     goDotEnvVariable("DEFAULT_ADDRESS_ZIP"),
		DefaultAddressCountry: goDotEnvVariable("DEFAULT_ADDRESS_COUNTRY"),
		SweepSchedule:         goDotEnvVariable("SWEEP_SCHEDULE"),
		SweepStaleAfter:       goDotEnvVariable("SWEEP_STALE_AFTER"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) {
	staleAfter, err := time.ParseDuration(configs.SweepStaleAfter)
	if err != nil {
		log.Fatalf("Invalid SWEEP_STALE_AFTER value: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleCheckoutsCommandHandler(),
		configs.SweepSchedule,
		staleAfter,
		logger,
	)

	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceCheckoutCommandHandler(),
		app.CreateUpdateCheckoutCommandHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
