package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	api "github.com/rpupo63/domp-site-backend/api"
	"github.com/rpupo63/domp-site-backend/config"
	"github.com/rpupo63/domp-site-backend/database"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/rpupo63/domp-site-backend/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setupLogging(c)
	log.Info().Msg("Initializing app...")

	if parameterPath := config.GetString(c, "SSM_PARAMETER_PATH", ""); parameterPath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		applied, err := config.LoadSSM(ctx, c, parameterPath)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Str("path", parameterPath).Msg("Error loading parameters from SSM")
		}
		log.Info().Int("parameters", applied).Str("path", parameterPath).Msg("Loaded configuration from SSM")
	}

	dbType := config.GetString(c, "DB_TYPE", "")
	log.Info().Str("dbType", dbType).Msg("Selecting document store")

	var store database.Store
	switch dbType {
	case "supa", "postgres":
		db, err := openPostgres(c, dbType)
		if err != nil {
			log.Fatal().Err(err).Msg("Error connecting to database")
		}

		// If generating models, run generation and exit
		if config.GetBool(c, "GENERATE_MODELS", false) {
			log.Info().Msg("Generating models and query helpers...")
			models.GenerateModels(db)
			return
		}

		// If generating column mismatch report, run report and exit
		if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
			log.Info().Msg("Generating column mismatch report...")
			models.GenerateColumnMismatchReportStandalone(db)
			return
		}

		gormStore := database.NewGormStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), database.OperationTimeout)
		err = gormStore.Migrate(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("Error migrating documents table")
		}
		store = gormStore
	case "memory":
		log.Warn().Msg("Using in-memory store, data is lost on restart")
		store = database.NewMemoryStore()
	case "":
		log.Warn().Msg("DB_TYPE not set, serving defaults and accepting quotes by email only")
		store = database.UnconfiguredStore{}
	default:
		log.Fatal().Str("dbType", dbType).Msg("Unsupported DB_TYPE")
	}

	currentDB := database.New(store)
	intake := newQuoteIntake(c, currentDB)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, intake, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
}

func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if config.GetBool(c, "LOG_PRETTY", false) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// openPostgres connects to the primary database and, when
// DATABASE_REPLICA_URL is set, routes reads to the replica.
func openPostgres(c map[string]string, dbType string) (*gorm.DB, error) {
	connStr := config.GetString(c, "DATABASE_URL", "")
	if dbType == "supa" && connStr == "" {
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
		log.Info().Msg("Connecting to Supabase database...")
	}
	if connStr == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	gormLogger := logger.New(
		&log.Logger,
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  database.WithTimeouts(connStr),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, err
	}

	if replica := config.GetString(c, "DATABASE_REPLICA_URL", ""); replica != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{
				DSN:                  database.WithTimeouts(replica),
				PreferSimpleProtocol: true,
			})},
			Policy: dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("registering read replica: %w", err)
		}
		log.Info().Msg("Read replica registered")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("testing database connection: %w", err)
	}
	return db, nil
}

func newQuoteIntake(c map[string]string, db database.Database) *services.QuoteIntake {
	mailer := services.NewMailer(
		config.GetString(c, "RESEND_API_KEY", ""),
		config.GetString(c, "QUOTES_FROM_EMAIL", "DomP <onboarding@resend.dev>"),
	)
	whatsapp := services.NewWhatsAppNotifier(
		config.GetString(c, "TWILIO_ACCOUNT_SID", ""),
		config.GetString(c, "TWILIO_AUTH_TOKEN", ""),
		config.GetString(c, "TWILIO_WHATSAPP_FROM", ""),
		config.GetString(c, "QUOTES_WHATSAPP_TO", ""),
	)
	if !whatsapp.Enabled() {
		log.Info().Msg("WhatsApp alerts disabled, TWILIO_* not configured")
	}

	return services.NewQuoteIntake(db.QuoteRepo(), mailer, whatsapp, services.IntakeConfig{
		Recipients: config.GetList(c, "QUOTES_TO_EMAIL"),
		AdminURL:   services.BuildAdminQuotesURL(services.GetBaseURL(c)),
	})
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
