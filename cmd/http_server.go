package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/shift-roster/internal"
	"github.com/frahmantamala/shift-roster/internal/auth"
	authPostgres "github.com/frahmantamala/shift-roster/internal/auth/postgres"
	"github.com/frahmantamala/shift-roster/internal/calendar"
	"github.com/frahmantamala/shift-roster/internal/core/events"
	"github.com/frahmantamala/shift-roster/internal/leave"
	leavePostgres "github.com/frahmantamala/shift-roster/internal/leave/postgres"
	"github.com/frahmantamala/shift-roster/internal/leavetype"
	leavetypePostgres "github.com/frahmantamala/shift-roster/internal/leavetype/postgres"
	"github.com/frahmantamala/shift-roster/internal/schedule"
	schedulePostgres "github.com/frahmantamala/shift-roster/internal/schedule/postgres"
	"github.com/frahmantamala/shift-roster/internal/transport"
	"github.com/frahmantamala/shift-roster/internal/transport/rest"
	"github.com/frahmantamala/shift-roster/internal/user"
	userPostgres "github.com/frahmantamala/shift-roster/internal/user/postgres"
	"github.com/frahmantamala/shift-roster/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Roles    *auth.RoleAuthorization
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Roles, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// gorm rides on the same pgx connection pool as the raw handle
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	bus := events.NewEventBus(lg)
	registerEventSubscribers(bus, lg)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)

	authRepo := authPostgres.NewRepository(gormDB)
	authService := auth.NewService(authRepo, tokenGen, config.Security.BCryptCost, lg)
	authHandler := auth.NewHandler(authService)
	roles := auth.NewRoleAuthorization(lg)

	userRepo := userPostgres.NewUserRepository(gormDB)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	leaveTypeRepo := leavetypePostgres.NewLeaveTypeRepository(gormDB)
	leaveTypeService := leavetype.NewService(leaveTypeRepo, lg)
	leaveTypeHandler := leavetype.NewHandler(transport.NewBaseHandler(lg), leaveTypeService)

	leaveRepo := leavePostgres.NewLeaveRepository(gormDB)
	leaveService := leave.NewService(leaveRepo, leaveTypeService, bus, lg)
	leaveHandler := leave.NewHandler(leaveService)

	scheduleRepo := schedulePostgres.NewScheduleRepository(gormDB)
	scheduleService := schedule.NewService(scheduleRepo, lg)
	scheduleHandler := schedule.NewHandler(scheduleService)

	calendarService := calendar.NewService(scheduleService, leaveService, scheduleRepo, lg)
	calendarHandler := calendar.NewHandler(calendarService)

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		Router: chi.NewRouter(),
		Roles:  roles,
		Handlers: rest.Handlers{
			Auth:      authHandler,
			User:      userHandler,
			Schedule:  scheduleHandler,
			Leave:     leaveHandler,
			LeaveType: leaveTypeHandler,
			Calendar:  calendarHandler,
		},
	}, nil
}

// registerEventSubscribers wires the audit log onto the leave lifecycle.
func registerEventSubscribers(bus *events.EventBus, lg *slog.Logger) {
	logEvent := func(ctx context.Context, event events.Event) error {
		lg.Info("leave event",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	bus.Subscribe(events.LeaveSubmitted, logEvent)
	bus.Subscribe(events.LeaveApproved, logEvent)
	bus.Subscribe(events.LeaveRejected, logEvent)
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
