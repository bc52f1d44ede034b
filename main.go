package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/capstone-expo/grading-server/cliparse"
	"github.com/capstone-expo/grading-server/db"
	"github.com/capstone-expo/grading-server/router"
	"github.com/capstone-expo/grading-server/sessions"
	"github.com/capstone-expo/grading-server/templates"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection. Nothing works without storage, so an unreachable
	// database puts the whole process into maintenance mode: every route
	// serves the static unavailable page until an operator restarts us.
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed, entering maintenance mode", "error", err)
		serve(maintenanceMux(), cfg.Port)
		return
	}

	// Create schema (tables) and seed the default accounts
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	created, err := db.SeedUsers(dbConn)
	if err != nil {
		slog.Error("user seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "seeded_users", created)

	// Session store and router
	store := sessions.NewStore(cfg.SessionTTL)
	mux := router.NewRouter(dbConn, store)

	serve(mux, cfg.Port)
}

// maintenanceMux serves the static service-unavailable page on every path.
func maintenanceMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		templates.Render(w, http.StatusServiceUnavailable, "unavailable.html", nil)
	})
	return mux
}

func serve(mux *http.ServeMux, port int) {
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", port)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
