/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the incentive calculator server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize the SQLite plan catalog
  3. Seed missing plan definitions from the FY presets
  4. Build the rule catalog through the factory
  5. Start the server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite database path (default: incentive.db)
           Use ":memory:" for an in-memory catalog

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/incentive.db"

  # Run with in-memory catalog
  ./server -db=":memory:"

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Plan catalog persistence
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gujterce/incentive-calculator/api"
	"github.com/Gujterce/incentive-calculator/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "incentive.db", "SQLite database path")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Seed missing plan definitions with the FY presets
	if err := store.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed plan catalog: %v", err)
	}

	// Initialize handler and load the stored catalog
	handler := api.NewHandler(store)
	if err := handler.LoadCatalog(context.Background()); err != nil {
		log.Fatalf("Failed to load plan catalog: %v", err)
	}

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Incentive calculator listening on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api/plans", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
