package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/creatorly/creator-copilot/internal/ai"
	"github.com/creatorly/creator-copilot/internal/copilot"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// --- DB ---
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Client-Info"},
	}))

	// --- Copilot module wiring ---
	// A missing gateway key is not fatal here: it surfaces as 503 per
	// request, before any call is attempted.
	aiClient := ai.NewGatewayClient(ai.Config{
		APIKey:  os.Getenv("AI_GATEWAY_KEY"),
		BaseURL: os.Getenv("AI_GATEWAY_URL"),
		Model:   os.Getenv("AI_MODEL"),
	})
	profileRepo := copilot.NewRepo(db)
	copilotService := copilot.NewService(aiClient)
	copilotHandler := copilot.NewHandler(copilotService, profileRepo)

	copilot.RegisterRoutes(r, copilotHandler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
