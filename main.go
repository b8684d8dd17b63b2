package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kidcare/auth"
	"kidcare/bookings"
	"kidcare/config"
	"kidcare/db"
	"kidcare/globals"
	"kidcare/middleware"
	"kidcare/nannies"
	"kidcare/pay"
	"kidcare/ratelim"
	"kidcare/reviews"
	"kidcare/routes"
	"kidcare/services"
	"kidcare/stripe"
	"kidcare/users"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// requestID tags each request with an id for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), globals.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		id, _ := r.Context().Value(globals.RequestIDKey).(string)
		log.Printf("%s %s %s from %s – %v", id, r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple liveness handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "Kidcare server is running")
}

// Health is a simple health check handler.
func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(cols *db.Collections, tokens *auth.TokenService, intents stripe.IntentCreator) *httprouter.Router {
	router := httprouter.New()
	router.GET("/", Index)
	router.GET("/health", Health)

	rateLimiter := ratelim.NewRateLimiter()
	guard := middleware.NewGuard(tokens, cols.Users)

	routes.AddAuthRoutes(router, rateLimiter, auth.NewHandler(tokens))
	routes.AddUserRoutes(router, guard, users.NewService(cols.Users))
	routes.AddServiceRoutes(router, guard, services.NewService(cols.Services))
	routes.AddNannyRoutes(router, nannies.NewService(cols.Nannies))
	routes.AddReviewRoutes(router, rateLimiter, reviews.NewService(cols.Reviews))
	routes.AddBookingRoutes(router, guard, rateLimiter, bookings.NewService(cols.Bookings))
	routes.AddPayRoutes(router, guard, rateLimiter, pay.NewService(cols.Payments, intents))

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	client, cols, err := db.Connect(connectCtx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	log.Println("Pinged your deployment. Successfully connected to MongoDB")

	tokens := auth.NewTokenService([]byte(cfg.TokenSecret))
	intents := stripe.NewClient(cfg.StripeKey)

	router := setupRouter(cols, tokens, intents)

	// apply middleware: request id → logging → security headers → CORS → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := requestID(loggingMiddleware(securityHeaders(corsHandler)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Kidcare server listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting MongoDB client: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
