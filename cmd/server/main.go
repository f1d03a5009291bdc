package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"crossfit-gym-platform/internal/config"
	"crossfit-gym-platform/internal/database"
	"crossfit-gym-platform/internal/handlers"
	"crossfit-gym-platform/internal/middleware"
	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/repositories"
	"crossfit-gym-platform/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Lead storage: Postgres when reachable, in-memory otherwise so the
	// site stays up without a database.
	var leadStore services.LeadStore

	dbConfig := database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Printf("Warning: Failed to connect to database: %v", err)
		log.Println("Continuing with in-memory lead storage; leads are lost on restart")
		leadStore = services.NewMemoryLeadStore()
	} else {
		defer db.Close()
		log.Println("Database connection established successfully")

		if err := db.RunMigrations(); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}

		leadStore = repositories.NewLeadRepository(db.DB)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize services
	var emailService services.EmailServiceInterface
	if cfg.Resend.APIKey != "" {
		emailService = services.NewResendEmailService(services.ResendConfig{
			APIKey:    cfg.Resend.APIKey,
			FromEmail: cfg.Resend.FromEmail,
			FromName:  cfg.Resend.FromName,
			LeadEmail: cfg.Resend.LeadEmail,
		})
	} else {
		emailService = services.NewMockEmailService()
		log.Println("Using mock email service (Resend API key not configured)")
	}

	leadService := services.NewLeadService(leadStore, emailService)
	shopService := services.NewShopService(services.ShopConfig{BaseURL: cfg.Shop.BaseURL})
	scheduleService := services.NewWodifyService(services.WodifyConfig{
		BaseURL: cfg.Wodify.BaseURL,
		APIKey:  cfg.Wodify.APIKey,
	})

	llmClient := services.NewLLMClient(services.LLMConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})
	assistantService := services.NewAssistantService(llmClient, time.Duration(cfg.Assistant.ThinkingDelayMs)*time.Millisecond)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret)
	submitLimiter := middleware.NewSubmitRateLimiter(10, time.Minute)

	// Initialize handlers
	bookingHandler := handlers.NewBookingHandler(leadService, sessionStore)
	leadHandler := handlers.NewLeadHandler(leadService)
	adminHandler := handlers.NewAdminHandler(leadService)
	shopHandler := handlers.NewShopHandler(shopService, sessionStore)
	cartHandler := handlers.NewCartHandler(shopService, sessionStore)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	assistantHandler := handlers.NewAssistantHandler(assistantService, sessionStore)

	// Initialize router
	r := chi.NewRouter()

	// Basic middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.SecurityHeadersMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(authMiddleware.LoadUser)

	// Lead intake
	r.Route("/api/leads", func(r chi.Router) {
		r.Use(middleware.SubmitRateLimit(submitLimiter))
		r.Post("/", leadHandler.CreateLead)
	})

	// Booking wizard. Only the final submit counts against the rate limit;
	// per-field saves and step navigation must stay cheap for the client.
	r.Route("/api/booking", func(r chi.Router) {
		r.Get("/", bookingHandler.GetState)
		r.Post("/data", bookingHandler.UpdateData)
		r.Post("/next", bookingHandler.Next)
		r.Post("/back", bookingHandler.Back)
		r.With(middleware.SubmitRateLimit(submitLimiter)).Post("/submit", bookingHandler.Submit)
		r.Post("/reset", bookingHandler.Reset)
	})

	// Shop
	r.Route("/api/shop", func(r chi.Router) {
		r.Get("/products", shopHandler.ListProducts)
		r.Get("/products/{id}", shopHandler.GetProduct)
		r.Get("/products/{id}/reviews", shopHandler.ListReviews)

		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Patch("/cart/items/{id}", cartHandler.UpdateItem)
		r.Delete("/cart/items/{id}", cartHandler.RemoveItem)

		// Member-only shop routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/products/{id}/reviews", shopHandler.CreateReview)
			r.Get("/wishlist", shopHandler.GetWishlist)
			r.Post("/wishlist/{id}", shopHandler.AddToWishlist)
			r.Delete("/wishlist/{id}", shopHandler.RemoveFromWishlist)
			r.Post("/orders", shopHandler.CreateOrder)
			r.Get("/orders", shopHandler.ListOrders)
		})
	})

	// Schedule
	r.Route("/api/schedule", func(r chi.Router) {
		r.Get("/classes", scheduleHandler.ListClasses)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/book", scheduleHandler.BookClass)
			r.Post("/waitlist", scheduleHandler.JoinWaitlist)
		})
	})

	// Assistant
	r.Route("/api/assistant", func(r chi.Router) {
		r.Get("/chat", assistantHandler.GetTranscript)
		r.Post("/chat", assistantHandler.Chat)
		r.Post("/chat/reset", assistantHandler.Reset)
		r.Post("/phone", assistantHandler.PhoneTurn)
		r.Post("/phone/finish", assistantHandler.FinishSpeaking)
	})

	// Admin routes
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Use(authMiddleware.RequireRole(models.UserRoleAdmin))

		r.Get("/leads", adminHandler.ListLeads)
		r.Get("/leads/stats", adminHandler.LeadStatistics)
		r.Get("/leads/{id}", leadHandler.GetLead)
		r.Post("/leads/{id}/status", adminHandler.UpdateLeadStatus)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"crossfit-gym-platform"}`))
	})

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s (Environment: %s)", serverAddr, cfg.Server.Env)
	log.Fatal(http.ListenAndServe(serverAddr, r))
}
