package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vila-verde/booking-api/internal/auth"
	"github.com/vila-verde/booking-api/internal/config"
	"github.com/vila-verde/booking-api/internal/database"
	"github.com/vila-verde/booking-api/internal/handlers"
	"github.com/vila-verde/booking-api/internal/notifier"
	"github.com/vila-verde/booking-api/internal/store"
	"github.com/vila-verde/booking-api/internal/uploads"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	bookingStore := store.NewBookingStore(db)
	galleryStore := store.NewGalleryStore(db)

	uploadStore, err := uploads.New(cfg.UploadDir, cfg.MaxIDPhotoSize, cfg.MaxPaymentProofSize)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	// Chat destinations for new-booking notifications
	var targets []notifier.Notifier

	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			targets = append(targets, notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID, cfg.PublicBaseURL))
		}
	}

	if cfg.TelegramBotToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			log.Printf("Telegram notifier not initialized: %v", err)
		} else {
			tg := notifier.NewTelegramNotifier(bot, cfg.TelegramChatID, cfg.PublicBaseURL)
			targets = append(targets, tg)
			// Approve/reject buttons come back through the same store rules.
			go tg.Run(bookingStore)
		}
	}

	dispatcher := notifier.NewDispatcher(targets...)

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db)
	bookingHandler := handlers.NewBookingHandler(cfg, bookingStore, uploadStore, dispatcher, authHandler)
	galleryHandler := handlers.NewGalleryHandler(cfg, galleryStore, uploadStore, authHandler)
	apiKeyHandler := handlers.NewAPIKeyHandler(db, authHandler)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, bookingHandler, galleryHandler, apiKeyHandler, uploadStore.Dir())

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
