package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vila-verde/booking-api/internal/auth"
)

func withCookieAuth(o *huma.Operation) {
	o.Security = []map[string][]string{{"cookieAuth": {}}}
}

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, bookingHandler *BookingHandler, galleryHandler *GalleryHandler, apiKeyHandler *APIKeyHandler, uploadDir string) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Vila Verde Booking API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	r.Get("/auth/discord/login", authHandler.HandleLogin)
	r.Get("/auth/discord/callback", authHandler.HandleCallback)
	huma.Get(api, "/auth/me", authHandler.HandleMe, withCookieAuth)

	// Bookings. check-availability is registered before the {id} routes so
	// the literal segment never gets captured as an id parameter.
	huma.Get(api, "/api/bookings/check-availability", bookingHandler.HandleCheckAvailability)
	huma.Get(api, "/api/bookings", bookingHandler.HandleList, withCookieAuth)
	huma.Get(api, "/api/bookings/{id}/invoice", bookingHandler.HandleInvoice)
	huma.Patch(api, "/api/bookings/{id}/confirm", bookingHandler.HandleConfirm, withCookieAuth)
	huma.Patch(api, "/api/bookings/{id}/reject", bookingHandler.HandleReject, withCookieAuth)
	huma.Patch(api, "/api/bookings/{id}/cancel", bookingHandler.HandleCancel, withCookieAuth)
	huma.Patch(api, "/api/bookings/{id}/dates", bookingHandler.HandleUpdateDates, withCookieAuth)
	huma.Get(api, "/api/bookings/{id}", bookingHandler.HandleGet)
	huma.Delete(api, "/api/bookings/{id}", bookingHandler.HandleDelete, withCookieAuth)

	// Guest submissions carry file uploads, so creation stays a plain
	// multipart handler.
	r.Post("/api/bookings", bookingHandler.HandleCreate)

	// Gallery
	huma.Get(api, "/api/gallery", galleryHandler.HandleList)
	huma.Delete(api, "/api/gallery/{id}", galleryHandler.HandleDelete, withCookieAuth)
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Post("/api/gallery", galleryHandler.HandleCreate)
	})

	// API keys
	huma.Post(api, "/api/keys", apiKeyHandler.HandleCreate, withCookieAuth)
	huma.Get(api, "/api/keys", apiKeyHandler.HandleList, withCookieAuth)
	huma.Delete(api, "/api/keys/{id}", apiKeyHandler.HandleDelete, withCookieAuth)

	// Uploaded files
	files := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/uploads/*", files.ServeHTTP)
}
