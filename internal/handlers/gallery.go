package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/vila-verde/booking-api/internal/auth"
	"github.com/vila-verde/booking-api/internal/config"
	"github.com/vila-verde/booking-api/internal/models"
	"github.com/vila-verde/booking-api/internal/store"
	"github.com/vila-verde/booking-api/internal/uploads"
)

type GalleryHandler struct {
	cfg         *config.Config
	store       *store.GalleryStore
	uploads     *uploads.Store
	authHandler *auth.AuthHandler
}

func NewGalleryHandler(cfg *config.Config, gallery *store.GalleryStore, files *uploads.Store, authHandler *auth.AuthHandler) *GalleryHandler {
	return &GalleryHandler{
		cfg:         cfg,
		store:       gallery,
		uploads:     files,
		authHandler: authHandler,
	}
}

// GalleryPhotoView is the wire shape of a photo. The id is a string so the
// synthesized defaults below fit alongside persisted rows.
type GalleryPhotoView struct {
	ID           string `json:"id"`
	Image        string `json:"image"`
	Alt          string `json:"alt"`
	DisplayOrder int    `json:"display_order"`
}

// Shown until the first real photo is uploaded, so the gallery is never
// empty on a fresh install. Never persisted.
var defaultGallery = []GalleryPhotoView{
	{Image: "/images/gallery/facade.jpg", Alt: "Guest house facade"},
	{Image: "/images/gallery/room.jpg", Alt: "Double room"},
	{Image: "/images/gallery/terrace.jpg", Alt: "Terrace"},
	{Image: "/images/gallery/garden.jpg", Alt: "Garden"},
}

type ListGalleryResponse struct {
	Body []GalleryPhotoView
}

func (h *GalleryHandler) HandleList(ctx context.Context, input *struct{}) (*ListGalleryResponse, error) {
	photos, err := h.store.GetAll()
	if err != nil {
		log.Printf("Gallery store error: %v", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	if len(photos) == 0 {
		views := make([]GalleryPhotoView, len(defaultGallery))
		for i, p := range defaultGallery {
			p.ID = fmt.Sprintf("default-%d", i)
			p.DisplayOrder = i
			views[i] = p
		}
		return &ListGalleryResponse{Body: views}, nil
	}

	views := make([]GalleryPhotoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, GalleryPhotoView{
			ID:           strconv.FormatUint(uint64(p.ID), 10),
			Image:        p.Image,
			Alt:          p.Alt,
			DisplayOrder: p.DisplayOrder,
		})
	}
	return &ListGalleryResponse{Body: views}, nil
}

// HandleCreate is the admin multipart upload endpoint, mounted behind
// AuthMiddleware.
func (h *GalleryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	fh := formFile(r, "image")
	if fh == nil {
		respondError(w, http.StatusBadRequest, "No image attached")
		return
	}

	name, err := h.uploads.SaveGalleryImage(fh)
	if err != nil {
		respondUploadError(w, err)
		return
	}

	displayOrder, _ := strconv.Atoi(r.FormValue("displayOrder"))
	photo := models.GalleryPhoto{
		Image:        "/uploads/" + name,
		Alt:          r.FormValue("alt"),
		DisplayOrder: displayOrder,
	}
	if err := h.store.Add(&photo); err != nil {
		h.uploads.Remove(name)
		log.Printf("Failed to create gallery photo: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	respondJSON(w, http.StatusCreated, GalleryPhotoView{
		ID:           strconv.FormatUint(uint64(photo.ID), 10),
		Image:        photo.Image,
		Alt:          photo.Alt,
		DisplayOrder: photo.DisplayOrder,
	})
}

type DeletePhotoRequest struct {
	auth.AuthInput
	ID string `path:"id"`
}

func (h *GalleryHandler) HandleDelete(ctx context.Context, input *DeletePhotoRequest) (*DeleteResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	id, err := strconv.ParseUint(input.ID, 10, 32)
	if err != nil {
		// Default placeholders are not persisted and cannot be deleted.
		return nil, huma.Error404NotFound("Photo not found")
	}

	existed, err := h.store.Delete(uint(id))
	if err != nil {
		log.Printf("Gallery store error: %v", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}
	if !existed {
		return nil, huma.Error404NotFound("Photo not found")
	}

	res := &DeleteResponse{}
	res.Body.Deleted = true
	return res, nil
}
