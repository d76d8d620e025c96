package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vila-verde/booking-api/internal/auth"
	"github.com/vila-verde/booking-api/internal/models"
	"github.com/vila-verde/booking-api/internal/store"
	"github.com/vila-verde/booking-api/internal/uploads"
)

func newGalleryEnv(t *testing.T) (*testEnv, *GalleryHandler) {
	t.Helper()
	env := newTestEnv(t)
	files, err := uploads.New(t.TempDir(), 1<<20, 2<<20)
	if err != nil {
		t.Fatalf("uploads.New returned error: %v", err)
	}
	handler := NewGalleryHandler(env.cfg, store.NewGalleryStore(env.db), files, auth.NewAuthHandler(env.cfg, env.db))
	return env, handler
}

func TestGalleryDefaults(t *testing.T) {
	_, handler := newGalleryEnv(t)

	resp, err := handler.HandleList(context.Background(), &struct{}{})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(resp.Body) == 0 {
		t.Fatal("expected default photos for empty gallery")
	}
	for i, p := range resp.Body {
		if want := fmt.Sprintf("default-%d", i); p.ID != want {
			t.Errorf("expected synthesized id %s, got %s", want, p.ID)
		}
		if p.DisplayOrder != i {
			t.Errorf("expected sequential display order, got %d at %d", p.DisplayOrder, i)
		}
	}
}

func TestGalleryListPersisted(t *testing.T) {
	env, handler := newGalleryEnv(t)

	photos := store.NewGalleryStore(env.db)
	photos.Add(&models.GalleryPhoto{Image: "/uploads/a.jpg", Alt: "A", DisplayOrder: 2})
	photos.Add(&models.GalleryPhoto{Image: "/uploads/b.jpg", Alt: "B", DisplayOrder: 1})

	resp, err := handler.HandleList(context.Background(), &struct{}{})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(resp.Body) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(resp.Body))
	}
	if resp.Body[0].Alt != "B" {
		t.Errorf("expected display order sort, got %s first", resp.Body[0].Alt)
	}
	if strings.HasPrefix(resp.Body[0].ID, "default-") {
		t.Errorf("persisted rows must not use default ids, got %s", resp.Body[0].ID)
	}
}

func TestGalleryCreateAndDelete(t *testing.T) {
	env, handler := newGalleryEnv(t)

	rr := httptest.NewRecorder()
	req := multipartRequest(t, []formField{{"alt", "Garden"}, {"displayOrder", "4"}}, map[string][]byte{"image": pngHeader})
	handler.HandleCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var created GalleryPhotoView
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if created.Alt != "Garden" || created.DisplayOrder != 4 {
		t.Errorf("unexpected photo: %+v", created)
	}
	if !strings.HasPrefix(created.Image, "/uploads/") {
		t.Errorf("expected image under /uploads/, got %s", created.Image)
	}

	delReq := &DeletePhotoRequest{ID: created.ID}
	delReq.Cookie = env.cookie
	resp, err := handler.HandleDelete(context.Background(), delReq)
	if err != nil {
		t.Fatalf("HandleDelete returned error: %v", err)
	}
	if !resp.Body.Deleted {
		t.Error("expected deleted=true")
	}

	_, err = handler.HandleDelete(context.Background(), delReq)
	assertStatus(t, err, 404)
}

func TestGalleryDeleteDefaultID(t *testing.T) {
	env, handler := newGalleryEnv(t)

	req := &DeletePhotoRequest{ID: "default-0"}
	req.Cookie = env.cookie
	_, err := handler.HandleDelete(context.Background(), req)
	assertStatus(t, err, 404)
}

func TestGalleryCreateRequiresImage(t *testing.T) {
	_, handler := newGalleryEnv(t)

	rr := httptest.NewRecorder()
	handler.HandleCreate(rr, multipartRequest(t, []formField{{"alt", "Garden"}}, nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without image, got %d", rr.Code)
	}
}
