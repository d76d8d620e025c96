package store

import (
	"testing"

	"github.com/vila-verde/booking-api/internal/models"
)

func TestGalleryOrder(t *testing.T) {
	s := NewGalleryStore(newTestDB(t))

	photos := []models.GalleryPhoto{
		{Image: "/uploads/terrace.jpg", Alt: "Terrace", DisplayOrder: 3},
		{Image: "/uploads/room1.jpg", Alt: "Room 1", DisplayOrder: 1},
		{Image: "/uploads/garden.jpg", Alt: "Garden", DisplayOrder: 2},
	}
	for i := range photos {
		if err := s.Add(&photos[i]); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	all, err := s.GetAll()
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(all))
	}
	if all[0].Alt != "Room 1" || all[1].Alt != "Garden" || all[2].Alt != "Terrace" {
		t.Errorf("unexpected order: %s, %s, %s", all[0].Alt, all[1].Alt, all[2].Alt)
	}
}

func TestGalleryDelete(t *testing.T) {
	s := NewGalleryStore(newTestDB(t))

	photo := models.GalleryPhoto{Image: "/uploads/room2.jpg", Alt: "Room 2"}
	if err := s.Add(&photo); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	existed, err := s.Delete(photo.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !existed {
		t.Error("expected existed=true for known id")
	}

	existed, err = s.Delete(photo.ID)
	if err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
	if existed {
		t.Error("expected existed=false for deleted id")
	}

	all, err := s.GetAll()
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty gallery, got %d rows", len(all))
	}
}
