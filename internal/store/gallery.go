package store

import (
	"github.com/vila-verde/booking-api/internal/models"
	"gorm.io/gorm"
)

type GalleryStore struct {
	db *gorm.DB
}

func NewGalleryStore(db *gorm.DB) *GalleryStore {
	return &GalleryStore{db: db}
}

// GetAll returns all photos ordered for display.
func (s *GalleryStore) GetAll() ([]models.GalleryPhoto, error) {
	var photos []models.GalleryPhoto
	if err := s.db.Order("display_order asc, id asc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *GalleryStore) Add(photo *models.GalleryPhoto) error {
	return s.db.Create(photo).Error
}

// Delete hard-deletes a photo. Returns whether a row existed.
func (s *GalleryStore) Delete(id uint) (bool, error) {
	res := s.db.Unscoped().Delete(&models.GalleryPhoto{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
