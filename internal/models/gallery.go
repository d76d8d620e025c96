package models

import (
	"gorm.io/gorm"
)

type GalleryPhoto struct {
	gorm.Model
	Image        string `json:"image"` // URL or /uploads/ path
	Alt          string `json:"alt"`
	DisplayOrder int    `json:"display_order"`
}
