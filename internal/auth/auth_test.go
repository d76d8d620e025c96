package auth

import (
	"context"
	"testing"

	"github.com/vila-verde/booking-api/internal/config"
	"github.com/vila-verde/booking-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestHandleMe(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&models.User{})

	user := models.User{
		DiscordID: "123456",
		Username:  "testadmin",
		Email:     "admin@example.com",
		Avatar:    "avatar_url",
	}
	db.Create(&user)

	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	t.Run("Authenticated", func(t *testing.T) {
		token, _ := handler.GenerateToken(user.ID)
		input := &AuthInput{
			Cookie: "auth_token=" + token,
		}
		resp, err := handler.HandleMe(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleMe returned error: %v", err)
		}

		if resp.Body.Username != user.Username {
			t.Errorf("expected username %s, got %s", user.Username, resp.Body.Username)
		}
		if resp.Body.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, resp.Body.Email)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		input := &AuthInput{}
		_, err := handler.HandleMe(context.Background(), input)
		if err == nil {
			t.Fatal("expected error for unauthenticated request, got nil")
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewAuthHandler(&config.Config{JWTSecret: "other-secret"}, db)
		token, _ := other.GenerateToken(user.ID)
		input := &AuthInput{Cookie: "auth_token=" + token}
		if _, err := handler.HandleMe(context.Background(), input); err == nil {
			t.Fatal("expected error for token signed with wrong secret")
		}
	})
}

func TestIsAdmin(t *testing.T) {
	t.Run("EmptyWhitelistAllowsAnyone", func(t *testing.T) {
		handler := NewAuthHandler(&config.Config{}, nil)
		if !handler.isAdmin("42") {
			t.Error("expected empty whitelist to allow any account")
		}
	})

	t.Run("WhitelistEnforced", func(t *testing.T) {
		handler := NewAuthHandler(&config.Config{DiscordAdminIDs: []string{"100", "200"}}, nil)
		if !handler.isAdmin("200") {
			t.Error("expected whitelisted id to be admin")
		}
		if handler.isAdmin("300") {
			t.Error("expected non-whitelisted id to be refused")
		}
	})
}
