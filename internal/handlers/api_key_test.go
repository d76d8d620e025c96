package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/vila-verde/booking-api/internal/auth"
)

func TestAPIKeyListMasksKeys(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAPIKeyHandler(env.db, auth.NewAuthHandler(env.cfg, env.db))

	createReq := &CreateAPIKeyInput{}
	createReq.Cookie = env.cookie
	createReq.Body.Name = "dashboard"
	created, err := handler.HandleCreate(context.Background(), createReq)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	fullKey := created.Body.Key
	if len(fullKey) != 64 {
		t.Fatalf("expected 64-char hex key, got %d chars", len(fullKey))
	}

	listReq := &ListAPIKeysInput{}
	listReq.Cookie = env.cookie
	listed, err := handler.HandleList(context.Background(), listReq)
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(listed.Body) != 1 {
		t.Fatalf("expected 1 key, got %d", len(listed.Body))
	}

	got := listed.Body[0].Key
	if got == fullKey {
		t.Error("list response must not contain the full key")
	}
	want := "..." + fullKey[len(fullKey)-4:]
	if got != want {
		t.Errorf("expected masked key %s, got %s", want, got)
	}
	if !strings.HasPrefix(got, "...") {
		t.Errorf("expected masked prefix, got %s", got)
	}
}

func TestAPIKeyDelete(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAPIKeyHandler(env.db, auth.NewAuthHandler(env.cfg, env.db))

	createReq := &CreateAPIKeyInput{}
	createReq.Cookie = env.cookie
	createReq.Body.Name = "scripts"
	created, err := handler.HandleCreate(context.Background(), createReq)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}

	delReq := &DeleteAPIKeyInput{ID: created.Body.ID}
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
