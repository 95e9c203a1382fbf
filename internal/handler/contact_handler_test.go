package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc       func(ctx context.Context, msg *model.ContactMessage) error
	listFunc         func(ctx context.Context) ([]*model.ContactMessage, error)
	getByIDFunc      func(ctx context.Context, id string) (*model.ContactMessage, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactService) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockContactService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newContactMux(h *ContactHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /api/contact", http.HandlerFunc(h.Submit))
	mux.Handle("GET /api/contact", http.HandlerFunc(h.List))
	mux.Handle("GET /api/contact/{id}", http.HandlerFunc(h.Get))
	mux.Handle("PATCH /api/contact/{id}", http.HandlerFunc(h.PatchStatus))
	mux.Handle("DELETE /api/contact/{id}", http.HandlerFunc(h.Delete))
	return mux
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.ContactMessage
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			captured = msg
			msg.ID = "generated-id"
			msg.Status = model.ContactStatusUnread
			msg.Subject = model.DefaultContactSubject
			msg.CreatedAt = time.Now()
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","message":"Hello!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called with a ContactMessage, got nil")
	}
	if captured.Name != "Alice" || captured.Email != "alice@example.com" {
		t.Errorf("unexpected captured message: %+v", captured)
	}

	var resp model.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "generated-id" {
		t.Errorf("expected stored record in response, got id=%q", resp.ID)
	}
	if resp.Status != model.ContactStatusUnread {
		t.Errorf("expected status=unread, got %q", resp.Status)
	}
}

// TestContactHandler_Submit_RequiredFields verifies the first missing field
// is reported and the service is never called.
func TestContactHandler_Submit_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing name", `{"email":"a@b.com","message":"hi"}`, "name_required"},
		{"missing email", `{"name":"Bob","message":"hi"}`, "email_required"},
		{"missing message", `{"name":"Bob","email":"a@b.com"}`, "message_required"},
		{"empty name", `{"name":"","email":"a@b.com","message":"hi"}`, "name_required"},
		{"all missing reports name first", `{}`, "name_required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mock := &mockContactService{
				submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
					called = true
					return nil
				},
			}
			h := NewContactHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			var resp map[string]string
			_ = json.NewDecoder(rec.Body).Decode(&resp)
			if resp["error"] != tt.wantErr {
				t.Errorf("expected error=%s, got %q", tt.wantErr, resp["error"])
			}
			if called {
				t.Error("service must not be called on validation failure")
			}
		})
	}
}

// TestContactHandler_Submit_MessageTooLong verifies messages over 5000 chars return 400.
func TestContactHandler_Submit_MessageTooLong(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)

	body, _ := json.Marshal(map[string]string{
		"name":    "Alice",
		"email":   "a@b.com",
		"message": strings.Repeat("a", 5001),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for message > 5000 chars, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "message_too_long" {
		t.Errorf("expected error=message_too_long, got %q", resp["error"])
	}
}

// TestContactHandler_Submit_MessageAtMaxLength verifies a 5000 char message is accepted.
func TestContactHandler_Submit_MessageAtMaxLength(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)

	body, _ := json.Marshal(map[string]string{
		"name":    "Alice",
		"email":   "a@b.com",
		"message": strings.Repeat("x", 5000),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 at exactly 5000 chars, got %d — body: %s", rec.Code, rec.Body.String())
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{bad json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("db connection lost")
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"a@b.com","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_List(t *testing.T) {
	now := time.Now()
	want := []*model.ContactMessage{
		{ID: "1", Name: "Alice", Email: "a@b.com", Message: "Hi", Status: "unread", CreatedAt: now},
		{ID: "2", Name: "Bob", Email: "c@d.com", Message: "Hello", Status: "read", CreatedAt: now},
	}
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactMessage, error) {
			return want, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []*model.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestContactHandler_List_Empty verifies an empty list serializes as [] not null.
func TestContactHandler_List_Empty(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactMessage, error) {
			return nil, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected [], got %s", body)
	}
}

// ---------------------------------------------------------------------------
// GET /api/contact/{id} tests
// ---------------------------------------------------------------------------

func TestContactHandler_Get_NotFound(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)
	mux := newContactMux(h)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/nope", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// PATCH /api/contact/{id} tests
// ---------------------------------------------------------------------------

func TestContactHandler_PatchStatus_Success(t *testing.T) {
	stored := &model.ContactMessage{ID: "m1", Name: "Alice", Email: "a@b.com", Message: "Hi", Status: "unread"}
	mock := &mockContactService{
		updateStatusFunc: func(ctx context.Context, id, status string) error {
			if id != "m1" {
				t.Errorf("expected id=m1, got %q", id)
			}
			stored.Status = status
			return nil
		},
		getByIDFunc: func(ctx context.Context, id string) (*model.ContactMessage, error) {
			return stored, nil
		},
	}
	h := NewContactHandler(mock)
	mux := newContactMux(h)

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/m1", strings.NewReader(`{"status":"read"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var got model.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "read" {
		t.Errorf("expected status=read in response, got %q", got.Status)
	}
}

func TestContactHandler_PatchStatus_InvalidStatus(t *testing.T) {
	called := false
	mock := &mockContactService{
		updateStatusFunc: func(ctx context.Context, id, status string) error {
			called = true
			return nil
		},
	}
	h := NewContactHandler(mock)
	mux := newContactMux(h)

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/m1", strings.NewReader(`{"status":"archived"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "invalid_status" {
		t.Errorf("expected error=invalid_status, got %q", resp["error"])
	}
	if called {
		t.Error("service must not be called for invalid status")
	}
}

// TestContactHandler_PatchStatus_IgnoresOtherFields verifies extra payload
// fields cannot alter anything but status.
func TestContactHandler_PatchStatus_IgnoresOtherFields(t *testing.T) {
	stored := &model.ContactMessage{ID: "m1", Name: "Alice", Email: "a@b.com", Message: "Hi", Status: "unread"}
	mock := &mockContactService{
		updateStatusFunc: func(ctx context.Context, id, status string) error {
			stored.Status = status
			return nil
		},
		getByIDFunc: func(ctx context.Context, id string) (*model.ContactMessage, error) {
			return stored, nil
		},
	}
	h := NewContactHandler(mock)
	mux := newContactMux(h)

	body := `{"status":"replied","email":"evil@example.com","message":"overwritten"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/contact/m1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stored.Email != "a@b.com" || stored.Message != "Hi" {
		t.Errorf("non-status fields must be untouched: %+v", stored)
	}
	if stored.Status != "replied" {
		t.Errorf("expected status=replied, got %q", stored.Status)
	}
}

func TestContactHandler_PatchStatus_NotFound(t *testing.T) {
	mock := &mockContactService{
		updateStatusFunc: func(ctx context.Context, id, status string) error {
			return repository.ErrNotFound
		},
	}
	h := NewContactHandler(mock)
	mux := newContactMux(h)

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/nope", strings.NewReader(`{"status":"read"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/contact/{id} tests
// ---------------------------------------------------------------------------

func TestContactHandler_Delete_Success(t *testing.T) {
	var deletedID string
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	h := NewContactHandler(mock)
	mux := newContactMux(h)

	req := httptest.NewRequest(http.MethodDelete, "/api/contact/m1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deletedID != "m1" {
		t.Errorf("expected delete of m1, got %q", deletedID)
	}
	var resp map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp["success"] {
		t.Errorf("expected {\"success\": true}, got %v", resp)
	}
}

func TestContactHandler_Delete_NotFound(t *testing.T) {
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	h := NewContactHandler(mock)
	mux := newContactMux(h)

	req := httptest.NewRequest(http.MethodDelete, "/api/contact/nope", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
