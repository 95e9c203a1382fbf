package adminclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/noievoi/backend/internal/model"
)

func newProjectBackend(initial []*model.Project) http.Handler {
	var mu sync.Mutex
	projects := initial

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(projects)
	})
	mux.HandleFunc("PUT /api/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in ProjectInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		mu.Lock()
		defer mu.Unlock()
		for _, p := range projects {
			if p.ID == r.PathValue("id") {
				p.Title, p.Description, p.Category = in.Title, in.Description, in.Category
				p.Client, p.Location, p.Year = in.Client, in.Location, in.Year
				p.ImageURL, p.Featured = in.ImageURL, in.Featured
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	})
	return mux
}

func TestProjectForm_BeginEdit_PopulatesFields(t *testing.T) {
	form := NewProjectForm(NewClient("http://unused", "tok"))
	form.BeginEdit(&model.Project{
		ID: "p1", Title: "T", Description: "d", Category: "Energy",
		Client: "ACME", Location: "Hamburg", Year: "2023", Featured: true,
	})

	if form.Mode() != ModeEdit {
		t.Errorf("expected edit mode, got %q", form.Mode())
	}
	if form.Title != "T" || form.Client != "ACME" || !form.Featured {
		t.Errorf("fields not populated: %+v", form)
	}
}

func TestProjectForm_Submit_Edit_UpdatesAndCloses(t *testing.T) {
	stored := []*model.Project{{ID: "p1", Title: "Old", Description: "d", Category: "Energy"}}
	srv := httptest.NewServer(newProjectBackend(stored))
	defer srv.Close()

	form := NewProjectForm(NewClient(srv.URL, "tok"))
	if err := form.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	form.BeginEdit(form.Projects()[0])
	form.Title = "New Title"
	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if form.Mode() != ModeClosed {
		t.Error("form must close after a successful submit")
	}
	if form.Projects()[0].Title != "New Title" {
		t.Errorf("expected reloaded list to reflect the update, got %q", form.Projects()[0].Title)
	}
}

func TestProjectForm_ToggleFeatured(t *testing.T) {
	stored := []*model.Project{{ID: "p1", Title: "T", Description: "d", Category: "c", Featured: false}}
	srv := httptest.NewServer(newProjectBackend(stored))
	defer srv.Close()

	form := NewProjectForm(NewClient(srv.URL, "tok"))
	if err := form.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := form.ToggleFeatured(context.Background(), "p1"); err != nil {
		t.Fatalf("ToggleFeatured: %v", err)
	}
	if !form.Projects()[0].Featured {
		t.Error("expected featured=true after toggle")
	}
}
