package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
	"github.com/noievoi/backend/internal/service"
)

// ProjectHandler はポートフォリオプロジェクト CRUD の HTTP ハンドラ
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler は ProjectHandler を生成する
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List は GET /api/projects を処理する（作成日時の降順）
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	respondJSON(w, http.StatusOK, projects)
}

// Get は GET /api/projects/{id} を処理する
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "get_failed")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// createProjectRequest is the expected JSON body for POST /api/projects.
type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Client      string `json:"client"`
	Location    string `json:"location"`
	Year        string `json:"year"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
}

// Create は POST /api/projects を処理する（管理者のみ）
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title_required")
		return
	}
	if req.Description == "" {
		respondError(w, http.StatusBadRequest, "description_required")
		return
	}
	if req.Category == "" {
		respondError(w, http.StatusBadRequest, "category_required")
		return
	}

	project := &model.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Client:      req.Client,
		Location:    req.Location,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
	}

	if err := h.projectService.Create(r.Context(), project); err != nil {
		respondError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	respondJSON(w, http.StatusCreated, project)
}

// Update は PUT /api/projects/{id} を処理する（管理者のみ）。
// ペイロードに含まれないオプション項目は既存値を維持し、明示的に含まれる
// 項目（null/空文字を含む）はその値で上書きする。
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "get_failed")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	for _, f := range []string{"title", "description", "category"} {
		if !hasJSONKey(raw, f) || stringField(raw, f) == "" {
			respondError(w, http.StatusBadRequest, f+"_required")
			return
		}
	}
	existing.Title = stringField(raw, "title")
	existing.Description = stringField(raw, "description")
	existing.Category = stringField(raw, "category")

	if hasJSONKey(raw, "client") {
		existing.Client = stringField(raw, "client")
	}
	if hasJSONKey(raw, "location") {
		existing.Location = stringField(raw, "location")
	}
	if hasJSONKey(raw, "year") {
		existing.Year = stringField(raw, "year")
	}
	if hasJSONKey(raw, "imageUrl") {
		existing.ImageURL = stringField(raw, "imageUrl")
	}
	if b, ok := raw["featured"]; ok {
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_featured")
			return
		}
		existing.Featured = v
	}

	if err := h.projectService.Update(r.Context(), existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	respondJSON(w, http.StatusOK, existing)
}

// Delete は DELETE /api/projects/{id} を処理する（管理者のみ・物理削除）
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
