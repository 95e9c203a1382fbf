package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
	"github.com/noievoi/backend/internal/service"
)

// ServiceHandler はサービス（提供メニュー）CRUD の HTTP ハンドラ
type ServiceHandler struct {
	serviceService service.ServiceService
}

// NewServiceHandler は ServiceHandler を生成する
func NewServiceHandler(serviceService service.ServiceService) *ServiceHandler {
	return &ServiceHandler{serviceService: serviceService}
}

// List は GET /api/services を処理する（表示順の昇順）
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceService.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	respondJSON(w, http.StatusOK, services)
}

// Get は GET /api/services/{id} を処理する
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	svc, err := h.serviceService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "get_failed")
		return
	}
	respondJSON(w, http.StatusOK, svc)
}

// createServiceRequest is the expected JSON body for POST /api/services.
// The slug arrives from the admin form, which derives it from the title; the
// server validates presence only and stores it as submitted.
type createServiceRequest struct {
	Title       string                 `json:"title"`
	Slug        string                 `json:"slug"`
	Description string                 `json:"description"`
	ImagePath   string                 `json:"imagePath"`
	Icon        string                 `json:"icon"`
	Benefits    []model.ServiceBenefit `json:"benefits"`
	Published   *bool                  `json:"published"`
}

// Create は POST /api/services を処理する（管理者のみ）。
// 表示順はサーバー側で採番される（既存の最大値 + 1）。
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title_required")
		return
	}
	if req.Slug == "" {
		respondError(w, http.StatusBadRequest, "slug_required")
		return
	}
	if req.Description == "" {
		respondError(w, http.StatusBadRequest, "description_required")
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	svc := &model.Service{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		ImagePath:   req.ImagePath,
		Icon:        req.Icon,
		Benefits:    req.Benefits,
		Published:   published,
	}

	if err := h.serviceService.Create(r.Context(), svc); err != nil {
		respondError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	respondJSON(w, http.StatusCreated, svc)
}

// Update は PUT /api/services/{id} を処理する（管理者のみ）。
// title/slug/description は必須。ペイロードに含まれない項目は既存値を維持し、
// 明示的に含まれる項目（null/空文字を含む）はその値で上書きする。
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.serviceService.GetByID(r.Context(), id)
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

	for _, f := range []string{"title", "slug", "description"} {
		if !hasJSONKey(raw, f) || stringField(raw, f) == "" {
			respondError(w, http.StatusBadRequest, f+"_required")
			return
		}
	}
	existing.Title = stringField(raw, "title")
	existing.Slug = stringField(raw, "slug")
	existing.Description = stringField(raw, "description")

	if hasJSONKey(raw, "imagePath") {
		existing.ImagePath = stringField(raw, "imagePath")
	}
	if hasJSONKey(raw, "icon") {
		// icon keeps the stored value when submitted empty; there is no
		// meaningful "no icon" state
		if v := stringField(raw, "icon"); v != "" {
			existing.Icon = v
		}
	}
	if b, ok := raw["benefits"]; ok {
		var v []model.ServiceBenefit
		if err := json.Unmarshal(b, &v); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_benefits")
			return
		}
		existing.Benefits = v
	}
	if b, ok := raw["order"]; ok {
		var v int
		if err := json.Unmarshal(b, &v); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_order")
			return
		}
		existing.Order = v
	}
	if b, ok := raw["published"]; ok {
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_published")
			return
		}
		existing.Published = v
	}

	if err := h.serviceService.Update(r.Context(), existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	respondJSON(w, http.StatusOK, existing)
}

// Delete は DELETE /api/services/{id} を処理する（管理者のみ・物理削除）。
// 残ったサービスの表示順は振り直さない。
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serviceService.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
