package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
	"github.com/noievoi/backend/internal/service"
)

// TeamHandler はチームメンバー CRUD の HTTP ハンドラ
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler は TeamHandler を生成する
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List は GET /api/team を処理する（名前の昇順）
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if members == nil {
		members = []*model.TeamMember{}
	}
	respondJSON(w, http.StatusOK, members)
}

// Get は GET /api/team/{id} を処理する
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.teamService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "get_failed")
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// createTeamMemberRequest is the expected JSON body for POST /api/team.
type createTeamMemberRequest struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
	ImageColor  string `json:"imageColor"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedinUrl"`
	TwitterURL  string `json:"twitterUrl"`
	ImageURL    string `json:"imageUrl"`
}

// Create は POST /api/team を処理する（管理者のみ）
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name_required")
		return
	}
	if req.Position == "" {
		respondError(w, http.StatusBadRequest, "position_required")
		return
	}
	if req.Bio == "" {
		respondError(w, http.StatusBadRequest, "bio_required")
		return
	}
	if req.Location == "" {
		respondError(w, http.StatusBadRequest, "location_required")
		return
	}

	member := &model.TeamMember{
		Name:        req.Name,
		Position:    req.Position,
		Location:    req.Location,
		Bio:         req.Bio,
		ImageColor:  req.ImageColor,
		Email:       req.Email,
		LinkedinURL: req.LinkedinURL,
		TwitterURL:  req.TwitterURL,
		ImageURL:    req.ImageURL,
	}

	if err := h.teamService.Create(r.Context(), member); err != nil {
		respondError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	respondJSON(w, http.StatusCreated, member)
}

// Update は PUT /api/team/{id} を処理する（管理者のみ）。
// name/position/bio/location は必須。ペイロードに含まれないオプション項目は
// 既存値を維持する。
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.teamService.GetByID(r.Context(), id)
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

	for _, f := range []string{"name", "position", "bio", "location"} {
		if !hasJSONKey(raw, f) || stringField(raw, f) == "" {
			respondError(w, http.StatusBadRequest, f+"_required")
			return
		}
	}
	existing.Name = stringField(raw, "name")
	existing.Position = stringField(raw, "position")
	existing.Bio = stringField(raw, "bio")
	existing.Location = stringField(raw, "location")

	if hasJSONKey(raw, "imageColor") {
		if v := stringField(raw, "imageColor"); v != "" {
			existing.ImageColor = v
		}
	}
	if hasJSONKey(raw, "email") {
		existing.Email = stringField(raw, "email")
	}
	if hasJSONKey(raw, "linkedinUrl") {
		existing.LinkedinURL = stringField(raw, "linkedinUrl")
	}
	if hasJSONKey(raw, "twitterUrl") {
		existing.TwitterURL = stringField(raw, "twitterUrl")
	}
	if hasJSONKey(raw, "imageUrl") {
		existing.ImageURL = stringField(raw, "imageUrl")
	}

	if err := h.teamService.Update(r.Context(), existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	respondJSON(w, http.StatusOK, existing)
}

// Delete は DELETE /api/team/{id} を処理する（管理者のみ・物理削除）
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.teamService.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
