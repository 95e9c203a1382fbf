package handler

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/google/uuid"
	"github.com/noievoi/backend/internal/storage"
)

const maxImageSize = 2 << 20 // 2 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// uploadFolders は画像の保存先として許可するフォルダ名
var uploadFolders = map[string]bool{
	"projects": true,
	"services": true,
	"team":     true,
}

// ImageHandler は管理画面からの画像アップロードを処理する。
// 返された URL は各レコードの imageUrl / imagePath に保存される。
type ImageHandler struct {
	storage storage.Storage
}

// NewImageHandler は ImageHandler を生成する
func NewImageHandler(store storage.Storage) *ImageHandler {
	return &ImageHandler{storage: store}
}

// Upload は POST /api/images を処理する（管理者のみ）。
// multipart フィールド: image (必須), folder (projects/services/team)。
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		respondError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image_required")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		respondError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_content_type")
		return
	}

	folder := r.FormValue("folder")
	if !uploadFolders[folder] {
		folder = "misc"
	}

	key := path.Join(folder, uuid.NewString()+ext)
	imageURL, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("image upload failed", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}
