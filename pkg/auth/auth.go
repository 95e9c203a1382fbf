package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const adminKey contextKey = "admin"

// IsAdminFromContext は context から管理者フラグを取得する
func IsAdminFromContext(ctx context.Context) bool {
	v, ok := ctx.Value(adminKey).(bool)
	return ok && v
}

// WithAdmin は context に管理者フラグをセットする
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
// Returns "" when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// RequireAdmin は管理者認証必須ミドルウェア。Bearer トークンを検証し、
// 管理者フラグを context にセットする。トークンはリクエストごとに明示的に
// 渡される（グローバルなフラグ読み出しはしない）。
func RequireAdmin(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context())))
		})
	}
}

// DevAuth は開発用ミドルウェア。無条件に管理者フラグをセットする
// （AUTH_REQUIRED=false 時に使用）。
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context())))
	})
}
